/*
 * log.go, part of dftd3.
 *
 * Copyright 2021 Raul Mera <rmeraatusachdotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package dftd3

import (
	"github.com/rmera/dftd3/engine"
	"github.com/sirupsen/logrus"
)

//Log is the logger used by the package. It only reports warnings by default.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

//SetLogger replaces the package logger. A nil l restores the default one.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newLogger()
	}
	Log = l
}

var backend engine.Engine

//SetEngine selects the engine used by the constructors in this package.
//Objects created before the call keep the engine they were created with.
//A nil e restores engine.Default().
func SetEngine(e engine.Engine) {
	backend = e
}

func currentEngine() engine.Engine {
	if backend == nil {
		return engine.Default()
	}
	return backend
}
