/*
 * param.go, part of dftd3.
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
	"runtime"

	"github.com/rmera/dftd3/engine"
	"github.com/sirupsen/logrus"
)

//Param is a resolved damping scheme with its coefficients, as the engine
//sees it. It is immutable, and can be shared among models created with the
//same engine.
type Param struct {
	eng    engine.Engine
	h      engine.Handle
	kind   DampingKind
	method string //empty if built from explicit coefficients
}

func wrapParam(eng engine.Engine, ch *engine.ErrorChannel, h engine.Handle, kind DampingKind, method string) (*Param, error) {
	if ch.IsSet() {
		if method != "" {
			return nil, &UnknownMethodError{decoration: decoration{[]string{"wrapParam"}}, Method: method, Damping: kind.String(), Message: ch.Message()}
		}
		return nil, engineError("wrapParam", ch)
	}
	p := &Param{eng: eng, h: h, kind: kind, method: method}
	runtime.SetFinalizer(p, (*Param).Close)
	Log.WithFields(logrus.Fields{"damping": kind, "method": method}).Debug("dftd3: parameters created")
	return p, nil
}

//Kind returns the damping scheme of P.
func (P *Param) Kind() DampingKind {
	return P.kind
}

//Method returns the method the parameters were loaded for, or an empty string
//if they were given explicitly.
func (P *Param) Method() string {
	return P.method
}

func (P *Param) String() string {
	if P.method == "" {
		return P.kind.String() + " damping"
	}
	return P.method + "/" + P.kind.String() + " damping"
}

//Close releases the engine handle. It is safe to call it more than once.
func (P *Param) Close() {
	if P == nil || P.h == nil {
		return
	}
	P.eng.DeleteParam(&P.h)
	P.h = nil
	runtime.SetFinalizer(P, nil)
}

//handle returns the engine handle of P, checking that it belongs to eng.
func (P *Param) handle(eng engine.Engine, op string) (engine.Handle, error) {
	if P == nil || P.h == nil {
		return nil, ErrReleased
	}
	if P.eng != eng {
		return nil, &EngineError{decoration: decoration{[]string{op}}, Op: op, Message: "Damping parameters were created by a different engine"}
	}
	return P.h, nil
}
