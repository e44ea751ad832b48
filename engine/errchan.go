/*
 * errchan.go, part of dftd3.
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

package engine

import "fmt"

//ErrorChannel holds at most one pending error message. A channel is
//created for a call (or a chain of calls), checked right after the call
//it guards, and then discarded.
type ErrorChannel struct {
	set     bool
	message string
}

//NewErrorChannel returns an empty channel.
func NewErrorChannel() *ErrorChannel {
	return new(ErrorChannel)
}

//IsSet returns true if an error is pending.
func (E *ErrorChannel) IsSet() bool {
	if E == nil {
		return false
	}
	return E.set
}

//Message returns the pending message, or an empty string.
func (E *ErrorChannel) Message() string {
	if !E.IsSet() {
		return ""
	}
	return E.message
}

//Set records msg. An already pending message is not overwritten, so the
//first failure in a chain of calls is the one reported.
func (E *ErrorChannel) Set(msg string) {
	if E.set {
		return
	}
	E.set = true
	E.message = msg
}

func (E *ErrorChannel) Setf(format string, args ...interface{}) {
	E.Set(fmt.Sprintf(format, args...))
}

//Reset clears the channel so it can be reused.
func (E *ErrorChannel) Reset() {
	E.set = false
	E.message = ""
}
