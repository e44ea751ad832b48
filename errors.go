/*
 * errors.go, part of dftd3.
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
	"errors"
	"fmt"

	"github.com/rmera/dftd3/engine"
)

//Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
//error, without changing it's type or wrapping it around something else.
//Each kind of failure has its own type, use errors.As to tell them apart.
type Error interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}

//ErrReleased is returned when a closed object, or a Structure that was
//moved into a Model or GCP, is used.
var ErrReleased = errors.New("dftd3: object already closed or owned by a model")

var errNilConfig = errors.New("dftd3: nil configuration")

//decoration keeps the list of functions an error went through.
type decoration struct {
	deco []string
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (D *decoration) Decorate(dec string) []string {
	if dec != "" {
		D.deco = append(D.deco, dec)
	}
	return D.deco
}

//DimensionError is a buffer of the wrong length, detected before calling the engine.
type DimensionError struct {
	decoration
	Field    string
	Expected int
	Got      int
}

func (E *DimensionError) Error() string {
	return fmt.Sprintf("dftd3: invalid dimension for %s, expected %d, got %d", E.Field, E.Expected, E.Got)
}

func (E *DimensionError) Critical() bool { return true }

//DegenerateGeometryError means the engine rejected the coordinates, for instance
//because two atoms sit on top of each other. Message is the engine's.
type DegenerateGeometryError struct {
	decoration
	Message string
}

func (E *DegenerateGeometryError) Error() string {
	return "dftd3: invalid geometry: " + E.Message
}

func (E *DegenerateGeometryError) Critical() bool { return true }

//IncompleteParamError is returned when a damping parameter builder is
//finalized without a required field.
type IncompleteParamError struct {
	decoration
	Damping DampingKind
	Field   string
}

func (E *IncompleteParamError) Error() string {
	return fmt.Sprintf("dftd3: %s damping parameters: required field '%s' not set", E.Damping, E.Field)
}

func (E *IncompleteParamError) Critical() bool { return true }

//UnknownMethodError is a method (and, for counterpoise corrections, basis) not
//found in the parameter tables.
type UnknownMethodError struct {
	decoration
	Method  string
	Basis   string
	Damping string //empty for counterpoise corrections
	Message string //as given by the engine, may be empty
}

func (E *UnknownMethodError) Error() string {
	what := E.Damping + " damping"
	if E.Damping == "" {
		what = fmt.Sprintf("counterpoise (basis '%s')", E.Basis)
	}
	msg := fmt.Sprintf("dftd3: no %s parameters for method '%s'", what, E.Method)
	if E.Message != "" {
		msg += ": " + E.Message
	}
	return msg
}

func (E *UnknownMethodError) Critical() bool { return true }

//UnknownVersionError is a D3 version/damping selector that matches no damping scheme.
type UnknownVersionError struct {
	decoration
	Version string
}

func (E *UnknownVersionError) Error() string {
	return fmt.Sprintf("dftd3: unknown DFT-D3 version: %s", E.Version)
}

func (E *UnknownVersionError) Critical() bool { return true }

//EngineError passes through any other failure reported by the engine.
//Message is the engine's, unchanged.
type EngineError struct {
	decoration
	Op      string
	Message string
}

func (E *EngineError) Error() string {
	return fmt.Sprintf("dftd3: %s: %s", E.Op, E.Message)
}

func (E *EngineError) Critical() bool { return true }

func engineError(op string, ch *engine.ErrorChannel) error {
	return &EngineError{decoration: decoration{[]string{op}}, Op: op, Message: ch.Message()}
}

//errDecorate adds caller to the decorations of err, if err implements Error.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
	return err
}
