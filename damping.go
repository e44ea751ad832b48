/*
 * damping.go, part of dftd3.
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
)

//DampingKind identifies one of the five damping schemes.
type DampingKind int

const (
	ZeroDamping DampingKind = iota
	RationalDamping
	ModifiedZeroDamping
	ModifiedRationalDamping
	OptimizedPowerDamping
)

func (D DampingKind) String() string {
	switch D {
	case ZeroDamping:
		return "zero"
	case RationalDamping:
		return "rational"
	case ModifiedZeroDamping:
		return "modified zero"
	case ModifiedRationalDamping:
		return "modified rational"
	case OptimizedPowerDamping:
		return "optimized power"
	}
	return "unknown"
}

//scheme is the name of the section of the parameter tables for D.
func (D DampingKind) scheme() string {
	switch D {
	case ZeroDamping:
		return "zero"
	case RationalDamping:
		return "rational"
	case ModifiedZeroDamping:
		return "mzero"
	case ModifiedRationalDamping:
		return "mrational"
	}
	return "optimizedpower"
}

//Damping is implemented by the five damping parameter records, and only by them.
//Each record can be turned into a Param, which is what the models take.
type Damping interface {
	Kind() DampingKind
	NewParam() (*Param, error)
	newParam(eng engine.Engine) (*Param, error)
}

//ZeroDampingParam holds the coefficients of the original D3 zero damping.
//A record is used as given: fields left out of a literal are zero, not
//their defaults. Use NewZeroDampingBuilder to get the defaults.
type ZeroDampingParam struct {
	S6  float64
	S8  float64
	S9  float64
	Rs6 float64
	Rs8 float64
	Alp float64
}

//RationalDampingParam holds the coefficients of the rational
//(Becke-Johnson) damping.
type RationalDampingParam struct {
	S6  float64
	S8  float64
	S9  float64
	A1  float64
	A2  float64
	Alp float64
}

//ModifiedZeroDampingParam holds the coefficients of the modified zero damping.
type ModifiedZeroDampingParam struct {
	S6  float64
	S8  float64
	S9  float64
	Rs6 float64
	Rs8 float64
	Alp float64
	Bet float64
}

//ModifiedRationalDampingParam holds the coefficients of the modified rational damping.
type ModifiedRationalDampingParam struct {
	S6  float64
	S8  float64
	S9  float64
	A1  float64
	A2  float64
	Alp float64
}

//OptimizedPowerDampingParam holds the coefficients of the optimized power damping.
type OptimizedPowerDampingParam struct {
	S6  float64
	S8  float64
	S9  float64
	A1  float64
	A2  float64
	Alp float64
	Bet float64
}

func (P ZeroDampingParam) Kind() DampingKind             { return ZeroDamping }
func (P RationalDampingParam) Kind() DampingKind         { return RationalDamping }
func (P ModifiedZeroDampingParam) Kind() DampingKind     { return ModifiedZeroDamping }
func (P ModifiedRationalDampingParam) Kind() DampingKind { return ModifiedRationalDamping }
func (P OptimizedPowerDampingParam) Kind() DampingKind   { return OptimizedPowerDamping }

//NewParam creates the engine parametrization for P.
func (P ZeroDampingParam) NewParam() (*Param, error) { return P.newParam(currentEngine()) }

//NewParam creates the engine parametrization for P.
func (P RationalDampingParam) NewParam() (*Param, error) { return P.newParam(currentEngine()) }

//NewParam creates the engine parametrization for P.
func (P ModifiedZeroDampingParam) NewParam() (*Param, error) { return P.newParam(currentEngine()) }

//NewParam creates the engine parametrization for P.
func (P ModifiedRationalDampingParam) NewParam() (*Param, error) {
	return P.newParam(currentEngine())
}

//NewParam creates the engine parametrization for P.
func (P OptimizedPowerDampingParam) NewParam() (*Param, error) { return P.newParam(currentEngine()) }

func (P ZeroDampingParam) newParam(eng engine.Engine) (*Param, error) {
	ch := engine.NewErrorChannel()
	h := eng.NewZeroDamping(ch, P.S6, P.S8, P.S9, P.Rs6, P.Rs8, P.Alp)
	return wrapParam(eng, ch, h, ZeroDamping, "")
}

func (P RationalDampingParam) newParam(eng engine.Engine) (*Param, error) {
	ch := engine.NewErrorChannel()
	h := eng.NewRationalDamping(ch, P.S6, P.S8, P.S9, P.A1, P.A2, P.Alp)
	return wrapParam(eng, ch, h, RationalDamping, "")
}

func (P ModifiedZeroDampingParam) newParam(eng engine.Engine) (*Param, error) {
	ch := engine.NewErrorChannel()
	h := eng.NewMZeroDamping(ch, P.S6, P.S8, P.S9, P.Rs6, P.Rs8, P.Alp, P.Bet)
	return wrapParam(eng, ch, h, ModifiedZeroDamping, "")
}

func (P ModifiedRationalDampingParam) newParam(eng engine.Engine) (*Param, error) {
	ch := engine.NewErrorChannel()
	h := eng.NewMRationalDamping(ch, P.S6, P.S8, P.S9, P.A1, P.A2, P.Alp)
	return wrapParam(eng, ch, h, ModifiedRationalDamping, "")
}

func (P OptimizedPowerDampingParam) newParam(eng engine.Engine) (*Param, error) {
	ch := engine.NewErrorChannel()
	h := eng.NewOptimizedPowerDamping(ch, P.S6, P.S8, P.S9, P.A1, P.A2, P.Alp, P.Bet)
	return wrapParam(eng, ch, h, OptimizedPowerDamping, "")
}

//NewParamWith creates the parametrization for d on the engine eng, which must be
//the engine of the models it will be used with.
func NewParamWith(eng engine.Engine, d Damping) (*Param, error) {
	p, err := d.newParam(eng)
	if err != nil {
		return nil, errDecorate(err, "NewParamWith")
	}
	return p, nil
}

//The following functions create a parametrization straight from the coefficients.

func NewZeroDampingParam(s6, s8, s9, rs6, rs8, alp float64) (*Param, error) {
	return ZeroDampingParam{s6, s8, s9, rs6, rs8, alp}.NewParam()
}

func NewRationalDampingParam(s6, s8, s9, a1, a2, alp float64) (*Param, error) {
	return RationalDampingParam{s6, s8, s9, a1, a2, alp}.NewParam()
}

func NewModifiedZeroDampingParam(s6, s8, s9, rs6, rs8, alp, bet float64) (*Param, error) {
	return ModifiedZeroDampingParam{s6, s8, s9, rs6, rs8, alp, bet}.NewParam()
}

func NewModifiedRationalDampingParam(s6, s8, s9, a1, a2, alp float64) (*Param, error) {
	return ModifiedRationalDampingParam{s6, s8, s9, a1, a2, alp}.NewParam()
}

func NewOptimizedPowerDampingParam(s6, s8, s9, a1, a2, alp, bet float64) (*Param, error) {
	return OptimizedPowerDampingParam{s6, s8, s9, a1, a2, alp, bet}.NewParam()
}
