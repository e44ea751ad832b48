/*
 * load.go, part of dftd3.
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

//load asks the engine for the tabulated parameters of method under kind.
//method is normalized before the lookup.
func load(eng engine.Engine, kind DampingKind, method string, atm bool) (*Param, error) {
	name := engine.NormalizeName(method)
	ch := engine.NewErrorChannel()
	var h engine.Handle
	switch kind {
	case ZeroDamping:
		h = eng.LoadZeroDamping(ch, name, atm)
	case RationalDamping:
		h = eng.LoadRationalDamping(ch, name, atm)
	case ModifiedZeroDamping:
		h = eng.LoadMZeroDamping(ch, name, atm)
	case ModifiedRationalDamping:
		h = eng.LoadMRationalDamping(ch, name, atm)
	case OptimizedPowerDamping:
		h = eng.LoadOptimizedPowerDamping(ch, name, atm)
	default:
		return nil, &UnknownVersionError{decoration{[]string{"load"}}, kind.String()}
	}
	if ch.IsSet() {
		return nil, &UnknownMethodError{decoration: decoration{[]string{"load"}}, Method: method, Damping: kind.String(), Message: ch.Message()}
	}
	return wrapParam(eng, ch, h, kind, name)
}

//LoadZeroDamping returns the tabulated zero damping parameters for method.
//Method names are compared in lower case, ignoring '-', '_' and blanks.
//If atm is true the three-body term is included (s9=1), otherwise s9=0.
func LoadZeroDamping(method string, atm bool) (*Param, error) {
	return load(currentEngine(), ZeroDamping, method, atm)
}

//LoadRationalDamping is like LoadZeroDamping, for the rational (Becke-Johnson) damping.
func LoadRationalDamping(method string, atm bool) (*Param, error) {
	return load(currentEngine(), RationalDamping, method, atm)
}

//LoadModifiedZeroDamping is like LoadZeroDamping, for the modified zero damping.
func LoadModifiedZeroDamping(method string, atm bool) (*Param, error) {
	return load(currentEngine(), ModifiedZeroDamping, method, atm)
}

//LoadModifiedRationalDamping is like LoadZeroDamping, for the modified rational damping.
func LoadModifiedRationalDamping(method string, atm bool) (*Param, error) {
	return load(currentEngine(), ModifiedRationalDamping, method, atm)
}

//LoadOptimizedPowerDamping is like LoadZeroDamping, for the optimized power damping.
func LoadOptimizedPowerDamping(method string, atm bool) (*Param, error) {
	return load(currentEngine(), OptimizedPowerDamping, method, atm)
}

//ParseDampingKind returns the damping scheme for a version selector such as
//"d3bj", "bj", "d3zero", "zero", "d3mbj", "bjm", "d3zerom", "mzero", "d3op" or "op".
//The selector is normalized like method names.
func ParseDampingKind(version string) (DampingKind, error) {
	switch engine.NormalizeName(version) {
	case "d3bj", "bj":
		return RationalDamping, nil
	case "d3zero", "zero":
		return ZeroDamping, nil
	case "d3bjm", "d3mbj", "bjm", "mbj":
		return ModifiedRationalDamping, nil
	case "d3zerom", "d3mzero", "zerom", "mzero":
		return ModifiedZeroDamping, nil
	case "d3op", "op":
		return OptimizedPowerDamping, nil
	}
	return 0, &UnknownVersionError{decoration{[]string{"ParseDampingKind"}}, version}
}

//LoadParam loads the tabulated parameters of method for the damping scheme
//named by version (see ParseDampingKind).
func LoadParam(version, method string, atm bool) (*Param, error) {
	return LoadParamWith(currentEngine(), version, method, atm)
}

//LoadParamWith is LoadParam on the engine eng.
func LoadParamWith(eng engine.Engine, version, method string, atm bool) (*Param, error) {
	kind, err := ParseDampingKind(version)
	if err != nil {
		return nil, errDecorate(err, "LoadParam")
	}
	p, err := load(eng, kind, method, atm)
	if err != nil {
		return nil, errDecorate(err, "LoadParam")
	}
	return p, nil
}

//Methods returns the method names tabulated for kind, in normalized form.
func Methods(kind DampingKind) []string {
	return engine.TabulatedMethods(kind.scheme())
}

//fromTable gets the tabulated coefficients of method for kind.
func fromTable(kind DampingKind, method string, atm bool) (engine.Coefficients, error) {
	c, err := engine.Tabulated(kind.scheme(), method, atm)
	if err != nil {
		return c, &UnknownMethodError{decoration: decoration{[]string{"fromTable"}}, Method: method, Damping: kind.String(), Message: err.Error()}
	}
	return c, nil
}

//ZeroDampingFromTable returns the record holding the tabulated zero damping
//coefficients of method, as LoadZeroDamping would use them.
func ZeroDampingFromTable(method string, atm bool) (ZeroDampingParam, error) {
	c, err := fromTable(ZeroDamping, method, atm)
	if err != nil {
		return ZeroDampingParam{}, errDecorate(err, "ZeroDampingFromTable")
	}
	return ZeroDampingParam{S6: c.S6, S8: c.S8, S9: c.S9, Rs6: c.Rs6, Rs8: c.Rs8, Alp: c.Alp}, nil
}

func RationalDampingFromTable(method string, atm bool) (RationalDampingParam, error) {
	c, err := fromTable(RationalDamping, method, atm)
	if err != nil {
		return RationalDampingParam{}, errDecorate(err, "RationalDampingFromTable")
	}
	return RationalDampingParam{S6: c.S6, S8: c.S8, S9: c.S9, A1: c.A1, A2: c.A2, Alp: c.Alp}, nil
}

func ModifiedZeroDampingFromTable(method string, atm bool) (ModifiedZeroDampingParam, error) {
	c, err := fromTable(ModifiedZeroDamping, method, atm)
	if err != nil {
		return ModifiedZeroDampingParam{}, errDecorate(err, "ModifiedZeroDampingFromTable")
	}
	return ModifiedZeroDampingParam{S6: c.S6, S8: c.S8, S9: c.S9, Rs6: c.Rs6, Rs8: c.Rs8, Alp: c.Alp, Bet: c.Bet}, nil
}

func ModifiedRationalDampingFromTable(method string, atm bool) (ModifiedRationalDampingParam, error) {
	c, err := fromTable(ModifiedRationalDamping, method, atm)
	if err != nil {
		return ModifiedRationalDampingParam{}, errDecorate(err, "ModifiedRationalDampingFromTable")
	}
	return ModifiedRationalDampingParam{S6: c.S6, S8: c.S8, S9: c.S9, A1: c.A1, A2: c.A2, Alp: c.Alp}, nil
}

func OptimizedPowerDampingFromTable(method string, atm bool) (OptimizedPowerDampingParam, error) {
	c, err := fromTable(OptimizedPowerDamping, method, atm)
	if err != nil {
		return OptimizedPowerDampingParam{}, errDecorate(err, "OptimizedPowerDampingFromTable")
	}
	return OptimizedPowerDampingParam{S6: c.S6, S8: c.S8, S9: c.S9, A1: c.A1, A2: c.A2, Alp: c.Alp, Bet: c.Bet}, nil
}
