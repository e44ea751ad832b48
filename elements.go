/*
 * elements.go, part of dftd3.
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
	"fmt"
	"strings"
)

//Element symbols, indexed by atomic number.
var symbols = [...]string{"",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn", "Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn", "Sb", "Te", "I", "Xe",
}

//A map for assigning atomic numbers to element symbols.
var symbolNumber = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for z, s := range symbols[1:] {
		m[s] = z + 1
	}
	//deuterium and tritium
	m["D"] = 1
	m["T"] = 1
	return m
}()

//AtomicNumber returns the atomic number for an element symbol. The symbol is
//not case-sensitive. Only elements up to Xe are known.
func AtomicNumber(symbol string) (int, error) {
	s := strings.TrimSpace(symbol)
	if len(s) > 1 {
		s = strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	} else {
		s = strings.ToUpper(s)
	}
	z, ok := symbolNumber[s]
	if !ok {
		return 0, fmt.Errorf("dftd3: unknown element symbol '%s'", symbol)
	}
	return z, nil
}

//AtomicNumbers returns the atomic numbers for a list of element symbols.
func AtomicNumbers(symbols []string) ([]int, error) {
	ret := make([]int, len(symbols))
	var err error
	for i, s := range symbols {
		if ret[i], err = AtomicNumber(s); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

//Symbol returns the element symbol for the atomic number z, or an empty
//string if z is not known.
func Symbol(z int) string {
	if z < 1 || z >= len(symbols) {
		return ""
	}
	return symbols[z]
}
