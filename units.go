/*
 * units.go, part of dftd3.
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

//Conversion factors. The package works in Bohr and Hartree.
const (
	A2Bohr  = 1.889725989
	Bohr2A  = 1 / 1.889725989
	H2Kcal  = 627.509 //Hartree to kcal/mol
	Kcal2H  = 1 / 627.509
	H2KJ    = 2625.4996 //Hartree to kJ/mol
	KJ2H    = 1 / 2625.4996
	H2EV    = 27.211386
	EV2H    = 1 / 27.211386
	KJ2Kcal = 1 / 4.184
	Kcal2KJ = 4.184
)

//ToBohr returns a copy of coords, given in Angstrom, in Bohr.
func ToBohr(coords []float64) []float64 {
	ret := make([]float64, len(coords))
	for i, v := range coords {
		ret[i] = v * A2Bohr
	}
	return ret
}
