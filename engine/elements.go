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

package engine

import "math"

//Per-element data for the reference engine. These are NOT the D3 reference
//systems: there is no coordination number interpolation, each element has a
//single C6. Good enough for tests and small systems, use s-dftd3 (tag sdftd3)
//for production numbers.

//MaxZ is the heaviest element the reference engine has data for (Xe).
const MaxZ = 54

const (
	bohr2A = 0.52917721067
	//1 J/mol in Hartree
	jmol2H = 1.0 / 2625499.6394799
)

//c6D2 holds the atomic C6 coefficients of Grimme's D2 model in J nm^6 mol^-1.
//Index 0 is unused.
var c6D2 = [MaxZ + 1]float64{0,
	0.14, 0.08, // H-He
	1.61, 1.61, 3.13, 1.75, 1.23, 0.70, 0.75, 0.63, // Li-Ne
	5.71, 5.71, 10.79, 9.23, 7.84, 5.57, 5.07, 4.61, // Na-Ar
	10.80, 10.80, // K-Ca
	10.80, 10.80, 10.80, 10.80, 10.80, 10.80, 10.80, 10.80, 10.80, 10.80, // Sc-Zn
	16.99, 17.10, 16.37, 12.64, 12.47, 12.01, // Ga-Kr
	24.67, 24.67, // Rb-Sr
	24.67, 24.67, 24.67, 24.67, 24.67, 24.67, 24.67, 24.67, 24.67, 24.67, // Y-Cd
	37.32, 38.71, 38.44, 31.74, 31.50, 29.99, // In-Xe
}

//r0D2 holds the D2 van der Waals radii in Angstrom.
var r0D2 = [MaxZ + 1]float64{0,
	1.001, 1.012,
	0.825, 1.408, 1.485, 1.452, 1.397, 1.342, 1.287, 1.243,
	1.144, 1.364, 1.639, 1.716, 1.705, 1.683, 1.639, 1.595,
	1.485, 1.474,
	1.562, 1.562, 1.562, 1.562, 1.562, 1.562, 1.562, 1.562, 1.562, 1.562,
	1.649, 1.727, 1.760, 1.771, 1.749, 1.727,
	1.628, 1.606,
	1.639, 1.639, 1.639, 1.639, 1.639, 1.639, 1.639, 1.639, 1.639, 1.639,
	1.672, 1.804, 1.881, 1.892, 1.892, 1.881,
}

//r4r2 holds sqrt(0.5*<r^4>/<r^2>*sqrt(Z)), the factor that turns C6 into C8.
//Values after Ar are approximate.
var r4r2 = [MaxZ + 1]float64{0,
	2.00734898, 1.56637132,
	5.01986934, 3.85379032, 3.64446594, 3.10492822, 2.71175247, 2.59361680, 2.38825250, 2.21522516,
	6.58585536, 5.46295967, 5.65216669, 4.88284902, 4.29727576, 4.04108902, 3.72932356, 3.44677275,
	7.70, 6.70,
	6.00, 5.80, 5.60, 5.40, 5.20, 5.00, 4.90, 4.80, 4.70, 4.60,
	5.20, 4.80, 4.50, 4.30, 4.10, 3.90,
	8.60, 7.60,
	6.80, 6.65, 6.50, 6.35, 6.20, 6.05, 5.90, 5.75, 5.60, 5.45,
	5.90, 5.50, 5.20, 5.00, 4.80, 4.60,
}

//c6Atomic returns the C6 coefficient of element z in Hartree*Bohr^6
func c6Atomic(z int) float64 {
	nm2bohr := 10 / bohr2A
	return c6D2[z] * 1000 * jmol2H * math.Pow(nm2bohr, 6)
}

//r0Atomic returns the van der Waals radius of element z in Bohr
func r0Atomic(z int) float64 {
	return r0D2[z] / bohr2A
}

//pairData contains the precomputed coefficients for one atom pair.
type pairData struct {
	c6   float64
	c8   float64
	rbj  float64 //sqrt(C8/C6), the rational damping critical radius
	rvdw float64 //sum of van der Waals radii, for zero damping
}

func newPairData(zi, zj int) pairData {
	var p pairData
	p.c6 = math.Sqrt(c6Atomic(zi) * c6Atomic(zj))
	qq := 3 * r4r2[zi] * r4r2[zj]
	p.c8 = p.c6 * qq
	p.rbj = math.Sqrt(qq)
	p.rvdw = r0Atomic(zi) + r0Atomic(zj)
	return p
}

//valenceFunctions is a rough count of minimal-basis valence functions,
//used by the counterpoise correction.
func valenceFunctions(z int) float64 {
	switch {
	case z <= 2:
		return 1
	case z <= 10:
		return 5
	default:
		return 9
	}
}
