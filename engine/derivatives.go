/*
 * derivatives.go, part of dftd3.
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

import "gonum.org/v1/gonum/spatial/r3"

//Finite difference step, in Bohr for the gradient and dimensionless for the strain.
const step = 1e-5

type energyFunc func(pos []r3.Vec, lat [3]r3.Vec) float64

func component(v *r3.Vec, c int) *float64 {
	switch c {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	}
	return &v.Z
}

//derivatives fills gradient (3N) and sigma (9, row-major) with central
//finite differences of f, if they are not nil. pos and lat are not modified.
func derivatives(f energyFunc, pos []r3.Vec, lat [3]r3.Vec, gradient, sigma []float64) {
	if gradient != nil {
		work := append([]r3.Vec(nil), pos...)
		for i := range work {
			for c := 0; c < 3; c++ {
				x := component(&work[i], c)
				orig := *x
				*x = orig + step
				ep := f(work, lat)
				*x = orig - step
				em := f(work, lat)
				*x = orig
				gradient[3*i+c] = (ep - em) / (2 * step)
			}
		}
	}
	if sigma != nil {
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				ep := f(strain(pos, lat, a, b, step))
				em := f(strain(pos, lat, a, b, -step))
				sigma[3*a+b] = (ep - em) / (2 * step)
			}
		}
	}
}

//strain applies the deformation x_a += eps*x_b to every position and lattice vector.
func strain(pos []r3.Vec, lat [3]r3.Vec, a, b int, eps float64) ([]r3.Vec, [3]r3.Vec) {
	spos := make([]r3.Vec, len(pos))
	for i, v := range pos {
		*component(&v, a) += eps * *component(&pos[i], b)
		spos[i] = v
	}
	for i := range lat {
		v := lat[i]
		*component(&v, a) += eps * *component(&lat[i], b)
		lat[i] = v
	}
	return spos, lat
}
