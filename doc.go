/*
 * doc.go, part of dftd3.
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

/*Package dftd3 computes DFT-D3 dispersion corrections, with their gradients
and strain derivatives, for molecular and periodic structures.

The numerical work is done by an engine (see the engine subpackage). By
default this is a small pure-Go reference engine; built with the sdftd3
tag, the s-dftd3 library is used through cgo.

A typical calculation:

	s, err := dftd3.NewStructure([]int{1, 1}, []float64{0, 0, 0, 0, 0, 1.4}, nil, nil)
	//...
	m, err := dftd3.NewModel(s) //m now owns s
	//...
	defer m.Close()
	p, err := dftd3.LoadParam("d3bj", "PBE0", false)
	//...
	defer p.Close()
	out, err := m.Dispersion(p, true)

Damping parameters can be loaded from the tables by method name, built
field by field with a builder (NewRationalDampingBuilder and friends), or
given directly as a record (RationalDampingParam and friends).

All lengths are in Bohr, all energies in Hartree.

Errors returned by the package implement the Error interface, and each kind
of failure has its own type (DimensionError, DegenerateGeometryError, and
so on).
*/
package dftd3
