/*
 * gcp.go, part of dftd3.
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

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

//refGCP is a geometric counterpoise correction bound to a structure.
//A nil param means no correction.
type refGCP struct {
	mol   *refStructure
	param *gcpEntry
	bas   float64
	srb   float64
}

//LoadGCPParam returns a zero correction if method is empty.
func (R *Reference) LoadGCPParam(err *ErrorChannel, hmol Handle, method, basis string) Handle {
	mol := R.structure(err, hmol)
	if mol == nil {
		return nil
	}
	gcp := &refGCP{mol: mol, bas: defaultBas, srb: defaultSRB}
	if method != "" {
		p, e := lookupGCP(method, basis)
		if e != nil {
			err.Set(e.Error())
			return nil
		}
		gcp.param = p
	}
	R.live.Add(1)
	return gcp
}

func (R *Reference) gcp(err *ErrorChannel, h Handle) *refGCP {
	gcp, ok := h.(*refGCP)
	if !ok || gcp == nil {
		err.Set("Invalid or uninitialized counterpoise handle")
		return nil
	}
	return gcp
}

func (R *Reference) SetGCPRealspaceCutoff(err *ErrorChannel, h Handle, bas, srb float64) {
	gcp := R.gcp(err, h)
	if gcp == nil {
		return
	}
	if bas <= 0 || srb <= 0 {
		err.Setf("Realspace cutoffs must be positive, got %g, %g", bas, srb)
		return
	}
	gcp.bas, gcp.srb = bas, srb
}

func (R *Reference) DeleteGCP(gcp *Handle) { R.release(gcp) }

func (R *Reference) GetCounterpoise(err *ErrorChannel, hmol, hgcp Handle, energy *float64, gradient, sigma []float64) {
	mol := R.structure(err, hmol)
	if mol == nil {
		return
	}
	gcp := R.gcp(err, hgcp)
	if gcp == nil {
		return
	}
	if gcp.mol != mol {
		err.Set("Counterpoise correction was not created for this structure")
		return
	}
	n := len(mol.numbers)
	if gradient != nil && len(gradient) != 3*n {
		err.Setf("Gradient buffer has %d elements, %d needed", len(gradient), 3*n)
		return
	}
	if sigma != nil && len(sigma) != 9 {
		err.Setf("Sigma buffer has %d elements, 9 needed", len(sigma))
		return
	}
	*energy = gcp.energy(mol.pos, mol.lattice)
	derivatives(gcp.energy, mol.pos, mol.lattice, gradient, sigma)
}

//energy is the basis set superposition correction: each atom i loses
//emiss(i) of energy for every neighbour j whose basis functions it
//borrows, and the short-range term corrects the basis incompleteness.
func (G *refGCP) energy(pos []r3.Vec, lat [3]r3.Vec) float64 {
	p := G.param
	if p == nil {
		return 0
	}
	z := G.mol.numbers
	cut := math.Max(G.bas, G.srb)
	trans := translations(lat, G.mol.periodic, cut)
	var e float64
	for i := range pos {
		emiss := 1e-3 * p.Eta * math.Sqrt(float64(z[i]))
		for j := range pos {
			for _, t := range trans {
				if i == j && t == (r3.Vec{}) {
					continue
				}
				r := r3.Norm(r3.Sub(r3.Add(pos[j], t), pos[i]))
				if p.Sigma != 0 && r <= G.bas {
					e += p.Sigma * emiss * math.Exp(-p.Alpha*math.Pow(r, p.Beta)) / math.Sqrt(valenceFunctions(z[j]))
				}
				if p.SRB != nil && r <= G.srb {
					r0 := r0Atomic(min(z[i], MaxZ)) + r0Atomic(min(z[j], MaxZ))
					zz := float64(z[i] * z[j])
					e -= 0.5 * p.SRB.Qscal * zz * math.Sqrt(zz) * math.Exp(-p.SRB.Rscal*math.Pow(r0, -0.75)*r)
				}
			}
		}
	}
	return e
}
