/*
 * reference.go, part of dftd3.
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
	"sync/atomic"

	"gonum.org/v1/gonum/spatial/r3"
)

//ReferenceVersion is the API version the reference engine reports (1.2.1).
const ReferenceVersion = 10201

//Distances below this (in Bohr) are taken as two atoms on top of each other.
const fusionThreshold = 1e-4

const (
	defaultDisp2 = 60.0
	defaultDisp3 = 40.0
	defaultCN    = 40.0
	defaultBas   = 60.0
	defaultSRB   = 60.0
)

//Reference is a small pure-Go D3-like engine. It uses a single C6 per
//element (no coordination numbers), the five damping functions, the ATM
//three-body term (home cell only for periodic systems) and numerical
//derivatives. It is deterministic and allocation-light, but it will not
//reproduce s-dftd3 energies.
type Reference struct {
	live atomic.Int64
}

//NewReference returns a new reference engine.
func NewReference() *Reference {
	return new(Reference)
}

//Live returns the number of handles created by R that have not been deleted yet.
func (R *Reference) Live() int {
	return int(R.live.Load())
}

func (R *Reference) Version() int {
	return ReferenceVersion
}

type refStructure struct {
	numbers  []int
	pos      []r3.Vec
	lattice  [3]r3.Vec
	periodic [3]bool
}

type refModel struct {
	mol   *refStructure
	pairs [][]pairData
	disp2 float64
	disp3 float64
	cn    float64
}

func toVecs(positions []float64) []r3.Vec {
	ret := make([]r3.Vec, len(positions)/3)
	for i := range ret {
		ret[i] = r3.Vec{X: positions[3*i], Y: positions[3*i+1], Z: positions[3*i+2]}
	}
	return ret
}

func toLattice(lattice []float64) [3]r3.Vec {
	var ret [3]r3.Vec
	for i := 0; i < 3; i++ {
		ret[i] = r3.Vec{X: lattice[3*i], Y: lattice[3*i+1], Z: lattice[3*i+2]}
	}
	return ret
}

//checkGeometry sets err if the coordinates are not usable.
func checkGeometry(err *ErrorChannel, pos []r3.Vec, lattice [3]r3.Vec, periodic [3]bool) {
	for i, v := range pos {
		if math.IsNaN(v.X+v.Y+v.Z) || math.IsInf(v.X+v.Y+v.Z, 0) {
			err.Setf("Non-finite coordinates for atom %d", i+1)
			return
		}
	}
	for i := range pos {
		for j := 0; j < i; j++ {
			if r3.Norm(r3.Sub(pos[i], pos[j])) < fusionThreshold {
				err.Setf("Too close interatomic distances found (atoms %d and %d)", j+1, i+1)
				return
			}
		}
	}
	if periodic[0] || periodic[1] || periodic[2] {
		vol := math.Abs(r3.Dot(lattice[0], r3.Cross(lattice[1], lattice[2])))
		if vol < fusionThreshold {
			err.Set("Lattice vectors are linearly dependent")
		}
	}
}

func (R *Reference) NewStructure(err *ErrorChannel, numbers []int, positions, lattice []float64, periodic []bool) Handle {
	if len(positions) != 3*len(numbers) {
		err.Setf("Invalid dimension for positions, expected %d, got %d", 3*len(numbers), len(positions))
		return nil
	}
	for i, z := range numbers {
		if z < 1 || z > 118 {
			err.Setf("Invalid atomic number %d for atom %d", z, i+1)
			return nil
		}
	}
	mol := &refStructure{numbers: append([]int(nil), numbers...), pos: toVecs(positions)}
	if lattice != nil {
		if len(lattice) != 9 {
			err.Setf("Invalid dimension for lattice, expected 9, got %d", len(lattice))
			return nil
		}
		mol.lattice = toLattice(lattice)
		mol.periodic = [3]bool{true, true, true}
		if periodic != nil {
			copy(mol.periodic[:], periodic)
		}
	}
	checkGeometry(err, mol.pos, mol.lattice, mol.periodic)
	if err.IsSet() {
		return nil
	}
	R.live.Add(1)
	return mol
}

func (R *Reference) structure(err *ErrorChannel, h Handle) *refStructure {
	mol, ok := h.(*refStructure)
	if !ok || mol == nil {
		err.Set("Invalid or uninitialized structure handle")
		return nil
	}
	return mol
}

//UpdateStructure leaves mol unchanged on failure.
func (R *Reference) UpdateStructure(err *ErrorChannel, h Handle, positions, lattice []float64) {
	mol := R.structure(err, h)
	if mol == nil {
		return
	}
	if len(positions) != 3*len(mol.numbers) {
		err.Setf("Invalid dimension for positions, expected %d, got %d", 3*len(mol.numbers), len(positions))
		return
	}
	pos := toVecs(positions)
	lat := mol.lattice
	if lattice != nil {
		if len(lattice) != 9 {
			err.Setf("Invalid dimension for lattice, expected 9, got %d", len(lattice))
			return
		}
		lat = toLattice(lattice)
	}
	checkGeometry(err, pos, lat, mol.periodic)
	if err.IsSet() {
		return
	}
	mol.pos = pos
	mol.lattice = lat
}

func (R *Reference) release(h *Handle) {
	if h == nil || *h == nil {
		return
	}
	*h = nil
	R.live.Add(-1)
}

func (R *Reference) DeleteStructure(mol *Handle) { R.release(mol) }

func (R *Reference) NewD3Model(err *ErrorChannel, h Handle) Handle {
	mol := R.structure(err, h)
	if mol == nil {
		return nil
	}
	for _, z := range mol.numbers {
		if z > MaxZ {
			err.Setf("No reference data for element with atomic number %d", z)
			return nil
		}
	}
	n := len(mol.numbers)
	disp := &refModel{mol: mol, disp2: defaultDisp2, disp3: defaultDisp3, cn: defaultCN}
	disp.pairs = make([][]pairData, n)
	for i, zi := range mol.numbers {
		disp.pairs[i] = make([]pairData, n)
		for j, zj := range mol.numbers {
			disp.pairs[i][j] = newPairData(zi, zj)
		}
	}
	R.live.Add(1)
	return disp
}

func (R *Reference) model(err *ErrorChannel, h Handle) *refModel {
	disp, ok := h.(*refModel)
	if !ok || disp == nil {
		err.Set("Invalid or uninitialized dispersion model handle")
		return nil
	}
	return disp
}

func (R *Reference) SetModelRealspaceCutoff(err *ErrorChannel, h Handle, disp2, disp3, cn float64) {
	disp := R.model(err, h)
	if disp == nil {
		return
	}
	if disp2 <= 0 || disp3 <= 0 || cn <= 0 {
		err.Setf("Realspace cutoffs must be positive, got %g, %g, %g", disp2, disp3, cn)
		return
	}
	disp.disp2, disp.disp3, disp.cn = disp2, disp3, cn
}

func (R *Reference) DeleteModel(disp *Handle) { R.release(disp) }

func (R *Reference) newParam(p *refParam) Handle {
	R.live.Add(1)
	return p
}

func (R *Reference) NewZeroDamping(err *ErrorChannel, s6, s8, s9, rs6, rs8, alp float64) Handle {
	return R.newParam(&refParam{kind: zeroDamping, s6: s6, s8: s8, s9: s9, rs6: rs6, rs8: rs8, alp: alp})
}

func (R *Reference) NewRationalDamping(err *ErrorChannel, s6, s8, s9, a1, a2, alp float64) Handle {
	return R.newParam(&refParam{kind: rationalDamping, s6: s6, s8: s8, s9: s9, a1: a1, a2: a2, alp: alp})
}

func (R *Reference) NewMZeroDamping(err *ErrorChannel, s6, s8, s9, rs6, rs8, alp, bet float64) Handle {
	return R.newParam(&refParam{kind: mzeroDamping, s6: s6, s8: s8, s9: s9, rs6: rs6, rs8: rs8, alp: alp, bet: bet})
}

func (R *Reference) NewMRationalDamping(err *ErrorChannel, s6, s8, s9, a1, a2, alp float64) Handle {
	return R.newParam(&refParam{kind: mrationalDamping, s6: s6, s8: s8, s9: s9, a1: a1, a2: a2, alp: alp})
}

func (R *Reference) NewOptimizedPowerDamping(err *ErrorChannel, s6, s8, s9, a1, a2, alp, bet float64) Handle {
	return R.newParam(&refParam{kind: optimizedPowerDamping, s6: s6, s8: s8, s9: s9, a1: a1, a2: a2, alp: alp, bet: bet})
}

func (R *Reference) load(err *ErrorChannel, kind dampingKind, method string, atm bool) Handle {
	p, e := damping.lookup(kind, method, atm)
	if e != nil {
		err.Set(e.Error())
		return nil
	}
	return R.newParam(p)
}

func (R *Reference) LoadZeroDamping(err *ErrorChannel, method string, atm bool) Handle {
	return R.load(err, zeroDamping, method, atm)
}

func (R *Reference) LoadRationalDamping(err *ErrorChannel, method string, atm bool) Handle {
	return R.load(err, rationalDamping, method, atm)
}

func (R *Reference) LoadMZeroDamping(err *ErrorChannel, method string, atm bool) Handle {
	return R.load(err, mzeroDamping, method, atm)
}

func (R *Reference) LoadMRationalDamping(err *ErrorChannel, method string, atm bool) Handle {
	return R.load(err, mrationalDamping, method, atm)
}

func (R *Reference) LoadOptimizedPowerDamping(err *ErrorChannel, method string, atm bool) Handle {
	return R.load(err, optimizedPowerDamping, method, atm)
}

func (R *Reference) DeleteParam(param *Handle) { R.release(param) }

//query resolves and cross-checks the handles of a dispersion evaluation.
func (R *Reference) query(err *ErrorChannel, hmol, hdisp, hparam Handle) (*refStructure, *refModel, *refParam) {
	mol := R.structure(err, hmol)
	if mol == nil {
		return nil, nil, nil
	}
	disp := R.model(err, hdisp)
	if disp == nil {
		return nil, nil, nil
	}
	if disp.mol != mol {
		err.Set("Dispersion model was not created for this structure")
		return nil, nil, nil
	}
	param, ok := hparam.(*refParam)
	if !ok || param == nil {
		err.Set("Damping parameters are not initialized")
		return nil, nil, nil
	}
	return mol, disp, param
}

func (R *Reference) GetDispersion(err *ErrorChannel, hmol, hdisp, hparam Handle, energy *float64, gradient, sigma []float64) {
	mol, disp, param := R.query(err, hmol, hdisp, hparam)
	if err.IsSet() {
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
	f := func(pos []r3.Vec, lat [3]r3.Vec) float64 {
		return disp.energy(param, pos, lat, nil, nil)
	}
	e := f(mol.pos, mol.lattice)
	if math.IsNaN(e) || math.IsInf(e, 0) {
		err.Set("Dispersion energy is not finite")
		return
	}
	*energy = e
	derivatives(f, mol.pos, mol.lattice, gradient, sigma)
}

func (R *Reference) GetPairwiseDispersion(err *ErrorChannel, hmol, hdisp, hparam Handle, pair2, pair3 []float64) {
	mol, disp, param := R.query(err, hmol, hdisp, hparam)
	if err.IsSet() {
		return
	}
	n := len(mol.numbers)
	if len(pair2) != n*n || len(pair3) != n*n {
		err.Setf("Pairwise buffers need %d elements, got %d and %d", n*n, len(pair2), len(pair3))
		return
	}
	for i := range pair2 {
		pair2[i] = 0
		pair3[i] = 0
	}
	disp.energy(param, mol.pos, mol.lattice, pair2, pair3)
}

//energy sums the two- and three-body terms for the coordinates pos and
//lattice lat. If pair2 and pair3 are not nil, they are filled with the
//pairwise resolved energies. Self-image terms of periodic systems count
//in the total but are not assigned to any pair.
func (M *refModel) energy(P *refParam, pos []r3.Vec, lat [3]r3.Vec, pair2, pair3 []float64) float64 {
	n := len(pos)
	var e2, e3 float64
	trans := translations(lat, M.mol.periodic, M.disp2)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for _, t := range trans {
				if i == j && t == (r3.Vec{}) {
					continue
				}
				r := r3.Norm(r3.Sub(r3.Add(pos[j], t), pos[i]))
				if r > M.disp2 {
					continue
				}
				e := 0.5 * P.pair(M.pairs[i][j], r)
				e2 += e
				if pair2 != nil && i != j {
					pair2[i*n+j] += e
				}
			}
		}
	}
	if P.s9 == 0 {
		return e2
	}
	for a := 0; a < n; a++ {
		for b := 0; b < a; b++ {
			rab := r3.Norm(r3.Sub(pos[a], pos[b]))
			if rab > M.disp3 {
				continue
			}
			for c := 0; c < b; c++ {
				rac := r3.Norm(r3.Sub(pos[a], pos[c]))
				rbc := r3.Norm(r3.Sub(pos[b], pos[c]))
				if rac > M.disp3 || rbc > M.disp3 {
					continue
				}
				e := P.triple(M.pairs[a][b], M.pairs[a][c], M.pairs[b][c], rab, rac, rbc)
				e3 += e
				if pair3 != nil {
					e6 := e / 6
					pair3[a*n+b] += e6
					pair3[b*n+a] += e6
					pair3[a*n+c] += e6
					pair3[c*n+a] += e6
					pair3[b*n+c] += e6
					pair3[c*n+b] += e6
				}
			}
		}
	}
	return e2 + e3
}

//translations returns the lattice translations within cutoff along the
//periodic directions, the zero vector first.
func translations(lat [3]r3.Vec, periodic [3]bool, cutoff float64) []r3.Vec {
	var rep [3]int
	vol := math.Abs(r3.Dot(lat[0], r3.Cross(lat[1], lat[2])))
	for i := 0; i < 3; i++ {
		if !periodic[i] || vol == 0 {
			continue
		}
		height := vol / r3.Norm(r3.Cross(lat[(i+1)%3], lat[(i+2)%3]))
		rep[i] = int(math.Ceil(cutoff / height))
	}
	ret := []r3.Vec{{}}
	for a := -rep[0]; a <= rep[0]; a++ {
		for b := -rep[1]; b <= rep[1]; b++ {
			for c := -rep[2]; c <= rep[2]; c++ {
				if a == 0 && b == 0 && c == 0 {
					continue
				}
				t := r3.Add(r3.Add(r3.Scale(float64(a), lat[0]), r3.Scale(float64(b), lat[1])), r3.Scale(float64(c), lat[2]))
				ret = append(ret, t)
			}
		}
	}
	return ret
}
