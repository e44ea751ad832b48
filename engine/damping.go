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

package engine

import "math"

type dampingKind int

const (
	zeroDamping dampingKind = iota
	rationalDamping
	mzeroDamping
	mrationalDamping
	optimizedPowerDamping
)

func (D dampingKind) String() string {
	switch D {
	case zeroDamping:
		return "zero"
	case rationalDamping:
		return "rational"
	case mzeroDamping:
		return "modified zero"
	case mrationalDamping:
		return "modified rational"
	case optimizedPowerDamping:
		return "optimized power"
	}
	return "unknown"
}

//ATM damping radius scaling, as in D3.
const rs9 = 4.0 / 3.0

//refParam is a resolved damping parameter set. Fields not used by a scheme
//are ignored.
type refParam struct {
	kind dampingKind
	s6   float64
	s8   float64
	s9   float64
	rs6  float64
	rs8  float64
	a1   float64
	a2   float64
	alp  float64
	bet  float64
}

//pair returns the damped two-body dispersion energy of a pair at distance r.
func (P *refParam) pair(d pairData, r float64) float64 {
	r2 := r * r
	r6 := r2 * r2 * r2
	r8 := r6 * r2
	switch P.kind {
	case rationalDamping, mrationalDamping:
		f := P.a1*d.rbj + P.a2
		f2 := f * f
		f6 := f2 * f2 * f2
		return -(P.s6*d.c6/(r6+f6) + P.s8*d.c8/(r8+f6*f2))
	case zeroDamping, mzeroDamping:
		var shift float64
		if P.kind == mzeroDamping {
			shift = P.bet * d.rvdw
		}
		t6 := math.Pow(r/(P.rs6*d.rvdw)+shift, -P.alp)
		t8 := math.Pow(r/(P.rs8*d.rvdw)+shift, -(P.alp + 2))
		f6 := 1 / (1 + 6*t6)
		f8 := 1 / (1 + 6*t8)
		return -(P.s6*d.c6*f6/r6 + P.s8*d.c8*f8/r8)
	case optimizedPowerDamping:
		r0 := P.a1*d.rbj + P.a2
		rb := math.Pow(r, P.bet)
		t6 := rb / (rb*r6 + math.Pow(r0, 6+P.bet))
		t8 := rb / (rb*r8 + math.Pow(r0, 8+P.bet))
		return -(P.s6*d.c6*t6 + P.s8*d.c8*t8)
	}
	return 0
}

//triple returns the Axilrod-Teller-Muto energy of three atoms, given the pair
//data and distances of the three pairs ab, ac and bc.
func (P *refParam) triple(ab, ac, bc pairData, rab, rac, rbc float64) float64 {
	if P.s9 == 0 {
		return 0
	}
	c9 := P.s9 * math.Sqrt(math.Abs(ab.c6*ac.c6*bc.c6))
	r2ab, r2ac, r2bc := rab*rab, rac*rac, rbc*rbc
	cosa := (r2ab + r2ac - r2bc) / (2 * rab * rac)
	cosb := (r2ab + r2bc - r2ac) / (2 * rab * rbc)
	cosc := (r2ac + r2bc - r2ab) / (2 * rac * rbc)
	ang := 3*cosa*cosb*cosc + 1
	rprod := rab * rac * rbc
	rmean := math.Cbrt(rprod)
	r0mean := rs9 * math.Cbrt(ab.rvdw*ac.rvdw*bc.rvdw)
	fdmp := 1 / (1 + 6*math.Pow(r0mean/rmean, P.alp+2))
	return c9 * ang * fdmp / (rprod * rprod * rprod)
}
