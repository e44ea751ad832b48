/*
 * structure.go, part of dftd3.
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
	"runtime"

	"github.com/rmera/dftd3/engine"
	"github.com/sirupsen/logrus"
)

//Structure is a molecular structure as seen by the engine. The number of
//atoms, their atomic numbers and the periodicity are fixed at creation,
//coordinates and lattice can be changed with Update. All lengths are in Bohr.
//
//A Structure has a single owner. Passing it to NewModel or NewGCP moves it
//into the new object, and the original value can't be used anymore.
type Structure struct {
	eng       engine.Engine
	h         engine.Handle
	numbers   []int
	positions []float64
	lattice   []float64
	periodic  []bool
	owned     bool //moved into a Model or GCP
}

//NewStructure creates a Structure from atomic numbers and Cartesian
//positions (3 per atom, in Bohr). lattice (9 values, one lattice vector
//after the other) and periodic (3 values) can be nil.
func NewStructure(numbers []int, positions, lattice []float64, periodic []bool) (*Structure, error) {
	s, err := NewStructureWith(currentEngine(), numbers, positions, lattice, periodic)
	if err != nil {
		return nil, errDecorate(err, "NewStructure")
	}
	return s, nil
}

//NewStructureWith is like NewStructure, but the structure will be handled by eng.
func NewStructureWith(eng engine.Engine, numbers []int, positions, lattice []float64, periodic []bool) (*Structure, error) {
	natoms := len(numbers)
	if len(positions) != 3*natoms {
		return nil, &DimensionError{decoration{[]string{"NewStructureWith"}}, "positions", 3 * natoms, len(positions)}
	}
	if lattice != nil && len(lattice) != 9 {
		return nil, &DimensionError{decoration{[]string{"NewStructureWith"}}, "lattice", 9, len(lattice)}
	}
	if periodic != nil && len(periodic) != 3 {
		return nil, &DimensionError{decoration{[]string{"NewStructureWith"}}, "periodic", 3, len(periodic)}
	}
	for i, z := range numbers {
		if z < 1 || z > 118 {
			return nil, &EngineError{decoration{[]string{"NewStructureWith"}}, "NewStructureWith", fmt.Sprintf("invalid atomic number %d for atom %d", z, i+1)}
		}
	}
	ch := engine.NewErrorChannel()
	h := eng.NewStructure(ch, numbers, positions, lattice, periodic)
	if ch.IsSet() {
		return nil, &DegenerateGeometryError{decoration{[]string{"NewStructureWith"}}, ch.Message()}
	}
	s := &Structure{
		eng:       eng,
		h:         h,
		numbers:   append([]int(nil), numbers...),
		positions: append([]float64(nil), positions...),
	}
	if lattice != nil {
		s.lattice = append([]float64(nil), lattice...)
	}
	if periodic != nil {
		s.periodic = append([]bool(nil), periodic...)
	}
	runtime.SetFinalizer(s, (*Structure).Close)
	Log.WithFields(logrus.Fields{"natoms": natoms, "periodic": lattice != nil}).Debug("dftd3: structure created")
	return s, nil
}

//Update replaces the coordinates and, if lattice is not nil, the lattice.
//On failure the previous coordinates are kept.
func (S *Structure) Update(positions, lattice []float64) error {
	if S.h == nil {
		return ErrReleased
	}
	natoms := len(S.numbers)
	if len(positions) != 3*natoms {
		return &DimensionError{decoration{[]string{"Update"}}, "positions", 3 * natoms, len(positions)}
	}
	if lattice != nil && len(lattice) != 9 {
		return &DimensionError{decoration{[]string{"Update"}}, "lattice", 9, len(lattice)}
	}
	ch := engine.NewErrorChannel()
	S.eng.UpdateStructure(ch, S.h, positions, lattice)
	if ch.IsSet() {
		//the engine may have taken part of the new data before failing.
		S.eng.UpdateStructure(engine.NewErrorChannel(), S.h, S.positions, S.lattice)
		return &DegenerateGeometryError{decoration{[]string{"Update"}}, ch.Message()}
	}
	copy(S.positions, positions)
	if lattice != nil {
		S.lattice = append(S.lattice[:0], lattice...)
	}
	return nil
}

//NAtoms returns the number of atoms in the structure, or 0 if it has been released.
func (S *Structure) NAtoms() int {
	if S.h == nil {
		return 0
	}
	return len(S.numbers)
}

//Numbers returns a copy of the atomic numbers.
func (S *Structure) Numbers() []int {
	return append([]int(nil), S.numbers...)
}

//Positions returns a copy of the current coordinates, in Bohr.
func (S *Structure) Positions() []float64 {
	return append([]float64(nil), S.positions...)
}

//Lattice returns a copy of the current lattice, or nil if there is none.
func (S *Structure) Lattice() []float64 {
	if S.lattice == nil {
		return nil
	}
	return append([]float64(nil), S.lattice...)
}

//Periodic returns a copy of the periodicity flags, or nil if none were given.
func (S *Structure) Periodic() []bool {
	if S.periodic == nil {
		return nil
	}
	return append([]bool(nil), S.periodic...)
}

//Close releases the engine handle. It is safe to call it more than once.
//It does nothing on a structure owned by a Model or GCP, which is released
//together with its owner.
func (S *Structure) Close() {
	if S == nil || S.owned {
		return
	}
	S.release()
}

func (S *Structure) release() {
	if S == nil || S.h == nil {
		return
	}
	S.eng.DeleteStructure(&S.h)
	S.h = nil
	runtime.SetFinalizer(S, nil)
	Log.Debug("dftd3: structure released")
}

//usable reports whether S can be moved into a new Model or GCP.
func (S *Structure) usable() bool {
	return S != nil && S.h != nil && !S.owned
}

//move transfers the contents of S to a new, owned Structure and leaves S released.
func (S *Structure) move() *Structure {
	n := new(Structure)
	*n = *S
	n.owned = true
	*S = Structure{}
	runtime.SetFinalizer(S, nil)
	return n
}
