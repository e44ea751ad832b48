/*
 * model.go, part of dftd3.
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
	"runtime"

	"github.com/rmera/dftd3/engine"
	"github.com/sirupsen/logrus"
)

//Model is a D3 dispersion model bound to one structure, which it owns.
type Model struct {
	s *Structure
	h engine.Handle
}

//NewModel creates a dispersion model for s. The model takes s over: after a
//successful call s is released and must not be used. If NewModel fails, s
//is left untouched.
func NewModel(s *Structure) (*Model, error) {
	if !s.usable() {
		return nil, ErrReleased
	}
	ch := engine.NewErrorChannel()
	h := s.eng.NewD3Model(ch, s.h)
	if ch.IsSet() {
		return nil, engineError("NewModel", ch)
	}
	m := &Model{s: s.move(), h: h}
	runtime.SetFinalizer(m, (*Model).Close)
	Log.WithFields(logrus.Fields{"natoms": len(m.s.numbers)}).Debug("dftd3: dispersion model created")
	return m, nil
}

//NewModelFromArrays creates the structure and the model in one go.
//The arguments are those of NewStructure.
func NewModelFromArrays(numbers []int, positions, lattice []float64, periodic []bool) (*Model, error) {
	s, err := NewStructure(numbers, positions, lattice, periodic)
	if err != nil {
		return nil, errDecorate(err, "NewModelFromArrays")
	}
	m, err := NewModel(s)
	if err != nil {
		s.Close()
		return nil, errDecorate(err, "NewModelFromArrays")
	}
	return m, nil
}

func (M *Model) live() bool {
	return M != nil && M.h != nil
}

//Dispersion evaluates the dispersion energy with the parameters p. If grad
//is true, the gradient and the strain derivative are also computed.
func (M *Model) Dispersion(p *Param, grad bool) (*Output, error) {
	if !M.live() {
		return nil, ErrReleased
	}
	ph, err := p.handle(M.s.eng, "Dispersion")
	if err != nil {
		return nil, err
	}
	out := new(Output)
	if grad {
		out.Gradient = make([]float64, 3*len(M.s.numbers))
		out.Sigma = make([]float64, 9)
	}
	var energy float64
	ch := engine.NewErrorChannel()
	M.s.eng.GetDispersion(ch, M.s.h, M.h, ph, &energy, out.Gradient, out.Sigma)
	runtime.KeepAlive(p)
	runtime.KeepAlive(M)
	if ch.IsSet() {
		return nil, engineError("Dispersion", ch)
	}
	out.Energy = energy
	Log.WithFields(logrus.Fields{"damping": p, "energy": energy}).Debug("dftd3: dispersion energy")
	return out, nil
}

//PairwiseDispersion returns the dispersion energy resolved by atom pairs.
func (M *Model) PairwiseDispersion(p *Param) (*PairwiseOutput, error) {
	if !M.live() {
		return nil, ErrReleased
	}
	ph, err := p.handle(M.s.eng, "PairwiseDispersion")
	if err != nil {
		return nil, err
	}
	n := len(M.s.numbers)
	out := &PairwiseOutput{N: n, Pair2: make([]float64, n*n), Pair3: make([]float64, n*n)}
	ch := engine.NewErrorChannel()
	M.s.eng.GetPairwiseDispersion(ch, M.s.h, M.h, ph, out.Pair2, out.Pair3)
	runtime.KeepAlive(p)
	runtime.KeepAlive(M)
	if ch.IsSet() {
		return nil, engineError("PairwiseDispersion", ch)
	}
	return out, nil
}

//SetRealspaceCutoff sets the cutoff radii, in Bohr, for the two-body term,
//the three-body term and the coordination numbers. They apply to the
//following evaluations. The defaults are 60, 40 and 40 Bohr.
func (M *Model) SetRealspaceCutoff(disp2, disp3, cn float64) error {
	if !M.live() {
		return ErrReleased
	}
	ch := engine.NewErrorChannel()
	M.s.eng.SetModelRealspaceCutoff(ch, M.h, disp2, disp3, cn)
	runtime.KeepAlive(M)
	if ch.IsSet() {
		return engineError("SetRealspaceCutoff", ch)
	}
	return nil
}

//Configure applies the dispersion cutoffs in cfg.
func (M *Model) Configure(cfg *Config) error {
	if cfg == nil {
		return errNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return errDecorate(err, "Configure")
	}
	d := cfg.Dispersion
	return errDecorate(M.SetRealspaceCutoff(d.Disp2, d.Disp3, d.CN), "Configure")
}

//Update replaces the coordinates of the model's structure, see Structure.Update.
func (M *Model) Update(positions, lattice []float64) error {
	if !M.live() {
		return ErrReleased
	}
	return errDecorate(M.s.Update(positions, lattice), "Model.Update")
}

//NAtoms returns the number of atoms of the model's structure.
func (M *Model) NAtoms() int {
	if !M.live() {
		return 0
	}
	return M.s.NAtoms()
}

//Structure returns the structure owned by M, for reading. It can't be
//given to another Model or GCP, and closing it does nothing.
func (M *Model) Structure() *Structure {
	return M.s
}

//Close releases the model and then its structure. It is safe to call it more than once.
func (M *Model) Close() {
	if !M.live() {
		return
	}
	M.s.eng.DeleteModel(&M.h)
	M.h = nil
	M.s.release()
	runtime.SetFinalizer(M, nil)
	Log.Debug("dftd3: dispersion model released")
}
