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

package dftd3

import (
	"runtime"

	"github.com/rmera/dftd3/engine"
	"github.com/sirupsen/logrus"
)

//GCP is a geometric counterpoise correction bound to one structure, which it owns.
type GCP struct {
	s      *Structure
	h      engine.Handle
	method string
	basis  string
}

//NewGCP loads the counterpoise parameters for the method/basis pair and
//binds them to s, which the GCP takes over as NewModel does.
//An empty method, or an empty basis for a method that needs one, gives a
//correction that is always zero.
func NewGCP(s *Structure, method, basis string) (*GCP, error) {
	if !s.usable() {
		return nil, ErrReleased
	}
	ch := engine.NewErrorChannel()
	h := s.eng.LoadGCPParam(ch, s.h, method, basis)
	if ch.IsSet() && method != "" && basis == "" {
		//methods without a basis-free entry fall back to no correction.
		Log.WithFields(logrus.Fields{"method": method, "reason": ch.Message()}).Warn("dftd3: no basis given for the counterpoise correction, it will be zero")
		ch = engine.NewErrorChannel()
		h = s.eng.LoadGCPParam(ch, s.h, "", "")
	} else if method == "" {
		Log.WithFields(logrus.Fields{"basis": basis}).Warn("dftd3: no method given for the counterpoise correction, it will be zero")
	}
	if ch.IsSet() {
		return nil, &UnknownMethodError{decoration: decoration{[]string{"NewGCP"}}, Method: method, Basis: basis, Message: ch.Message()}
	}
	g := &GCP{s: s.move(), h: h, method: method, basis: basis}
	runtime.SetFinalizer(g, (*GCP).Close)
	Log.WithFields(logrus.Fields{"method": method, "basis": basis}).Debug("dftd3: counterpoise correction created")
	return g, nil
}

//NewGCPFromArrays creates the structure and the counterpoise correction in one go.
func NewGCPFromArrays(numbers []int, positions, lattice []float64, periodic []bool, method, basis string) (*GCP, error) {
	s, err := NewStructure(numbers, positions, lattice, periodic)
	if err != nil {
		return nil, errDecorate(err, "NewGCPFromArrays")
	}
	g, err := NewGCP(s, method, basis)
	if err != nil {
		s.Close()
		return nil, errDecorate(err, "NewGCPFromArrays")
	}
	return g, nil
}

func (G *GCP) live() bool {
	return G != nil && G.h != nil
}

//Counterpoise evaluates the correction, and its gradient and strain
//derivative if grad is true.
func (G *GCP) Counterpoise(grad bool) (*Output, error) {
	if !G.live() {
		return nil, ErrReleased
	}
	out := new(Output)
	if grad {
		out.Gradient = make([]float64, 3*len(G.s.numbers))
		out.Sigma = make([]float64, 9)
	}
	var energy float64
	ch := engine.NewErrorChannel()
	G.s.eng.GetCounterpoise(ch, G.s.h, G.h, &energy, out.Gradient, out.Sigma)
	runtime.KeepAlive(G)
	if ch.IsSet() {
		return nil, engineError("Counterpoise", ch)
	}
	out.Energy = energy
	return out, nil
}

//SetRealspaceCutoff sets the cutoff radii, in Bohr, of the basis set
//superposition term and the short-range basis term. Both default to 60 Bohr.
func (G *GCP) SetRealspaceCutoff(bas, srb float64) error {
	if !G.live() {
		return ErrReleased
	}
	ch := engine.NewErrorChannel()
	G.s.eng.SetGCPRealspaceCutoff(ch, G.h, bas, srb)
	runtime.KeepAlive(G)
	if ch.IsSet() {
		return engineError("SetRealspaceCutoff", ch)
	}
	return nil
}

//Configure applies the counterpoise cutoffs in cfg.
func (G *GCP) Configure(cfg *Config) error {
	if cfg == nil {
		return errNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return errDecorate(err, "Configure")
	}
	c := cfg.Counterpoise
	return errDecorate(G.SetRealspaceCutoff(c.Bas, c.SRB), "Configure")
}

func (G *GCP) Update(positions, lattice []float64) error {
	if !G.live() {
		return ErrReleased
	}
	return errDecorate(G.s.Update(positions, lattice), "GCP.Update")
}

func (G *GCP) NAtoms() int {
	if !G.live() {
		return 0
	}
	return G.s.NAtoms()
}

//Method returns the method and basis the correction was loaded for.
func (G *GCP) Method() (string, string) {
	return G.method, G.basis
}

//Close releases the correction and then its structure. It is safe to call it more than once.
func (G *GCP) Close() {
	if !G.live() {
		return
	}
	G.s.eng.DeleteGCP(&G.h)
	G.h = nil
	G.s.release()
	runtime.SetFinalizer(G, nil)
}
