/*
 * gcp_test.go, part of dftd3.
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
	"errors"
	"testing"
)

var h2positionsEq = []float64{0, 0, 0, 0, 0, 1.4}

func counterpoise(Te *testing.T, method, basis string) *Output {
	g, err := NewGCPFromArrays(h2numbers, h2positionsEq, nil, nil, method, basis)
	if err != nil {
		Te.Fatal(err)
	}
	defer g.Close()
	out, err := g.Counterpoise(true)
	if err != nil {
		Te.Fatal(err)
	}
	return out
}

func TestGCPNoMethod(Te *testing.T) {
	useReference(Te)
	out := counterpoise(Te, "", "")
	if out.Energy != 0 {
		Te.Errorf("No method should mean no correction, got %g", out.Energy)
	}
	for _, v := range append(out.Gradient, out.Sigma...) {
		if v != 0 {
			Te.Errorf("Non-zero derivatives for no correction: %v %v", out.Gradient, out.Sigma)
			break
		}
	}
}

func TestGCPNoBasis(Te *testing.T) {
	R := useReference(Te)
	g, err := NewGCPFromArrays(h2numbers, h2positionsEq, nil, nil, "hf", "")
	if err != nil {
		Te.Fatal(err)
	}
	out, err := g.Counterpoise(true)
	if err != nil {
		Te.Fatal(err)
	}
	if out.Energy != 0 {
		Te.Errorf("No basis should mean no correction, got %g", out.Energy)
	}
	if m, b := g.Method(); m != "hf" || b != "" {
		Te.Errorf("Wrong method/basis %s/%s", m, b)
	}
	g.Close()
	if R.Live() != 0 {
		Te.Errorf("%d handles alive", R.Live())
	}
	//a method that isn't in the tables still fails
	if _, err = NewGCPFromArrays(h2numbers, h2positionsEq, nil, nil, "nomethod", "def2-svp"); err == nil {
		Te.Error("Expected an error for an unknown method")
	}
}

func TestGCPEnergies(Te *testing.T) {
	R := useReference(Te)
	if e := counterpoise(Te, "b97-3c", "").Energy; e >= 0 {
		Te.Errorf("The short-range basis term should be negative, got %g", e)
	}
	out := counterpoise(Te, "PBEh-3c", "")
	if out.Energy <= 0 {
		Te.Errorf("The counterpoise correction should be positive, got %g", out.Energy)
	}
	if len(out.Gradient) != 6 || len(out.Sigma) != 9 {
		Te.Errorf("Wrong output sizes %d %d", len(out.Gradient), len(out.Sigma))
	}
	if e := counterpoise(Te, "B3LYP", "def2-SVP").Energy; e <= 0 {
		Te.Errorf("The counterpoise correction should be positive, got %g", e)
	}
	if R.Live() != 0 {
		Te.Errorf("%d handles alive", R.Live())
	}
}

func TestGCPUnknown(Te *testing.T) {
	R := useReference(Te)
	s, err := NewStructure(h2numbers, h2positionsEq, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	_, err = NewGCP(s, "b3lyp", "cc-pv5z")
	var merr *UnknownMethodError
	if !errors.As(err, &merr) || merr.Basis != "cc-pv5z" {
		Te.Errorf("Expected an UnknownMethodError, got %v", err)
	}
	//a failed NewGCP leaves the structure with the caller
	if s.NAtoms() != 2 {
		Te.Error("The structure was consumed by a failed NewGCP")
	}
	g, err := NewGCP(s, "hf-3c", "minis")
	if err != nil {
		Te.Fatal(err)
	}
	if s.NAtoms() != 0 || g.NAtoms() != 2 {
		Te.Error("The structure was not moved into the correction")
	}
	if m, b := g.Method(); m != "hf-3c" || b != "minis" {
		Te.Errorf("Wrong method %s/%s", m, b)
	}
	g.Close()
	g.Close()
	if R.Live() != 0 {
		Te.Errorf("%d handles alive", R.Live())
	}
}

func TestGCPCutoffs(Te *testing.T) {
	useReference(Te)
	g, err := NewGCPFromArrays(h2numbers, h2positionsEq, nil, nil, "pbeh3c", "")
	if err != nil {
		Te.Fatal(err)
	}
	defer g.Close()
	full, err := g.Counterpoise(false)
	if err != nil {
		Te.Fatal(err)
	}
	if err = g.SetRealspaceCutoff(1, 1); err != nil {
		Te.Fatal(err)
	}
	cut, err := g.Counterpoise(false)
	if err != nil {
		Te.Fatal(err)
	}
	if cut.Energy != 0 || full.Energy == 0 {
		Te.Errorf("Cutoffs shorter than the bond should remove the correction: %g %g", full.Energy, cut.Energy)
	}
	if err = g.SetRealspaceCutoff(-1, 1); err == nil {
		Te.Error("Expected an error for a negative cutoff")
	}
	if err = g.Configure(DefaultConfig()); err != nil {
		Te.Fatal(err)
	}
	if err = g.Update([]float64{0, 0, 0, 0, 0, 2.8}, nil); err != nil {
		Te.Fatal(err)
	}
	far, err := g.Counterpoise(false)
	if err != nil {
		Te.Fatal(err)
	}
	if far.Energy >= full.Energy {
		Te.Errorf("The correction should decay with distance: %g %g", full.Energy, far.Energy)
	}
}
