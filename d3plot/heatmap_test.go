/*
 * heatmap_test.go, part of dftd3.
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

package d3plot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/dftd3"
	"github.com/rmera/dftd3/engine"
	"gonum.org/v1/gonum/mat"
)

//TestPairHeatMap plots the two-body energies of a water dimer.
func TestPairHeatMap(Te *testing.T) {
	dftd3.SetEngine(engine.NewReference())
	defer dftd3.SetEngine(nil)
	numbers := []int{8, 1, 1, 8, 1, 1}
	positions := dftd3.ToBohr([]float64{
		-0.702, -0.056, 0.009,
		-1.022, 0.847, -0.011,
		0.257, 0.042, 0.005,
		2.220, 0.026, 0.001,
		2.597, -0.411, 0.767,
		2.593, -0.449, -0.758,
	})
	m, err := dftd3.NewModelFromArrays(numbers, positions, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	defer m.Close()
	p, err := dftd3.LoadRationalDamping("b3lyp", true)
	if err != nil {
		Te.Fatal(err)
	}
	defer p.Close()
	pw, err := m.PairwiseDispersion(p)
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "pairs.png")
	if err = SavePairHeatMap(pw.Pair2Matrix(), "Water dimer", name); err != nil {
		Te.Fatal(err)
	}
	if st, err := os.Stat(name); err != nil || st.Size() == 0 {
		Te.Errorf("Plot not written: %v", err)
	}
	//all-zero matrices still give a plot
	if _, err = PairHeatMap(mat.NewDense(2, 2, nil), "zeros"); err != nil {
		Te.Error(err)
	}
}

func TestPairHeatMapErrors(Te *testing.T) {
	if _, err := PairHeatMap(mat.NewDense(2, 3, nil), "bad"); err == nil {
		Te.Error("Expected an error for a non-square matrix")
	}
	if _, err := PairHeatMap(nil, "bad"); err == nil {
		Te.Error("Expected an error for a nil matrix")
	}
	if err := SavePairHeatMap(mat.NewDense(1, 1, []float64{1}), "bad", "pairs.xyz"); err == nil {
		Te.Error("Expected an error for an unknown format")
	}
}
