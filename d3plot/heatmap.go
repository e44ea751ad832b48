/*
 * heatmap.go, part of dftd3.
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

//Package d3plot draws pairwise dispersion energies as heat maps.
package d3plot

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//pairGrid presents a square energy matrix as a plotter.GridXYZ.
//Atoms are numbered from 1, column c is the X axis, row r the Y axis.
type pairGrid struct {
	m mat.Matrix
}

func (g pairGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}
func (g pairGrid) Z(c, r int) float64 { return g.m.At(r, c) }
func (g pairGrid) X(c int) float64    { return float64(c + 1) }
func (g pairGrid) Y(r int) float64    { return float64(r + 1) }

//Number of colors in the heat map palette.
const colors = 255

//PairHeatMap returns a plot of the square matrix pairs, such as the
//Pair2Matrix or Pair3Matrix of a dftd3.PairwiseOutput.
func PairHeatMap(pairs mat.Matrix, title string) (*plot.Plot, error) {
	if pairs == nil {
		return nil, fmt.Errorf("d3plot: given nil matrix")
	}
	r, c := pairs.Dims()
	if r != c || r == 0 {
		return nil, fmt.Errorf("d3plot: pair matrix must be square and not empty, got %dx%d", r, c)
	}
	min, max := mat.Min(pairs), mat.Max(pairs)
	if min == max {
		//a flat map, usually all zeros
		min -= 0.5
		max += 0.5
	}
	cm := moreland.ExtendedBlackBody()
	cm.SetMin(min)
	cm.SetMax(max)
	h := plotter.NewHeatMap(pairGrid{pairs}, cm.Palette(colors))
	h.Min, h.Max = min, max
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "Atom"
	p.Y.Label.Text = "Atom"
	p.Add(h)
	p.X.Min, p.X.Max = 0.5, float64(c)+0.5
	p.Y.Min, p.Y.Max = 0.5, float64(r)+0.5
	return p, nil
}

//SavePairHeatMap draws pairs with PairHeatMap and saves the plot to filename.
//The format is taken from the extension: png, svg, pdf, eps, jpg or tif.
func SavePairHeatMap(pairs mat.Matrix, title, filename string) error {
	switch ext := strings.ToLower(filename[strings.LastIndex(filename, ".")+1:]); ext {
	case "png", "svg", "pdf", "eps", "jpg", "jpeg", "tif", "tiff":
	default:
		return fmt.Errorf("d3plot: unsupported image format '%s'", ext)
	}
	p, err := PairHeatMap(pairs, title)
	if err != nil {
		return err
	}
	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}
