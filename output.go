/*
 * output.go, part of dftd3.
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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Output is the result of an energy evaluation. Gradient (3N, in Hartree/Bohr)
//and Sigma (the 3x3 strain derivative, row-major, in Hartree) are nil unless
//they were requested.
type Output struct {
	Energy   float64
	Gradient []float64
	Sigma    []float64
}

//Unpack returns the energy, gradient and strain derivative, in that order.
func (O *Output) Unpack() (float64, []float64, []float64) {
	return O.Energy, O.Gradient, O.Sigma
}

//GradientMatrix returns the gradient as an Nx3 matrix, or nil if it was not computed.
//The matrix shares its data with O.Gradient.
func (O *Output) GradientMatrix() *mat.Dense {
	if O.Gradient == nil {
		return nil
	}
	return mat.NewDense(len(O.Gradient)/3, 3, O.Gradient)
}

//SigmaMatrix returns the strain derivative as a 3x3 matrix, or nil if it was not computed.
//The matrix shares its data with O.Sigma.
func (O *Output) SigmaMatrix() *mat.Dense {
	if O.Sigma == nil {
		return nil
	}
	return mat.NewDense(3, 3, O.Sigma)
}

//PairwiseOutput holds the pairwise resolved dispersion energy: Pair2 is the
//additive two-body part and Pair3 the non-additive three-body part. Both are
//NxN, row-major, with a zero diagonal.
type PairwiseOutput struct {
	N     int
	Pair2 []float64
	Pair3 []float64
}

//Unpack returns the two-body and three-body matrices, in that order.
func (P *PairwiseOutput) Unpack() ([]float64, []float64) {
	return P.Pair2, P.Pair3
}

func (P *PairwiseOutput) Pair2Matrix() *mat.Dense {
	return mat.NewDense(P.N, P.N, P.Pair2)
}

func (P *PairwiseOutput) Pair3Matrix() *mat.Dense {
	return mat.NewDense(P.N, P.N, P.Pair3)
}

//Total returns the sum of all the pair energies. For molecular systems this
//equals the dispersion energy. For periodic ones, the interactions of atoms
//with their own images are not assigned to any pair, and are missing here.
func (P *PairwiseOutput) Total() float64 {
	return floats.Sum(P.Pair2) + floats.Sum(P.Pair3)
}
