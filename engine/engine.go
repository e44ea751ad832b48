/*
 * engine.go, part of dftd3.
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

//Handle is an opaque object owned by the engine that created it.
//A nil Handle is never valid.
type Handle interface{}

//Engine is the numerical D3 engine. All the methods that can fail take an
//ErrorChannel, which the engine sets on failure. The caller must check the
//channel right after each call, before using any output buffer.
//Output buffers are always allocated by the caller: 3*natoms for gradients,
//9 for the strain derivatives and natoms*natoms for pairwise energies.
//Nil gradient and sigma buffers mean that those quantities are not requested.
type Engine interface {

	//Version returns the engine version as major*10000+minor*100+patch
	Version() int

	//NewStructure creates a molecular structure. lattice and periodic can be nil.
	NewStructure(err *ErrorChannel, numbers []int, positions, lattice []float64, periodic []bool) Handle

	//UpdateStructure replaces coordinates and (if non-nil) lattice of mol.
	UpdateStructure(err *ErrorChannel, mol Handle, positions, lattice []float64)

	DeleteStructure(mol *Handle)

	//NewD3Model creates the dispersion model for the structure mol.
	NewD3Model(err *ErrorChannel, mol Handle) Handle

	//SetModelRealspaceCutoff sets the cutoffs for the two-body, three-body
	//and coordination number evaluations, in Bohr.
	SetModelRealspaceCutoff(err *ErrorChannel, disp Handle, disp2, disp3, cn float64)

	DeleteModel(disp *Handle)

	NewZeroDamping(err *ErrorChannel, s6, s8, s9, rs6, rs8, alp float64) Handle
	LoadZeroDamping(err *ErrorChannel, method string, atm bool) Handle
	NewRationalDamping(err *ErrorChannel, s6, s8, s9, a1, a2, alp float64) Handle
	LoadRationalDamping(err *ErrorChannel, method string, atm bool) Handle
	NewMZeroDamping(err *ErrorChannel, s6, s8, s9, rs6, rs8, alp, bet float64) Handle
	LoadMZeroDamping(err *ErrorChannel, method string, atm bool) Handle
	NewMRationalDamping(err *ErrorChannel, s6, s8, s9, a1, a2, alp float64) Handle
	LoadMRationalDamping(err *ErrorChannel, method string, atm bool) Handle
	NewOptimizedPowerDamping(err *ErrorChannel, s6, s8, s9, a1, a2, alp, bet float64) Handle
	LoadOptimizedPowerDamping(err *ErrorChannel, method string, atm bool) Handle

	DeleteParam(param *Handle)

	//GetDispersion evaluates the dispersion energy, and, if gradient and sigma
	//are not nil, its gradient and strain derivatives.
	GetDispersion(err *ErrorChannel, mol, disp, param Handle, energy *float64, gradient, sigma []float64)

	//GetPairwiseDispersion fills pair2 and pair3 with the pairwise resolved
	//additive and non-additive energies.
	GetPairwiseDispersion(err *ErrorChannel, mol, disp, param Handle, pair2, pair3 []float64)

	//LoadGCPParam loads geometric counterpoise parameters for a method/basis pair.
	//Empty strings select the zero correction.
	LoadGCPParam(err *ErrorChannel, mol Handle, method, basis string) Handle

	SetGCPRealspaceCutoff(err *ErrorChannel, gcp Handle, bas, srb float64)

	GetCounterpoise(err *ErrorChannel, mol, gcp Handle, energy *float64, gradient, sigma []float64)

	DeleteGCP(gcp *Handle)
}

var defaultEngine Engine

//Default returns the engine used by the dftd3 package unless told otherwise.
//Built with the sdftd3 tag, this is the s-dftd3 library, otherwise it is
//the pure-Go reference engine.
func Default() Engine {
	if defaultEngine == nil {
		defaultEngine = newDefault()
	}
	return defaultEngine
}
