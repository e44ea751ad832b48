//go:build sdftd3
// +build sdftd3

/*
 * native.go, part of dftd3.
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

//In order to use this file you need the s-dftd3 library and its C header,
//which must be obtained from Prof. Stefan Grimme's group (github.com/dftd3/simple-dftd3).
//Please cite the DFT-D3 references if you use it.

package engine

/*
#cgo pkg-config: s-dftd3
#include <stdbool.h>
#include <stdlib.h>
#include "dftd3.h"
*/
import "C"

import "unsafe"

//Length of the buffer used to retrieve error messages from the library.
const messageBuffer = 512

//Native calls the s-dftd3 library through its C API.
type Native struct{}

//NewNative returns the s-dftd3 engine.
func NewNative() *Native {
	return new(Native)
}

func newDefault() Engine {
	return NewNative()
}

//call runs f with a fresh library error handle and copies a failure, if
//any, into err.
func call(err *ErrorChannel, f func(e C.dftd3_error)) {
	e := C.dftd3_new_error()
	defer C.dftd3_delete_error(&e)
	f(e)
	if C.dftd3_check_error(e) == 0 {
		return
	}
	buf := (*C.char)(C.malloc(messageBuffer))
	defer C.free(unsafe.Pointer(buf))
	size := C.int(messageBuffer)
	C.dftd3_get_error(e, buf, &size)
	err.Set(C.GoString(buf))
}

func doubles(s []float64) *C.double {
	if len(s) == 0 {
		return nil
	}
	return (*C.double)(unsafe.Pointer(&s[0]))
}

func (N *Native) Version() int {
	return int(C.dftd3_get_version())
}

func (N *Native) NewStructure(err *ErrorChannel, numbers []int, positions, lattice []float64, periodic []bool) Handle {
	if len(positions) != 3*len(numbers) {
		err.Setf("Invalid dimension for positions, expected %d, got %d", 3*len(numbers), len(positions))
		return nil
	}
	var cnumbers *C.int
	if len(numbers) > 0 {
		n := make([]C.int, len(numbers))
		for i, z := range numbers {
			n[i] = C.int(z)
		}
		cnumbers = &n[0]
	}
	var cperiodic *C.bool
	if periodic != nil {
		p := make([]C.bool, len(periodic))
		for i, v := range periodic {
			p[i] = C.bool(v)
		}
		cperiodic = &p[0]
	}
	var mol C.dftd3_structure
	call(err, func(e C.dftd3_error) {
		mol = C.dftd3_new_structure(e, C.int(len(numbers)), cnumbers, doubles(positions), doubles(lattice), cperiodic)
	})
	if err.IsSet() {
		return nil
	}
	return mol
}

func (N *Native) UpdateStructure(err *ErrorChannel, mol Handle, positions, lattice []float64) {
	m, ok := mol.(C.dftd3_structure)
	if !ok {
		err.Set("Invalid or uninitialized structure handle")
		return
	}
	call(err, func(e C.dftd3_error) {
		C.dftd3_update_structure(e, m, doubles(positions), doubles(lattice))
	})
}

func (N *Native) DeleteStructure(mol *Handle) {
	if mol == nil || *mol == nil {
		return
	}
	m := (*mol).(C.dftd3_structure)
	C.dftd3_delete_structure(&m)
	*mol = nil
}

func (N *Native) NewD3Model(err *ErrorChannel, mol Handle) Handle {
	m, ok := mol.(C.dftd3_structure)
	if !ok {
		err.Set("Invalid or uninitialized structure handle")
		return nil
	}
	var disp C.dftd3_model
	call(err, func(e C.dftd3_error) { disp = C.dftd3_new_d3_model(e, m) })
	if err.IsSet() {
		return nil
	}
	return disp
}

func (N *Native) SetModelRealspaceCutoff(err *ErrorChannel, disp Handle, disp2, disp3, cn float64) {
	d, ok := disp.(C.dftd3_model)
	if !ok {
		err.Set("Invalid or uninitialized dispersion model handle")
		return
	}
	call(err, func(e C.dftd3_error) {
		C.dftd3_set_model_realspace_cutoff(e, d, C.double(disp2), C.double(disp3), C.double(cn))
	})
}

func (N *Native) DeleteModel(disp *Handle) {
	if disp == nil || *disp == nil {
		return
	}
	d := (*disp).(C.dftd3_model)
	C.dftd3_delete_model(&d)
	*disp = nil
}

func param(err *ErrorChannel, f func(e C.dftd3_error) C.dftd3_param) Handle {
	var p C.dftd3_param
	call(err, func(e C.dftd3_error) { p = f(e) })
	if err.IsSet() {
		return nil
	}
	return p
}

func (N *Native) NewZeroDamping(err *ErrorChannel, s6, s8, s9, rs6, rs8, alp float64) Handle {
	return param(err, func(e C.dftd3_error) C.dftd3_param {
		return C.dftd3_new_zero_damping(e, C.double(s6), C.double(s8), C.double(s9), C.double(rs6), C.double(rs8), C.double(alp))
	})
}

func (N *Native) NewRationalDamping(err *ErrorChannel, s6, s8, s9, a1, a2, alp float64) Handle {
	return param(err, func(e C.dftd3_error) C.dftd3_param {
		return C.dftd3_new_rational_damping(e, C.double(s6), C.double(s8), C.double(s9), C.double(a1), C.double(a2), C.double(alp))
	})
}

func (N *Native) NewMZeroDamping(err *ErrorChannel, s6, s8, s9, rs6, rs8, alp, bet float64) Handle {
	return param(err, func(e C.dftd3_error) C.dftd3_param {
		return C.dftd3_new_mzero_damping(e, C.double(s6), C.double(s8), C.double(s9), C.double(rs6), C.double(rs8), C.double(alp), C.double(bet))
	})
}

func (N *Native) NewMRationalDamping(err *ErrorChannel, s6, s8, s9, a1, a2, alp float64) Handle {
	return param(err, func(e C.dftd3_error) C.dftd3_param {
		return C.dftd3_new_mrational_damping(e, C.double(s6), C.double(s8), C.double(s9), C.double(a1), C.double(a2), C.double(alp))
	})
}

func (N *Native) NewOptimizedPowerDamping(err *ErrorChannel, s6, s8, s9, a1, a2, alp, bet float64) Handle {
	return param(err, func(e C.dftd3_error) C.dftd3_param {
		return C.dftd3_new_optimizedpower_damping(e, C.double(s6), C.double(s8), C.double(s9), C.double(a1), C.double(a2), C.double(alp), C.double(bet))
	})
}

//load passes the method name to one of the library's table loaders.
func load(err *ErrorChannel, method string, atm bool, f func(C.dftd3_error, *C.char, C.bool) C.dftd3_param) Handle {
	cmethod := C.CString(method)
	defer C.free(unsafe.Pointer(cmethod))
	return param(err, func(e C.dftd3_error) C.dftd3_param { return f(e, cmethod, C.bool(atm)) })
}

func (N *Native) LoadZeroDamping(err *ErrorChannel, method string, atm bool) Handle {
	return load(err, method, atm, func(e C.dftd3_error, m *C.char, a C.bool) C.dftd3_param {
		return C.dftd3_load_zero_damping(e, m, a)
	})
}

func (N *Native) LoadRationalDamping(err *ErrorChannel, method string, atm bool) Handle {
	return load(err, method, atm, func(e C.dftd3_error, m *C.char, a C.bool) C.dftd3_param {
		return C.dftd3_load_rational_damping(e, m, a)
	})
}

func (N *Native) LoadMZeroDamping(err *ErrorChannel, method string, atm bool) Handle {
	return load(err, method, atm, func(e C.dftd3_error, m *C.char, a C.bool) C.dftd3_param {
		return C.dftd3_load_mzero_damping(e, m, a)
	})
}

func (N *Native) LoadMRationalDamping(err *ErrorChannel, method string, atm bool) Handle {
	return load(err, method, atm, func(e C.dftd3_error, m *C.char, a C.bool) C.dftd3_param {
		return C.dftd3_load_mrational_damping(e, m, a)
	})
}

func (N *Native) LoadOptimizedPowerDamping(err *ErrorChannel, method string, atm bool) Handle {
	return load(err, method, atm, func(e C.dftd3_error, m *C.char, a C.bool) C.dftd3_param {
		return C.dftd3_load_optimizedpower_damping(e, m, a)
	})
}

func (N *Native) DeleteParam(p *Handle) {
	if p == nil || *p == nil {
		return
	}
	h := (*p).(C.dftd3_param)
	C.dftd3_delete_param(&h)
	*p = nil
}

func (N *Native) GetDispersion(err *ErrorChannel, mol, disp, p Handle, energy *float64, gradient, sigma []float64) {
	m, ok1 := mol.(C.dftd3_structure)
	d, ok2 := disp.(C.dftd3_model)
	h, ok3 := p.(C.dftd3_param)
	if !ok1 || !ok2 || !ok3 {
		err.Set("Invalid or uninitialized handle in dispersion evaluation")
		return
	}
	var e C.double
	call(err, func(ce C.dftd3_error) {
		C.dftd3_get_dispersion(ce, m, d, h, &e, doubles(gradient), doubles(sigma))
	})
	*energy = float64(e)
}

func (N *Native) GetPairwiseDispersion(err *ErrorChannel, mol, disp, p Handle, pair2, pair3 []float64) {
	m, ok1 := mol.(C.dftd3_structure)
	d, ok2 := disp.(C.dftd3_model)
	h, ok3 := p.(C.dftd3_param)
	if !ok1 || !ok2 || !ok3 {
		err.Set("Invalid or uninitialized handle in pairwise dispersion evaluation")
		return
	}
	call(err, func(ce C.dftd3_error) {
		C.dftd3_get_pairwise_dispersion(ce, m, d, h, doubles(pair2), doubles(pair3))
	})
}

func (N *Native) LoadGCPParam(err *ErrorChannel, mol Handle, method, basis string) Handle {
	m, ok := mol.(C.dftd3_structure)
	if !ok {
		err.Set("Invalid or uninitialized structure handle")
		return nil
	}
	cmethod := C.CString(method)
	defer C.free(unsafe.Pointer(cmethod))
	cbasis := C.CString(basis)
	defer C.free(unsafe.Pointer(cbasis))
	var gcp C.dftd3_gcp
	call(err, func(e C.dftd3_error) { gcp = C.dftd3_load_gcp_param(e, m, cmethod, cbasis) })
	if err.IsSet() {
		return nil
	}
	return gcp
}

func (N *Native) SetGCPRealspaceCutoff(err *ErrorChannel, gcp Handle, bas, srb float64) {
	g, ok := gcp.(C.dftd3_gcp)
	if !ok {
		err.Set("Invalid or uninitialized counterpoise handle")
		return
	}
	call(err, func(e C.dftd3_error) { C.dftd3_set_gcp_realspace_cutoff(e, g, C.double(bas), C.double(srb)) })
}

func (N *Native) GetCounterpoise(err *ErrorChannel, mol, gcp Handle, energy *float64, gradient, sigma []float64) {
	m, ok1 := mol.(C.dftd3_structure)
	g, ok2 := gcp.(C.dftd3_gcp)
	if !ok1 || !ok2 {
		err.Set("Invalid or uninitialized handle in counterpoise evaluation")
		return
	}
	var e C.double
	call(err, func(ce C.dftd3_error) {
		C.dftd3_get_counterpoise(ce, m, g, &e, doubles(gradient), doubles(sigma))
	})
	*energy = float64(e)
}

func (N *Native) DeleteGCP(gcp *Handle) {
	if gcp == nil || *gcp == nil {
		return
	}
	g := (*gcp).(C.dftd3_gcp)
	C.dftd3_delete_gcp(&g)
	*gcp = nil
}
