/*
 * version_test.go, part of dftd3.
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
	"testing"

	"github.com/rmera/dftd3/engine"
)

func TestVersion(Te *testing.T) {
	useReference(Te)
	v := VersionCompact()
	if v[0]*10000+v[1]*100+v[2] != engine.ReferenceVersion {
		Te.Errorf("Compact version %v doesn't match %d", v, engine.ReferenceVersion)
	}
	if Version() != "1.2.1" {
		Te.Errorf("Unexpected version string %s", Version())
	}
}

func TestAtomicNumbers(Te *testing.T) {
	z, err := AtomicNumbers([]string{"H", "c", "CL", " Xe ", "D"})
	if err != nil {
		Te.Fatal(err)
	}
	for i, want := range []int{1, 6, 17, 54, 1} {
		if z[i] != want {
			Te.Errorf("Wrong atomic number %d for index %d", z[i], i)
		}
	}
	if _, err = AtomicNumber("Xx"); err == nil {
		Te.Error("Expected an error for an unknown symbol")
	}
	if Symbol(16) != "S" || Symbol(0) != "" {
		Te.Error("Wrong symbols")
	}
	b := ToBohr([]float64{1, 0, 0})
	if b[0] != A2Bohr {
		Te.Errorf("Wrong conversion %v", b)
	}
}
