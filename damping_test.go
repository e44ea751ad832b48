/*
 * damping_test.go, part of dftd3.
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
	"runtime"
	"sort"
	"testing"
)

func TestBuilderMissingFields(Te *testing.T) {
	cases := []struct {
		build func() error
		kind  DampingKind
		field string
	}{
		{func() error { _, err := NewZeroDampingBuilder().Build(); return err }, ZeroDamping, "s8"},
		{func() error { _, err := NewZeroDampingBuilder().S8(1).Build(); return err }, ZeroDamping, "rs6"},
		{func() error { _, err := NewRationalDampingBuilder().S8(1).A2(5).Build(); return err }, RationalDamping, "a1"},
		{func() error { _, err := NewRationalDampingBuilder().S8(1).A1(0.4).Build(); return err }, RationalDamping, "a2"},
		{func() error { _, err := NewModifiedZeroDampingBuilder().S8(1).Rs6(1.2).Build(); return err }, ModifiedZeroDamping, "bet"},
		{func() error { _, err := NewModifiedZeroDampingBuilder().Bet(0.01).Build(); return err }, ModifiedZeroDamping, "s8"},
		{func() error { _, err := NewModifiedRationalDampingBuilder().S8(1).A2(3).Build(); return err }, ModifiedRationalDamping, "a1"},
		{func() error { _, err := NewOptimizedPowerDampingBuilder().S8(1).A1(0.5).A2(3).Build(); return err }, OptimizedPowerDamping, "bet"},
		{func() error { _, err := NewOptimizedPowerDampingBuilder().S6(1).S9(0).Alp(16).Build(); return err }, OptimizedPowerDamping, "s8"},
	}
	for i, c := range cases {
		err := c.build()
		var ierr *IncompleteParamError
		if !errors.As(err, &ierr) {
			Te.Errorf("case %d: expected an IncompleteParamError, got %v", i, err)
			continue
		}
		if ierr.Damping != c.kind || ierr.Field != c.field {
			Te.Errorf("case %d: expected missing %s in %s, got %s", i, c.field, c.kind, ierr)
		}
	}
}

func TestBuilderDefaults(Te *testing.T) {
	z, err := NewZeroDampingBuilder().S8(1.7).Rs6(1.2).Build()
	if err != nil {
		Te.Fatal(err)
	}
	if z != (ZeroDampingParam{S6: 1, S8: 1.7, S9: 1, Rs6: 1.2, Rs8: 1, Alp: 14}) {
		Te.Errorf("Wrong defaults: %+v", z)
	}
	o, err := NewOptimizedPowerDampingBuilder().S8(0.5).A1(0.6).A2(2.5).Bet(8).S9(0).Build()
	if err != nil {
		Te.Fatal(err)
	}
	if o != (OptimizedPowerDampingParam{S6: 1, S8: 0.5, S9: 0, A1: 0.6, A2: 2.5, Alp: 14, Bet: 8}) {
		Te.Errorf("Wrong defaults: %+v", o)
	}
	m, err := NewModifiedZeroDampingBuilder().S8(1.5).Rs6(1.3).Bet(0.01).Rs8(1.5).Build()
	if err != nil {
		Te.Fatal(err)
	}
	if m.Rs8 != 1.5 || m.Alp != 14 || m.S6 != 1 || m.S9 != 1 {
		Te.Errorf("Wrong values: %+v", m)
	}
}

func TestBuilderReuse(Te *testing.T) {
	base := NewRationalDampingBuilder().S8(2.2609)
	full := base.A1(0.5545).A2(3.2297)
	if _, err := base.Build(); err == nil {
		Te.Error("Configuring a copy changed the original builder")
	}
	p1, err := full.Build()
	if err != nil {
		Te.Fatal(err)
	}
	p2, err := full.Build()
	if err != nil {
		Te.Fatal(err)
	}
	if p1 != p2 {
		Te.Error("Build is not repeatable")
	}
	other := full.A1(0.4)
	if p3, _ := full.Build(); p3.A1 != 0.5545 {
		Te.Error("Setter modified the builder it was called on")
	}
	if p4, _ := other.Build(); p4.A1 != 0.4 {
		Te.Error("Setter didn't take")
	}
}

func TestParseDampingKind(Te *testing.T) {
	cases := map[string]DampingKind{
		"d3bj": RationalDamping, "BJ": RationalDamping,
		"d3zero": ZeroDamping, "zero": ZeroDamping,
		"d3bjm": ModifiedRationalDamping, "d3mbj": ModifiedRationalDamping, "bjm": ModifiedRationalDamping, "mbj": ModifiedRationalDamping,
		"D3-Zero-M": ModifiedZeroDamping, "d3mzero": ModifiedZeroDamping, "zerom": ModifiedZeroDamping, "mzero": ModifiedZeroDamping,
		"d3op": OptimizedPowerDamping, "op": OptimizedPowerDamping,
	}
	for v, kind := range cases {
		k, err := ParseDampingKind(v)
		if err != nil {
			Te.Error(err)
			continue
		}
		if k != kind {
			Te.Errorf("%s parsed as %s, expected %s", v, k, kind)
		}
	}
	_, err := ParseDampingKind("d4")
	var verr *UnknownVersionError
	if !errors.As(err, &verr) || verr.Version != "d4" {
		Te.Errorf("Expected an UnknownVersionError, got %v", err)
	}
}

func TestLoadErrors(Te *testing.T) {
	R := useReference(Te)
	loaders := []func(string, bool) (*Param, error){
		LoadZeroDamping, LoadRationalDamping, LoadModifiedZeroDamping,
		LoadModifiedRationalDamping, LoadOptimizedPowerDamping,
	}
	for i, load := range loaders {
		p, err := load("not-a-functional", false)
		var merr *UnknownMethodError
		if p != nil || !errors.As(err, &merr) {
			Te.Errorf("loader %d: expected an UnknownMethodError, got %v", i, err)
			continue
		}
		if merr.Method != "not-a-functional" || merr.Message == "" {
			Te.Errorf("loader %d: incomplete error %s", i, merr)
		}
	}
	_, err := LoadParam("d5", "pbe", false)
	var verr *UnknownVersionError
	if !errors.As(err, &verr) {
		Te.Errorf("Expected an UnknownVersionError, got %v", err)
	}
	_, err = LoadParam("d3bj", "not-a-functional", true)
	var merr *UnknownMethodError
	if !errors.As(err, &merr) || merr.Damping != RationalDamping.String() {
		Te.Errorf("Expected an UnknownMethodError, got %v", err)
	}
	if _, err = ZeroDampingFromTable("not-a-functional", false); !errors.As(err, &merr) {
		Te.Errorf("Expected an UnknownMethodError, got %v", err)
	}
	if R.Live() != 0 {
		Te.Errorf("Failed loads left %d live handles", R.Live())
	}
}

func TestLoadParam(Te *testing.T) {
	useReference(Te)
	p, err := LoadParam("d3bj", "B97-D", true)
	if err != nil {
		Te.Fatal(err)
	}
	defer p.Close()
	if p.Kind() != RationalDamping || p.Method() != "b97d" {
		Te.Errorf("Wrong parameters: %s", p)
	}
	m := Methods(ModifiedRationalDamping)
	if i := sort.SearchStrings(m, "b3lyp"); i == len(m) || m[i] != "b3lyp" {
		Te.Errorf("b3lyp missing from %v", m)
	}
}

func TestFromTable(Te *testing.T) {
	r, err := RationalDampingFromTable("b97d", false)
	if err != nil {
		Te.Fatal(err)
	}
	if r != (RationalDampingParam{S6: 1, S8: 2.2609, S9: 0, A1: 0.5545, A2: 3.2297, Alp: 14}) {
		Te.Errorf("Wrong record: %+v", r)
	}
	z, err := ZeroDampingFromTable("B3-LYP", true)
	if err != nil {
		Te.Fatal(err)
	}
	if z.S9 != 1 || z.Rs8 != 1 || z.Rs6 != 1.261 {
		Te.Errorf("Wrong record: %+v", z)
	}
}

func TestParamClose(Te *testing.T) {
	R := useReference(Te)
	p, err := NewRationalDampingParam(1, 2.2609, 1, 0.5545, 3.2297, 14)
	if err != nil {
		Te.Fatal(err)
	}
	if p.Kind() != RationalDamping || p.Method() != "" {
		Te.Errorf("Wrong parameters: %s", p)
	}
	if R.Live() != 1 {
		Te.Errorf("Expected 1 live handle, got %d", R.Live())
	}
	p.Close()
	p.Close()
	if R.Live() != 0 {
		Te.Errorf("Expected no live handles, got %d", R.Live())
	}
}

//Parameters that are dropped without Close are released by the garbage
//collector while others are in use.
func TestDroppedParams(Te *testing.T) {
	R := useReference(Te)
	m, err := NewModelFromArrays(h2numbers, h2positions, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	defer m.Close()
	for i := 0; i < 50; i++ {
		p, err := LoadRationalDamping("b3lyp", true)
		if err != nil {
			Te.Fatal(err)
		}
		if _, err = m.PairwiseDispersion(p); err != nil {
			Te.Fatal(err)
		}
		runtime.GC()
	}
	for i := 0; i < 3; i++ {
		runtime.GC()
	}
	if l := R.Live(); l < 2 || l > 52 {
		Te.Errorf("Unexpected number of live handles: %d", l)
	}
}
