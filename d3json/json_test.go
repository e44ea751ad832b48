/*
 * json_test.go, part of dftd3.
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

package d3json

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/dftd3"
	"github.com/rmera/dftd3/engine"
)

func h2Record(Te *testing.T) *Record {
	dftd3.SetEngine(engine.NewReference())
	Te.Cleanup(func() { dftd3.SetEngine(nil) })
	m, err := dftd3.NewModelFromArrays([]int{1, 1}, []float64{0, 0, 0, 0, 0, 1.4}, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	defer m.Close()
	p, err := dftd3.LoadParam("d3bj", "pbe0", false)
	if err != nil {
		Te.Fatal(err)
	}
	defer p.Close()
	out, err := m.Dispersion(p, true)
	if err != nil {
		Te.Fatal(err)
	}
	pw, err := m.PairwiseDispersion(p)
	if err != nil {
		Te.Fatal(err)
	}
	return NewRecord(m, p, out, pw)
}

func TestRecord(Te *testing.T) {
	rec := h2Record(Te)
	if rec.Damping != "pbe0/rational damping" || len(rec.Gradient) != 6 || len(rec.Pair2) != 4 {
		Te.Errorf("Incomplete record %+v", rec)
	}
	var b bytes.Buffer
	if err := Write(&b, rec); err != nil {
		Te.Fatal(err)
	}
	if strings.Contains(b.String(), "Lattice") {
		Te.Error("An absent lattice was written")
	}
	rec2, err := Read(&b)
	if err != nil {
		Te.Fatal(err)
	}
	if rec2.Output().Energy != rec.Energy || rec2.Pairwise().Total() != rec.Pairwise().Total() {
		Te.Errorf("Record changed: %+v %+v", rec, rec2)
	}
}

func TestBadRecord(Te *testing.T) {
	rec := &Record{Numbers: []int{1, 1}, Positions: []float64{0, 0, 0}}
	if err := Write(new(bytes.Buffer), rec); err == nil {
		Te.Error("Expected an error for short positions")
	}
	if _, err := Read(strings.NewReader(`{"Numbers":[1],"Positions":[0,0,0],"Sigma":[1]}`)); err == nil {
		Te.Error("Expected an error for a short sigma")
	}
}

//TestFiles writes the same record with each compression.
func TestFiles(Te *testing.T) {
	rec := h2Record(Te)
	dir := Te.TempDir()
	for _, name := range []string{"h2.json", "h2.json.gz", "h2.json.zst", "h2.json.z"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, rec); err != nil {
			Te.Fatal(err)
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			Te.Fatal(err)
		}
		if plain := bytes.HasPrefix(raw, []byte(`{"Numbers"`)); plain != (compression(name) == "") {
			Te.Errorf("%s: wrong compression", name)
		}
		rec2, err := ReadFile(path)
		if err != nil {
			Te.Fatal(err)
		}
		if rec2.Energy != rec.Energy {
			Te.Errorf("%s: energy changed %g %g", name, rec.Energy, rec2.Energy)
		}
	}
	if _, err := ReadFile(filepath.Join(dir, "missing.json")); err == nil {
		Te.Error("Expected an error for a missing file")
	}
}

func TestErrorDecoration(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "garbage.json")
	if err := os.WriteFile(name, []byte("not json"), 0644); err != nil {
		Te.Fatal(err)
	}
	_, err := ReadFile(name)
	var jerr *Error
	if !errors.As(err, &jerr) {
		Te.Fatalf("Expected a d3json error, got %v", err)
	}
	jerr.Decorate("caller")
	deco := jerr.Decorate("")
	if len(deco) != 3 || deco[0] != "Read" || deco[1] != "ReadFile" || deco[2] != "caller" {
		Te.Errorf("Decorations lost: %v", deco)
	}
	if !jerr.Critical() {
		Te.Error("Read errors should be critical")
	}
}
