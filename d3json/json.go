/*
 * json.go, part of dftd3.
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
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rmera/dftd3"
)

//Record is a ready-to-serialize container for a dispersion calculation.
//Lengths are in Bohr and energies in Hartree. Damping holds the damping
//scheme and, if any, the method.
type Record struct {
	Numbers   []int
	Positions []float64
	Lattice   []float64 `json:",omitempty"`
	Damping   string
	Energy    float64
	Gradient  []float64 `json:",omitempty"`
	Sigma     []float64 `json:",omitempty"`
	Pair2     []float64 `json:",omitempty"`
	Pair3     []float64 `json:",omitempty"`
}

//NewRecord collects the structure of m, the parameters p and the outputs
//of a calculation. out and pairs can be nil.
func NewRecord(m *dftd3.Model, p *dftd3.Param, out *dftd3.Output, pairs *dftd3.PairwiseOutput) *Record {
	s := m.Structure()
	r := &Record{
		Numbers:   s.Numbers(),
		Positions: s.Positions(),
		Lattice:   s.Lattice(),
	}
	if p != nil {
		r.Damping = p.String()
	}
	if out != nil {
		r.Energy, r.Gradient, r.Sigma = out.Unpack()
	}
	if pairs != nil {
		r.Pair2, r.Pair3 = pairs.Unpack()
	}
	return r
}

//Output returns the energy, gradient and strain derivative of the record.
func (R *Record) Output() *dftd3.Output {
	return &dftd3.Output{Energy: R.Energy, Gradient: R.Gradient, Sigma: R.Sigma}
}

//Pairwise returns the pairwise energies of the record, or nil if there are none.
func (R *Record) Pairwise() *dftd3.PairwiseOutput {
	if R.Pair2 == nil {
		return nil
	}
	return &dftd3.PairwiseOutput{N: len(R.Numbers), Pair2: R.Pair2, Pair3: R.Pair3}
}

//check verifies that the buffers in R have sizes consistent with its atoms.
func (R *Record) check() error {
	n := len(R.Numbers)
	sizes := []struct {
		name   string
		got    int
		want   int
		absent bool
	}{
		{"Positions", len(R.Positions), 3 * n, false},
		{"Lattice", len(R.Lattice), 9, R.Lattice == nil},
		{"Gradient", len(R.Gradient), 3 * n, R.Gradient == nil},
		{"Sigma", len(R.Sigma), 9, R.Sigma == nil},
		{"Pair2", len(R.Pair2), n * n, R.Pair2 == nil},
		{"Pair3", len(R.Pair3), n * n, R.Pair3 == nil},
	}
	for _, v := range sizes {
		if !v.absent && v.got != v.want {
			return fmt.Errorf("%s has %d elements, expected %d", v.name, v.got, v.want)
		}
	}
	return nil
}

//Write encodes rec as JSON into w.
func Write(w io.Writer, rec *Record) error {
	if err := rec.check(); err != nil {
		return &Error{err.Error(), "", []string{"Write"}, true}
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(rec); err != nil {
		return &Error{err.Error(), "", []string{"Write"}, true}
	}
	return nil
}

//Read decodes a Record from r.
func Read(r io.Reader) (*Record, error) {
	rec := new(Record)
	dec := json.NewDecoder(r)
	if err := dec.Decode(rec); err != nil {
		return nil, &Error{err.Error(), "", []string{"Read"}, true}
	}
	if err := rec.check(); err != nil {
		return nil, &Error{err.Error(), "", []string{"Read"}, true}
	}
	return rec, nil
}

//compression returns the compression format for the file name.
func compression(name string) string {
	name = strings.ToLower(name)
	switch {
	case strings.HasSuffix(name, ".gz"):
		return "gzip"
	case strings.HasSuffix(name, ".zst"):
		return "zstd"
	case strings.HasSuffix(name, ".z"):
		return "flate"
	}
	return ""
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

//zstdReadCloser is needed because *zstd.Decoder's Close returns nothing.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//WriteFile writes rec to the file name, compressed according to its extension.
func WriteFile(name string, rec *Record) error {
	f, err := os.Create(name)
	if err != nil {
		return &Error{err.Error(), name, []string{"WriteFile"}, true}
	}
	defer f.Close()
	buf := bufio.NewWriter(f)
	var w io.WriteCloser
	switch compression(name) {
	case "gzip":
		w, err = gzip.NewWriterLevel(buf, gzip.BestCompression)
	case "zstd":
		w, err = zstd.NewWriter(buf, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case "flate":
		w, err = flate.NewWriter(buf, flate.BestCompression)
	default:
		w = nopCloser{buf}
	}
	if err != nil {
		return &Error{err.Error(), name, []string{"WriteFile"}, true}
	}
	if err = Write(w, rec); err != nil {
		return errDecorate(err, "WriteFile")
	}
	if err = w.Close(); err != nil {
		return &Error{err.Error(), name, []string{"WriteFile"}, true}
	}
	if err = buf.Flush(); err != nil {
		return &Error{err.Error(), name, []string{"WriteFile"}, true}
	}
	return nil
}

//ReadFile reads a Record from the file name, decompressing it according to its extension.
func ReadFile(name string) (*Record, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &Error{err.Error(), name, []string{"ReadFile"}, true}
	}
	defer f.Close()
	buf := bufio.NewReader(f)
	var r io.ReadCloser
	switch compression(name) {
	case "gzip":
		r, err = gzip.NewReader(buf)
	case "zstd":
		var d *zstd.Decoder
		d, err = zstd.NewReader(buf)
		r = zstdReadCloser{d}
	case "flate":
		r = flate.NewReader(buf)
	default:
		r = io.NopCloser(buf)
	}
	if err != nil {
		return nil, &Error{err.Error(), name, []string{"ReadFile"}, true}
	}
	defer r.Close()
	rec, err := Read(r)
	if err != nil {
		return nil, errDecorate(err, "ReadFile")
	}
	return rec, nil
}

//Errors

//Error is the error type of this package. It fulfills dftd3.Error.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	if err.filename == "" {
		return "d3json error: " + err.message
	}
	return fmt.Sprintf("d3json file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error.
func (E *Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file associated to the error, if any.
func (err *Error) FileName() string { return err.filename }

func (err *Error) Critical() bool { return err.critical }

func errDecorate(err error, caller string) error {
	if err2, ok := err.(dftd3.Error); ok {
		err2.Decorate(caller)
	}
	return err
}
