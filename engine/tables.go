/*
 * tables.go, part of dftd3.
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

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/damping.yaml
var dampingYAML []byte

//go:embed data/gcp.yaml
var gcpYAML []byte

//NormalizeName lower-cases s and strips dashes, underscores and blanks,
//so "B97-D", "b97_d" and "B97 D" all become "b97d".
func NormalizeName(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}

type dampingEntry struct {
	S6  *float64 `yaml:"s6"`
	S8  float64  `yaml:"s8"`
	Rs6 float64  `yaml:"rs6"`
	Rs8 *float64 `yaml:"rs8"`
	A1  float64  `yaml:"a1"`
	A2  float64  `yaml:"a2"`
	Alp *float64 `yaml:"alp"`
	Bet float64  `yaml:"bet"`
}

type dampingTables struct {
	Aliases        map[string]string       `yaml:"aliases"`
	Rational       map[string]dampingEntry `yaml:"rational"`
	Zero           map[string]dampingEntry `yaml:"zero"`
	MRational      map[string]dampingEntry `yaml:"mrational"`
	MZero          map[string]dampingEntry `yaml:"mzero"`
	OptimizedPower map[string]dampingEntry `yaml:"optimizedpower"`
}

type srbEntry struct {
	Rscal float64 `yaml:"rscal"`
	Qscal float64 `yaml:"qscal"`
}

type gcpEntry struct {
	Sigma float64   `yaml:"sigma"`
	Eta   float64   `yaml:"eta"`
	Alpha float64   `yaml:"alpha"`
	Beta  float64   `yaml:"beta"`
	SRB   *srbEntry `yaml:"srb"`
}

var damping = mustParse[dampingTables](dampingYAML, "damping")

var gcpTable = mustParse[map[string]map[string]gcpEntry](gcpYAML, "gcp")

//The tables are compiled into the binary, so failing to parse them is a
//bug, not a runtime condition.
func mustParse[T any](data []byte, name string) T {
	var t T
	if err := yaml.Unmarshal(data, &t); err != nil {
		panic(fmt.Sprintf("dftd3/engine: corrupted %s table: %s", name, err.Error()))
	}
	return t
}

func (D dampingTables) table(kind dampingKind) map[string]dampingEntry {
	switch kind {
	case zeroDamping:
		return D.Zero
	case rationalDamping:
		return D.Rational
	case mzeroDamping:
		return D.MZero
	case mrationalDamping:
		return D.MRational
	default:
		return D.OptimizedPower
	}
}

//lookup returns a parameter set for method, with the ATM term switched
//on or off according to atm.
func (D dampingTables) lookup(kind dampingKind, method string, atm bool) (*refParam, error) {
	key := NormalizeName(method)
	if alias, ok := D.Aliases[key]; ok {
		key = alias
	}
	e, ok := D.table(kind)[key]
	if !ok {
		return nil, fmt.Errorf("No entry for '%s' present in %s damping parameters", method, kind)
	}
	p := &refParam{kind: kind, s6: 1, s8: e.S8, s9: 0, rs6: e.Rs6, rs8: 1, a1: e.A1, a2: e.A2, alp: 14, bet: e.Bet}
	if e.S6 != nil {
		p.s6 = *e.S6
	}
	if e.Rs8 != nil {
		p.rs8 = *e.Rs8
	}
	if e.Alp != nil {
		p.alp = *e.Alp
	}
	if atm {
		p.s9 = 1
	}
	return p, nil
}

//methods returns the sorted method names tabulated for kind.
func (D dampingTables) methods(kind dampingKind) []string {
	t := D.table(kind)
	ret := make([]string, 0, len(t))
	for k := range t {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

//Schemes maps the section names of the damping table to damping kinds.
var schemes = map[string]dampingKind{
	"zero":           zeroDamping,
	"rational":       rationalDamping,
	"mzero":          mzeroDamping,
	"mrational":      mrationalDamping,
	"optimizedpower": optimizedPowerDamping,
}

//Coefficients is a tabulated damping parameter set. Fields not used by
//the damping scheme are zero.
type Coefficients struct {
	S6, S8, S9 float64
	Rs6, Rs8   float64
	A1, A2     float64
	Alp, Bet   float64
}

//Tabulated returns the coefficients the reference tables hold for method
//under scheme ("zero", "rational", "mzero", "mrational" or "optimizedpower").
//S9 is 1 if atm is true, 0 otherwise.
func Tabulated(scheme, method string, atm bool) (Coefficients, error) {
	kind, ok := schemes[scheme]
	if !ok {
		return Coefficients{}, fmt.Errorf("Unknown damping scheme '%s'", scheme)
	}
	p, err := damping.lookup(kind, method, atm)
	if err != nil {
		return Coefficients{}, err
	}
	return Coefficients{S6: p.s6, S8: p.s8, S9: p.s9, Rs6: p.rs6, Rs8: p.rs8, A1: p.a1, A2: p.a2, Alp: p.alp, Bet: p.bet}, nil
}

//TabulatedMethods returns the sorted, normalized method names the reference
//tables hold for scheme, or nil if the scheme does not exist.
func TabulatedMethods(scheme string) []string {
	kind, ok := schemes[scheme]
	if !ok {
		return nil
	}
	return damping.methods(kind)
}

func lookupGCP(method, basis string) (*gcpEntry, error) {
	bases, ok := gcpTable[NormalizeName(method)]
	if !ok {
		return nil, fmt.Errorf("Method '%s' not known for counterpoise correction", method)
	}
	e, ok := bases[NormalizeName(basis)]
	if !ok {
		return nil, fmt.Errorf("No counterpoise parameters for method '%s' with basis '%s'", method, basis)
	}
	return &e, nil
}
