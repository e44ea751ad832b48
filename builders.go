/*
 * builders.go, part of dftd3.
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

//Builders collect damping coefficients one at a time. Setters return a
//modified copy, so a partially configured builder can be kept and reused.
//Missing fields are only reported by Build, required ones first in
//declaration order.

//coef is one coefficient of a builder. A nil value means "not set".
type coef struct {
	name     string
	val      *float64
	def      float64
	required bool
}

func set(v float64) *float64 { return &v }

func required(name string, v *float64) coef { return coef{name: name, val: v, required: true} }

func optional(name string, v *float64, def float64) coef { return coef{name: name, val: v, def: def} }

//resolve returns the values of coefs, with defaults applied, in the same order.
func resolve(kind DampingKind, coefs ...coef) ([]float64, error) {
	ret := make([]float64, len(coefs))
	for i, c := range coefs {
		switch {
		case c.val != nil:
			ret[i] = *c.val
		case c.required:
			return nil, &IncompleteParamError{decoration{[]string{"Build"}}, kind, c.name}
		default:
			ret[i] = c.def
		}
	}
	return ret, nil
}

const (
	defaultS6  = 1.0
	defaultS9  = 1.0
	defaultRs8 = 1.0
	defaultAlp = 14.0
)

//ZeroDampingBuilder builds a ZeroDampingParam. S8 and Rs6 are required.
type ZeroDampingBuilder struct {
	s6, s8, s9, rs6, rs8, alp *float64
}

func NewZeroDampingBuilder() ZeroDampingBuilder { return ZeroDampingBuilder{} }

func (B ZeroDampingBuilder) S6(v float64) ZeroDampingBuilder {
	B.s6 = set(v)
	return B
}

func (B ZeroDampingBuilder) S8(v float64) ZeroDampingBuilder {
	B.s8 = set(v)
	return B
}

func (B ZeroDampingBuilder) S9(v float64) ZeroDampingBuilder {
	B.s9 = set(v)
	return B
}

func (B ZeroDampingBuilder) Rs6(v float64) ZeroDampingBuilder {
	B.rs6 = set(v)
	return B
}

func (B ZeroDampingBuilder) Rs8(v float64) ZeroDampingBuilder {
	B.rs8 = set(v)
	return B
}

func (B ZeroDampingBuilder) Alp(v float64) ZeroDampingBuilder {
	B.alp = set(v)
	return B
}

//Build returns the parameter record, or an *IncompleteParamError.
func (B ZeroDampingBuilder) Build() (ZeroDampingParam, error) {
	v, err := resolve(ZeroDamping,
		optional("s6", B.s6, defaultS6),
		required("s8", B.s8),
		optional("s9", B.s9, defaultS9),
		required("rs6", B.rs6),
		optional("rs8", B.rs8, defaultRs8),
		optional("alp", B.alp, defaultAlp))
	if err != nil {
		return ZeroDampingParam{}, err
	}
	return ZeroDampingParam{v[0], v[1], v[2], v[3], v[4], v[5]}, nil
}

//Init builds the record and creates its parametrization.
func (B ZeroDampingBuilder) Init() (*Param, error) {
	p, err := B.Build()
	if err != nil {
		return nil, errDecorate(err, "Init")
	}
	return p.NewParam()
}

//RationalDampingBuilder builds a RationalDampingParam. S8, A1 and A2 are required.
type RationalDampingBuilder struct {
	s6, s8, s9, a1, a2, alp *float64
}

func NewRationalDampingBuilder() RationalDampingBuilder { return RationalDampingBuilder{} }

func (B RationalDampingBuilder) S6(v float64) RationalDampingBuilder {
	B.s6 = set(v)
	return B
}

func (B RationalDampingBuilder) S8(v float64) RationalDampingBuilder {
	B.s8 = set(v)
	return B
}

func (B RationalDampingBuilder) S9(v float64) RationalDampingBuilder {
	B.s9 = set(v)
	return B
}

func (B RationalDampingBuilder) A1(v float64) RationalDampingBuilder {
	B.a1 = set(v)
	return B
}

func (B RationalDampingBuilder) A2(v float64) RationalDampingBuilder {
	B.a2 = set(v)
	return B
}

func (B RationalDampingBuilder) Alp(v float64) RationalDampingBuilder {
	B.alp = set(v)
	return B
}

func (B RationalDampingBuilder) Build() (RationalDampingParam, error) {
	v, err := resolve(RationalDamping,
		optional("s6", B.s6, defaultS6),
		required("s8", B.s8),
		optional("s9", B.s9, defaultS9),
		required("a1", B.a1),
		required("a2", B.a2),
		optional("alp", B.alp, defaultAlp))
	if err != nil {
		return RationalDampingParam{}, err
	}
	return RationalDampingParam{v[0], v[1], v[2], v[3], v[4], v[5]}, nil
}

func (B RationalDampingBuilder) Init() (*Param, error) {
	p, err := B.Build()
	if err != nil {
		return nil, errDecorate(err, "Init")
	}
	return p.NewParam()
}

//ModifiedZeroDampingBuilder builds a ModifiedZeroDampingParam. S8, Rs6 and Bet are required.
type ModifiedZeroDampingBuilder struct {
	s6, s8, s9, rs6, rs8, alp, bet *float64
}

func NewModifiedZeroDampingBuilder() ModifiedZeroDampingBuilder {
	return ModifiedZeroDampingBuilder{}
}

func (B ModifiedZeroDampingBuilder) S6(v float64) ModifiedZeroDampingBuilder {
	B.s6 = set(v)
	return B
}

func (B ModifiedZeroDampingBuilder) S8(v float64) ModifiedZeroDampingBuilder {
	B.s8 = set(v)
	return B
}

func (B ModifiedZeroDampingBuilder) S9(v float64) ModifiedZeroDampingBuilder {
	B.s9 = set(v)
	return B
}

func (B ModifiedZeroDampingBuilder) Rs6(v float64) ModifiedZeroDampingBuilder {
	B.rs6 = set(v)
	return B
}

func (B ModifiedZeroDampingBuilder) Rs8(v float64) ModifiedZeroDampingBuilder {
	B.rs8 = set(v)
	return B
}

func (B ModifiedZeroDampingBuilder) Alp(v float64) ModifiedZeroDampingBuilder {
	B.alp = set(v)
	return B
}

func (B ModifiedZeroDampingBuilder) Bet(v float64) ModifiedZeroDampingBuilder {
	B.bet = set(v)
	return B
}

func (B ModifiedZeroDampingBuilder) Build() (ModifiedZeroDampingParam, error) {
	v, err := resolve(ModifiedZeroDamping,
		optional("s6", B.s6, defaultS6),
		required("s8", B.s8),
		optional("s9", B.s9, defaultS9),
		required("rs6", B.rs6),
		optional("rs8", B.rs8, defaultRs8),
		optional("alp", B.alp, defaultAlp),
		required("bet", B.bet))
	if err != nil {
		return ModifiedZeroDampingParam{}, err
	}
	return ModifiedZeroDampingParam{v[0], v[1], v[2], v[3], v[4], v[5], v[6]}, nil
}

func (B ModifiedZeroDampingBuilder) Init() (*Param, error) {
	p, err := B.Build()
	if err != nil {
		return nil, errDecorate(err, "Init")
	}
	return p.NewParam()
}

//ModifiedRationalDampingBuilder builds a ModifiedRationalDampingParam. S8, A1 and A2 are required.
type ModifiedRationalDampingBuilder struct {
	s6, s8, s9, a1, a2, alp *float64
}

func NewModifiedRationalDampingBuilder() ModifiedRationalDampingBuilder {
	return ModifiedRationalDampingBuilder{}
}

func (B ModifiedRationalDampingBuilder) S6(v float64) ModifiedRationalDampingBuilder {
	B.s6 = set(v)
	return B
}
func (B ModifiedRationalDampingBuilder) S8(v float64) ModifiedRationalDampingBuilder {
	B.s8 = set(v)
	return B
}
func (B ModifiedRationalDampingBuilder) S9(v float64) ModifiedRationalDampingBuilder {
	B.s9 = set(v)
	return B
}
func (B ModifiedRationalDampingBuilder) A1(v float64) ModifiedRationalDampingBuilder {
	B.a1 = set(v)
	return B
}
func (B ModifiedRationalDampingBuilder) A2(v float64) ModifiedRationalDampingBuilder {
	B.a2 = set(v)
	return B
}
func (B ModifiedRationalDampingBuilder) Alp(v float64) ModifiedRationalDampingBuilder {
	B.alp = set(v)
	return B
}

func (B ModifiedRationalDampingBuilder) Build() (ModifiedRationalDampingParam, error) {
	v, err := resolve(ModifiedRationalDamping,
		optional("s6", B.s6, defaultS6),
		required("s8", B.s8),
		optional("s9", B.s9, defaultS9),
		required("a1", B.a1),
		required("a2", B.a2),
		optional("alp", B.alp, defaultAlp))
	if err != nil {
		return ModifiedRationalDampingParam{}, err
	}
	return ModifiedRationalDampingParam{v[0], v[1], v[2], v[3], v[4], v[5]}, nil
}

func (B ModifiedRationalDampingBuilder) Init() (*Param, error) {
	p, err := B.Build()
	if err != nil {
		return nil, errDecorate(err, "Init")
	}
	return p.NewParam()
}

//OptimizedPowerDampingBuilder builds an OptimizedPowerDampingParam. S8, A1, A2 and Bet are required.
type OptimizedPowerDampingBuilder struct {
	s6, s8, s9, a1, a2, alp, bet *float64
}

func NewOptimizedPowerDampingBuilder() OptimizedPowerDampingBuilder {
	return OptimizedPowerDampingBuilder{}
}

func (B OptimizedPowerDampingBuilder) S6(v float64) OptimizedPowerDampingBuilder {
	B.s6 = set(v)
	return B
}
func (B OptimizedPowerDampingBuilder) S8(v float64) OptimizedPowerDampingBuilder {
	B.s8 = set(v)
	return B
}
func (B OptimizedPowerDampingBuilder) S9(v float64) OptimizedPowerDampingBuilder {
	B.s9 = set(v)
	return B
}
func (B OptimizedPowerDampingBuilder) A1(v float64) OptimizedPowerDampingBuilder {
	B.a1 = set(v)
	return B
}
func (B OptimizedPowerDampingBuilder) A2(v float64) OptimizedPowerDampingBuilder {
	B.a2 = set(v)
	return B
}
func (B OptimizedPowerDampingBuilder) Alp(v float64) OptimizedPowerDampingBuilder {
	B.alp = set(v)
	return B
}
func (B OptimizedPowerDampingBuilder) Bet(v float64) OptimizedPowerDampingBuilder {
	B.bet = set(v)
	return B
}

func (B OptimizedPowerDampingBuilder) Build() (OptimizedPowerDampingParam, error) {
	v, err := resolve(OptimizedPowerDamping,
		optional("s6", B.s6, defaultS6),
		required("s8", B.s8),
		optional("s9", B.s9, defaultS9),
		required("a1", B.a1),
		required("a2", B.a2),
		optional("alp", B.alp, defaultAlp),
		required("bet", B.bet))
	if err != nil {
		return OptimizedPowerDampingParam{}, err
	}
	return OptimizedPowerDampingParam{v[0], v[1], v[2], v[3], v[4], v[5], v[6]}, nil
}

func (B OptimizedPowerDampingBuilder) Init() (*Param, error) {
	p, err := B.Build()
	if err != nil {
		return nil, errDecorate(err, "Init")
	}
	return p.NewParam()
}
