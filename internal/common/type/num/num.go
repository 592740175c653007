// Released under an MIT license. See LICENSE.

// Package num provides slxi's numeric tower: fixnums, bignums, ratios,
// single floats and double floats. Exact results are always stored in the
// narrowest representation that can hold them.
package num

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/slxi/internal/common/condition"
	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
	"github.com/michaelmacinnis/slxi/internal/common/interface/eql"
	"github.com/michaelmacinnis/slxi/internal/common/interface/literal"
)

const name = "number"

// I (num) is implemented by every numeric representation.
type I interface {
	cell.I
	eql.I
	literal.I

	level() level
}

// Fixnum is an integer in the int64 range.
type Fixnum int64

// Bignum is an integer outside the int64 range.
type Bignum big.Int

// Float is a single float.
type Float float32

// Double is a double float.
type Double float64

// RatioFixnum is a reduced ratio with numerator and denominator in the int64 range.
type RatioFixnum struct {
	num int64
	den int64
}

// RatioInteger is a reduced ratio with a numerator or denominator outside the int64 range.
type RatioInteger struct {
	num *big.Int
	den *big.Int
}

// Int creates a fixnum.
func Int(i int64) cell.I {
	v := Fixnum(i)

	return &v
}

// Integer creates a fixnum if b is in the int64 range or a bignum otherwise.
func Integer(b *big.Int) cell.I {
	if b.IsInt64() {
		return Int(b.Int64())
	}

	return (*Bignum)(new(big.Int).Set(b))
}

// NewFloat creates a single float.
func NewFloat(f float32) cell.I {
	v := Float(f)

	return &v
}

// NewDouble creates a double float.
func NewDouble(f float64) cell.I {
	v := Double(f)

	return &v
}

// Ratio creates the exact quotient of n and d. The result is reduced with
// the sign in the numerator, and it is an integer if d divides n.
func Ratio(n, d *big.Int) cell.I {
	if d.Sign() == 0 {
		panic(condition.NewDivisionByZero(Integer(n)))
	}

	n = new(big.Int).Set(n)
	d = new(big.Int).Set(d)

	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}

	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	if gcd.Sign() != 0 && !isOne(gcd) {
		n.Quo(n, gcd)
		d.Quo(d, gcd)
	}

	if isOne(d) {
		return Integer(n)
	}

	if n.IsInt64() && d.IsInt64() {
		return &RatioFixnum{num: n.Int64(), den: d.Int64()}
	}

	return &RatioInteger{num: n, den: d}
}

// RatioInt creates the exact quotient of n and d.
func RatioInt(n, d int64) cell.I {
	return Ratio(big.NewInt(n), big.NewInt(d))
}

// Rat creates the exact number with the value of r.
func Rat(r *big.Rat) cell.I {
	return Ratio(r.Num(), r.Denom())
}

// Is returns true if c is a number.
func Is(c cell.I) bool {
	_, ok := c.(I)

	return ok
}

// IsInteger returns true if c is a fixnum or a bignum.
func IsInteger(c cell.I) bool {
	switch c.(type) {
	case *Fixnum, *Bignum:
		return true
	}

	return false
}

// IsRational returns true if c is an integer or a ratio.
func IsRational(c cell.I) bool {
	n, ok := c.(I)

	return ok && n.level() <= ratio
}

// IsFloating returns true if c is a single or double float.
func IsFloating(c cell.I) bool {
	n, ok := c.(I)

	return ok && n.level() >= float
}

// To returns a number if c is a number; Otherwise it panics.
func To(c cell.I) I {
	if n, ok := c.(I); ok {
		return n
	}

	panic(condition.NewTypeConstraint(c, name))
}

// Int64 returns the value of c if it is a fixnum.
func Int64(c cell.I) (int64, bool) {
	f, ok := c.(*Fixnum)
	if !ok {
		return 0, false
	}

	return int64(*f), true
}

// Numerator returns the numerator of the rational c.
func Numerator(c cell.I) cell.I {
	switch n := c.(type) {
	case *Fixnum, *Bignum:
		return n
	case *RatioFixnum:
		return Int(n.num)
	case *RatioInteger:
		return Integer(n.num)
	}

	panic(condition.NewTypeConstraint(c, "rational"))
}

// Denominator returns the denominator of the rational c.
func Denominator(c cell.I) cell.I {
	switch n := c.(type) {
	case *Fixnum, *Bignum:
		return Int(1)
	case *RatioFixnum:
		return Int(n.den)
	case *RatioInteger:
		return Integer(n.den)
	}

	panic(condition.NewTypeConstraint(c, "rational"))
}

// Fixnum methods.

func (f *Fixnum) Eql(c cell.I) bool {
	o, ok := c.(*Fixnum)

	return ok && *f == *o
}

func (f *Fixnum) Equal(c cell.I) bool {
	return f.Eql(c)
}

func (f *Fixnum) Literal() string {
	return strconv.FormatInt(int64(*f), 10)
}

func (f *Fixnum) Name() string {
	return "fixnum"
}

func (f *Fixnum) String() string {
	return f.Literal()
}

func (f *Fixnum) level() level {
	return fixnum
}

// Bignum methods.

// Int returns the value of the bignum b. It must not be modified.
func (b *Bignum) Int() *big.Int {
	return (*big.Int)(b)
}

func (b *Bignum) Eql(c cell.I) bool {
	o, ok := c.(*Bignum)

	return ok && b.Int().Cmp(o.Int()) == 0
}

func (b *Bignum) Equal(c cell.I) bool {
	return b.Eql(c)
}

func (b *Bignum) Literal() string {
	return b.Int().String()
}

func (b *Bignum) Name() string {
	return "bignum"
}

func (b *Bignum) String() string {
	return b.Literal()
}

func (b *Bignum) level() level {
	return bignum
}

// Float methods.

func (f *Float) Eql(c cell.I) bool {
	o, ok := c.(*Float)

	return ok && math.Float32bits(float32(*f)) == math.Float32bits(float32(*o))
}

func (f *Float) Equal(c cell.I) bool {
	return f.Eql(c)
}

func (f *Float) Literal() string {
	return floating(float64(*f), 32, "f")
}

func (f *Float) Name() string {
	return "single-float"
}

func (f *Float) String() string {
	return f.Literal()
}

func (f *Float) level() level {
	return float
}

// Double methods.

func (d *Double) Eql(c cell.I) bool {
	o, ok := c.(*Double)

	return ok && math.Float64bits(float64(*d)) == math.Float64bits(float64(*o))
}

func (d *Double) Equal(c cell.I) bool {
	return d.Eql(c)
}

func (d *Double) Literal() string {
	return floating(float64(*d), 64, "d")
}

func (d *Double) Name() string {
	return "double-float"
}

func (d *Double) String() string {
	return d.Literal()
}

func (d *Double) level() level {
	return double
}

// RatioFixnum methods.

func (r *RatioFixnum) Eql(c cell.I) bool {
	o, ok := c.(*RatioFixnum)

	return ok && r.num == o.num && r.den == o.den
}

func (r *RatioFixnum) Equal(c cell.I) bool {
	return r.Eql(c)
}

func (r *RatioFixnum) Literal() string {
	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.den, 10)
}

func (r *RatioFixnum) Name() string {
	return "ratio"
}

func (r *RatioFixnum) String() string {
	return r.Literal()
}

func (r *RatioFixnum) level() level {
	return ratio
}

// RatioInteger methods.

func (r *RatioInteger) Eql(c cell.I) bool {
	o, ok := c.(*RatioInteger)

	return ok && r.num.Cmp(o.num) == 0 && r.den.Cmp(o.den) == 0
}

func (r *RatioInteger) Equal(c cell.I) bool {
	return r.Eql(c)
}

func (r *RatioInteger) Literal() string {
	return r.num.String() + "/" + r.den.String()
}

func (r *RatioInteger) Name() string {
	return "ratio"
}

func (r *RatioInteger) String() string {
	return r.Literal()
}

func (r *RatioInteger) level() level {
	return ratio
}

func floating(f float64, bits int, marker string) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, bits)
	}

	s := strconv.FormatFloat(f, 'g', -1, bits)

	mantissa, exponent, found := strings.Cut(s, "e")
	if !found {
		exponent = "0"
	}

	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}

	return mantissa + marker + strings.TrimPrefix(exponent, "+")
}

func isOne(b *big.Int) bool {
	return b.IsInt64() && b.Int64() == 1
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	var (
		f  Fixnum
		b  Bignum
		s  Float
		d  Double
		rf RatioFixnum
		ri RatioInteger
	)

	// Every representation is a number.
	_ = I(&f)
	_ = I(&b)
	_ = I(&s)
	_ = I(&d)
	_ = I(&rf)
	_ = I(&ri)
}
