// Released under an MIT license. See LICENSE.

package num

import (
	"cmp"
	"math"
	"math/big"

	"github.com/michaelmacinnis/slxi/internal/common/condition"
	"github.com/michaelmacinnis/slxi/internal/common/interface/cell"
)

// A level is a position in the promotion lattice.
type level int

const (
	fixnum level = iota
	bignum
	ratio
	float
	double
)

// The level both operands are promoted to before an operation.
//
//nolint:gochecknoglobals
var lattice = [5][5]level{
	//         fixnum  bignum  ratio   float   double
	fixnum: {bignum, bignum, ratio, float, double},
	bignum: {bignum, bignum, ratio, float, double},
	ratio:  {ratio, ratio, ratio, float, double},
	float:  {float, float, float, float, double},
	double: {double, double, double, double, double},
}

// An operator has one implementation per promoted representation.
// Integer operands are promoted to bignum even when both are fixnums;
// results are narrowed again on construction.
type operator[R any] struct {
	integer func(x, y *big.Int) R
	ratio   func(x, y *big.Rat) R
	float   func(x, y float32) R
	double  func(x, y float64) R
}

func dispatch[R any](op *operator[R], a, b cell.I) R {
	x, y := To(a), To(b)

	switch lattice[x.level()][y.level()] {
	case fixnum, bignum:
		return op.integer(toInt(x), toInt(y))
	case ratio:
		return op.ratio(toRat(x), toRat(y))
	case float:
		return op.float(toFloat(x), toFloat(y))
	case double:
		return op.double(toDouble(x), toDouble(y))
	}

	panic(condition.NewTypeConstraint(a, name))
}

//nolint:gochecknoglobals
var (
	adder = operator[cell.I]{
		integer: func(x, y *big.Int) cell.I {
			return Integer(new(big.Int).Add(x, y))
		},
		ratio: func(x, y *big.Rat) cell.I {
			return Rat(new(big.Rat).Add(x, y))
		},
		float: func(x, y float32) cell.I {
			return NewFloat(x + y)
		},
		double: func(x, y float64) cell.I {
			return NewDouble(x + y)
		},
	}

	multiplier = operator[cell.I]{
		integer: func(x, y *big.Int) cell.I {
			return Integer(new(big.Int).Mul(x, y))
		},
		ratio: func(x, y *big.Rat) cell.I {
			return Rat(new(big.Rat).Mul(x, y))
		},
		float: func(x, y float32) cell.I {
			return NewFloat(x * y)
		},
		double: func(x, y float64) cell.I {
			return NewDouble(x * y)
		},
	}

	comparer = operator[int]{
		integer: func(x, y *big.Int) int {
			return x.Cmp(y)
		},
		ratio: func(x, y *big.Rat) int {
			return x.Cmp(y)
		},
		float:  cmp.Compare[float32],
		double: cmp.Compare[float64],
	}
)

// Add returns a + b.
func Add(a, b cell.I) cell.I {
	return dispatch(&adder, a, b)
}

// Subtract returns a - b.
func Subtract(a, b cell.I) cell.I {
	return Add(a, Negate(b))
}

// Multiply returns a * b.
func Multiply(a, b cell.I) cell.I {
	return dispatch(&multiplier, a, b)
}

// Divide returns a / b. Dividing by zero panics with a's value.
func Divide(a, b cell.I) cell.I {
	To(a)

	if Zerop(b) {
		panic(condition.NewDivisionByZero(a))
	}

	return Multiply(a, Reciprocal(b))
}

// Compare returns -1, 0 or +1 as a is less than, equal to or greater than b.
// Exact values are converted to the floating type of the other operand.
func Compare(a, b cell.I) int {
	return dispatch(&comparer, a, b)
}

// NumEqual returns true if a and b have the same numeric value.
func NumEqual(a, b cell.I) bool {
	return Compare(a, b) == 0
}

// Negate returns -c.
func Negate(c cell.I) cell.I {
	switch n := To(c).(type) {
	case *Fixnum:
		if *n == math.MinInt64 {
			return Integer(new(big.Int).Neg(toInt(n)))
		}

		return Int(-int64(*n))
	case *Bignum:
		return Integer(new(big.Int).Neg(n.Int()))
	case *Float:
		return NewFloat(-float32(*n))
	case *Double:
		return NewDouble(-float64(*n))
	case *RatioFixnum, *RatioInteger:
		return Rat(new(big.Rat).Neg(toRat(n)))
	}

	panic(condition.NewTypeConstraint(c, name))
}

// Reciprocal returns 1/c. The reciprocal of zero panics.
func Reciprocal(c cell.I) cell.I {
	if Zerop(c) {
		panic(condition.NewDivisionByZero(Int(1)))
	}

	switch n := To(c).(type) {
	case *Fixnum, *Bignum:
		return Ratio(big.NewInt(1), toInt(n))
	case *Float:
		return NewFloat(1 / float32(*n))
	case *Double:
		return NewDouble(1 / float64(*n))
	case *RatioFixnum:
		return RatioInt(n.den, n.num)
	case *RatioInteger:
		return Ratio(n.den, n.num)
	}

	panic(condition.NewTypeConstraint(c, name))
}

// Abs returns the absolute value of c.
func Abs(c cell.I) cell.I {
	if Minusp(c) {
		return Negate(c)
	}

	return c
}

// Sign returns -1, 0 or +1 as c is negative, zero or positive.
func Sign(c cell.I) int {
	switch n := To(c).(type) {
	case *Fixnum:
		return cmp.Compare(int64(*n), 0)
	case *Bignum:
		return n.Int().Sign()
	case *Float:
		return cmp.Compare(float32(*n), 0)
	case *Double:
		return cmp.Compare(float64(*n), 0)
	case *RatioFixnum:
		return cmp.Compare(n.num, 0)
	case *RatioInteger:
		return n.num.Sign()
	}

	panic(condition.NewTypeConstraint(c, name))
}

// Minusp returns true if c is negative.
func Minusp(c cell.I) bool {
	return Sign(c) < 0
}

// Plusp returns true if c is positive.
func Plusp(c cell.I) bool {
	return Sign(c) > 0
}

// Zerop returns true if c is zero. Ratios are never zero.
func Zerop(c cell.I) bool {
	switch n := To(c).(type) {
	case *Float:
		return *n == 0
	case *Double:
		return *n == 0
	case *Fixnum:
		return *n == 0
	}

	return false
}

func toInt(n I) *big.Int {
	switch n := n.(type) {
	case *Fixnum:
		return big.NewInt(int64(*n))
	case *Bignum:
		return n.Int()
	}

	panic(condition.NewTypeConstraint(n, "integer"))
}

func toRat(n I) *big.Rat {
	switch n := n.(type) {
	case *Fixnum:
		return new(big.Rat).SetInt64(int64(*n))
	case *Bignum:
		return new(big.Rat).SetInt(n.Int())
	case *RatioFixnum:
		return big.NewRat(n.num, n.den)
	case *RatioInteger:
		return new(big.Rat).SetFrac(n.num, n.den)
	}

	panic(condition.NewTypeConstraint(n, "rational"))
}

func toFloat(n I) float32 {
	switch n := n.(type) {
	case *Float:
		return float32(*n)
	case *Double:
		return float32(*n)
	case *Fixnum:
		return float32(*n)
	}

	f, _ := toRat(n).Float32()

	return f
}

func toDouble(n I) float64 {
	switch n := n.(type) {
	case *Float:
		return float64(*n)
	case *Double:
		return float64(*n)
	case *Fixnum:
		return float64(*n)
	}

	f, _ := toRat(n).Float64()

	return f
}

// Signum returns -1, 0 or 1 in the representation of c.
func Signum(c cell.I) cell.I {
	s := Sign(c)

	switch c.(type) {
	case *Float:
		return NewFloat(float32(s))
	case *Double:
		return NewDouble(float64(s))
	}

	return Int(int64(s))
}
