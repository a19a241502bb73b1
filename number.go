package stepcalc

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// Number is an integer or a real number. The distinction is kept through
// evaluation: adding two integers gives an integer, while dividing them always
// gives a real. The zero value is the integer 0.
type Number struct {
	i    int64
	f    float64
	real bool
}

// Int creates an integer Number.
func Int(v int64) Number {
	return Number{i: v}
}

// Float creates a real Number.
func Float(v float64) Number {
	return Number{f: v, real: true}
}

// IsFloat returns whether x is a real rather than an integer.
func (x Number) IsFloat() bool {
	return x.real
}

// Int64 returns the value of an integer. The second result is false if x is a
// real, in which case the first is x truncated.
func (x Number) Int64() (int64, bool) {
	if x.real {
		return int64(x.f), false
	}
	return x.i, true
}

// Float64 returns the value of x as a float64.
func (x Number) Float64() float64 {
	if x.real {
		return x.f
	}
	return float64(x.i)
}

// String formats x the way it appears in traces. Integers are plain decimal.
// Reals always have a fractional part or an exponent, so that 2.0 is distinct
// from 2.
func (x Number) String() string {
	if !x.real {
		return strconv.FormatInt(x.i, 10)
	}
	f := x.f
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	if a := math.Abs(f); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func (x Number) isZero() bool {
	if x.real {
		return x.f == 0
	}
	return x.i == 0
}

func pos(x Number) (Number, error) {
	return x, nil
}

func neg(x Number) (Number, error) {
	if x.real {
		return Float(-x.f), nil
	}
	if x.i == math.MinInt64 {
		return Number{}, ErrOverflow
	}
	return Int(-x.i), nil
}

func add(x, y Number) (Number, error) {
	if x.real || y.real {
		return Float(x.Float64() + y.Float64()), nil
	}
	a, b := x.i, y.i
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return Number{}, ErrOverflow
	}
	return Int(s), nil
}

func sub(x, y Number) (Number, error) {
	if x.real || y.real {
		return Float(x.Float64() - y.Float64()), nil
	}
	a, b := x.i, y.i
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return Number{}, ErrOverflow
	}
	return Int(d), nil
}

func mul(x, y Number) (Number, error) {
	if x.real || y.real {
		return Float(x.Float64() * y.Float64()), nil
	}
	p, ok := mulInt(x.i, y.i)
	if !ok {
		return Number{}, ErrOverflow
	}
	return Int(p), nil
}

// mulInt multiplies two integers, reporting whether the product fits.
func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	return p, p/b == a
}

// div is true division. The quotient is real even for integer operands.
func div(x, y Number) (Number, error) {
	if y.isZero() {
		return Number{}, ErrDivisionByZero
	}
	return Float(x.Float64() / y.Float64()), nil
}

// mod is floored modulo: a nonzero result has the sign of the divisor.
func mod(x, y Number) (Number, error) {
	if y.isZero() {
		return Number{}, ErrDivisionByZero
	}
	if x.real || y.real {
		a, b := x.Float64(), y.Float64()
		m := math.Mod(a, b)
		switch {
		case m == 0:
			m = math.Copysign(0, b)
		case (m < 0) != (b < 0):
			m += b
		}
		return Float(m), nil
	}
	m := x.i % y.i
	if m != 0 && (m < 0) != (y.i < 0) {
		m += y.i
	}
	return Int(m), nil
}

func pow(x, y Number) (Number, error) {
	if !x.real && !y.real && y.i >= 0 {
		r, ok := powInt(x.i, y.i)
		if !ok {
			return Number{}, ErrOverflow
		}
		return Int(r), nil
	}
	r, err := powFloat(x.Float64(), y.Float64())
	if err != nil {
		return Number{}, err
	}
	return Float(r), nil
}

// powInt raises a to the non-negative power b by squaring, reporting whether
// the result fits.
func powInt(a, b int64) (int64, bool) {
	r := int64(1)
	ok := true
	for b > 0 {
		if b&1 != 0 {
			if r, ok = mulInt(r, a); !ok {
				return 0, false
			}
		}
		b >>= 1
		if b > 0 {
			if a, ok = mulInt(a, a); !ok {
				return 0, false
			}
		}
	}
	return r, true
}

// powPrec is the precision in bits of intermediate results for real powers.
const powPrec = 128

func powFloat(x, y float64) (float64, error) {
	switch {
	case y == 0:
		return 1, nil
	case x == 0:
		if y < 0 {
			return 0, ErrDivisionByZero
		}
		return 0, nil
	case x < 0 && y != math.Trunc(y) && !math.IsInf(y, 0):
		return 0, &DomainError{X: Float(x), Func: "^"}
	}
	r := math.Pow(x, y)
	if math.IsInf(r, 0) && !math.IsInf(x, 0) && !math.IsInf(y, 0) {
		return 0, ErrOverflow
	}
	if x < 0 || y == math.Trunc(y) || r == 0 || math.IsInf(r, 0) || math.IsNaN(r) {
		return r, nil
	}
	// Fractional power of a positive base. Compute with extra precision so
	// that the float64 result is correctly rounded.
	var z, bx, by big.Float
	bx.SetPrec(powPrec).SetFloat64(x)
	by.SetPrec(powPrec).SetFloat64(y)
	z.SetPrec(powPrec)
	bigfloat.Pow(&z, &bx, &by)
	r, _ = z.Float64()
	return r, nil
}
