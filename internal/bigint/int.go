package bigint

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax reports text that is not an optionally signed decimal integer.
	ErrSyntax = errors.New("bigint: invalid decimal integer")
	// ErrDivisionByZero reports a zero divisor.
	ErrDivisionByZero = errors.New("bigint: division by zero")
)

// Int is a signed arbitrary-precision integer. The zero value is 0.
type Int struct {
	neg bool
	abs nat
}

func mk(neg bool, abs nat) Int {
	abs = abs.norm()
	return Int{neg: neg && len(abs) > 0, abs: abs}
}

// Zero returns 0.
func Zero() Int { return Int{} }

// One returns 1.
func One() Int { return Int{abs: nat{1}} }

// Parse reads an optionally '-' prefixed string of decimal digits.
func Parse(s string) (Int, error) {
	digits := s
	neg := false
	if len(digits) > 0 && digits[0] == '-' {
		neg = true
		digits = digits[1:]
	}
	if digits == "" {
		return Int{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	abs := make(nat, len(digits))
	for i := 0; i < len(digits); i++ {
		c := digits[len(digits)-1-i]
		if c < '0' || c > '9' {
			return Int{}, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		abs[i] = c - '0'
	}
	return mk(neg, abs), nil
}

// MustParse is like Parse but panics on malformed input. Intended for
// constants and tests.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// FromInt64 converts a machine integer.
func FromInt64(v int64) Int {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u
	}
	x := FromUint64(u)
	x.neg = neg && len(x.abs) > 0
	return x
}

// FromUint64 converts a machine integer.
func FromUint64(v uint64) Int {
	var abs nat
	for v > 0 {
		abs = append(abs, byte(v%10))
		v /= 10
	}
	return Int{abs: abs}
}

// Uint64 returns x as a uint64 and whether it fit.
func (x Int) Uint64() (uint64, bool) {
	if x.neg || len(x.abs) > 20 {
		return 0, false
	}
	var v uint64
	for i := len(x.abs) - 1; i >= 0; i-- {
		d := uint64(x.abs[i])
		if v > (^uint64(0)-d)/10 {
			return 0, false
		}
		v = v*10 + d
	}
	return v, true
}

// String returns the canonical decimal form.
func (x Int) String() string {
	if x.neg {
		return "-" + x.abs.String()
	}
	return x.abs.String()
}

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	switch {
	case len(x.abs) == 0:
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool { return len(x.abs) == 0 }

// IsOdd reports whether the last digit of x is odd.
func (x Int) IsOdd() bool { return len(x.abs) > 0 && x.abs[0]%2 == 1 }

// Len returns the number of decimal digits in |x|. Zero has one digit.
func (x Int) Len() int { return max(len(x.abs), 1) }

// Neg returns -x.
func (x Int) Neg() Int { return mk(!x.neg, x.abs) }

// Abs returns |x|.
func (x Int) Abs() Int { return Int{abs: x.abs} }

// Equal reports whether x and y have the same canonical form.
func (x Int) Equal(y Int) bool { return x.neg == y.neg && cmpNat(x.abs, y.abs) == 0 }

// CmpAbs compares |x| and |y|, returning -1, 0 or +1.
func CmpAbs(x, y Int) int { return cmpNat(x.abs, y.abs) }

// Cmp compares x and y, returning -1, 0 or +1.
func Cmp(x, y Int) int {
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	case x.neg:
		return -cmpNat(x.abs, y.abs)
	}
	return cmpNat(x.abs, y.abs)
}

// Add returns x + y. Operands with different signs are handed to magnitude
// subtraction.
func Add(x, y Int) Int {
	if x.neg == y.neg {
		return mk(x.neg, addNat(x.abs, y.abs))
	}
	switch cmpNat(x.abs, y.abs) {
	case 0:
		return Int{}
	case 1:
		return mk(x.neg, subNat(x.abs, y.abs))
	}
	return mk(y.neg, subNat(y.abs, x.abs))
}

// Sub returns x - y.
func Sub(x, y Int) Int {
	switch {
	case x.neg && y.neg:
		// -a - (-b) = b - a
		return subAbs(y.abs, x.abs)
	case x.neg:
		// -a - b = -(a + b)
		return mk(true, addNat(x.abs, y.abs))
	case y.neg:
		return mk(false, addNat(x.abs, y.abs))
	}
	return subAbs(x.abs, y.abs)
}

// subAbs returns a - b for magnitudes, negative iff a < b.
func subAbs(a, b nat) Int {
	if cmpNat(a, b) < 0 {
		return mk(true, subNat(b, a))
	}
	return mk(false, subNat(a, b))
}

// Mul returns x · y.
func Mul(x, y Int) Int {
	return mk(x.neg != y.neg, mulNat(x.abs, y.abs))
}

// Shift returns x · 10^k. k must not be negative.
func Shift(x Int, k int) Int {
	if k < 0 {
		panic("bigint: negative shift")
	}
	return Int{neg: x.neg, abs: shiftNat(x.abs, k)}
}

// Half returns x / 2 truncated toward zero.
func Half(x Int) Int { return mk(x.neg, halfNat(x.abs)) }

// QuoRem returns the quotient truncated toward zero and the remainder with
// the sign of x, like Go's / and % operators.
func QuoRem(x, y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, ErrDivisionByZero
	}
	qa, ra := quoRemNat(x.abs, y.abs)
	return mk(x.neg != y.neg, qa), mk(x.neg, ra), nil
}

// Quo returns x / y truncated toward zero.
func Quo(x, y Int) (Int, error) {
	q, _, err := QuoRem(x, y)
	return q, err
}

// Rem returns x % y with the sign of x.
func Rem(x, y Int) (Int, error) {
	_, r, err := QuoRem(x, y)
	return r, err
}

// DivMod returns the Euclidean quotient and modulus: x = q·y + m with
// 0 <= m < |y|.
func DivMod(x, y Int) (q, m Int, err error) {
	q, m, err = QuoRem(x, y)
	if err != nil {
		return Int{}, Int{}, err
	}
	if m.neg {
		m = Add(m, y.Abs())
		if y.neg {
			q = Add(q, One())
		} else {
			q = Sub(q, One())
		}
	}
	return q, m, nil
}

// Div returns the Euclidean quotient of x and y.
func Div(x, y Int) (Int, error) {
	q, _, err := DivMod(x, y)
	return q, err
}

// Mod returns the Euclidean modulus of x and y, in [0, |y|).
func Mod(x, y Int) (Int, error) {
	_, m, err := DivMod(x, y)
	return m, err
}
