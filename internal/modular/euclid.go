package modular

import (
	"fmt"

	"github.com/kingaa1/Cryptography-algorithms/internal/bigint"
)

// Bezout holds gcd(a, b) and coefficients with a·X + b·Y = GCD.
type Bezout struct {
	GCD bigint.Int
	X   bigint.Int
	Y   bigint.Int
}

// ExtendedGCD runs the extended Euclidean algorithm on non-negative a and b,
// tracking both Bézout coefficients through the (r, newR), (s, newS) and
// (t, newT) recurrences.
func ExtendedGCD(a, b bigint.Int) (Bezout, error) {
	if a.Sign() < 0 || b.Sign() < 0 {
		return Bezout{}, fmt.Errorf("%w: gcd(%s, %s)", ErrNegativeOperand, a, b)
	}
	r, newR := a, b
	s, newS := bigint.One(), bigint.Zero()
	t, newT := bigint.Zero(), bigint.One()

	for !newR.IsZero() {
		q, rem, err := bigint.QuoRem(r, newR)
		if err != nil {
			return Bezout{}, err
		}
		r, newR = newR, rem
		s, newS = newS, bigint.Sub(s, bigint.Mul(q, newS))
		t, newT = newT, bigint.Sub(t, bigint.Mul(q, newT))
	}
	return Bezout{GCD: r, X: s, Y: t}, nil
}

// GCD returns the greatest common divisor of non-negative a and b.
func GCD(a, b bigint.Int) (bigint.Int, error) {
	if a.Sign() < 0 || b.Sign() < 0 {
		return bigint.Int{}, fmt.Errorf("%w: gcd(%s, %s)", ErrNegativeOperand, a, b)
	}
	for !b.IsZero() {
		r, err := bigint.Mod(a, b)
		if err != nil {
			return bigint.Int{}, err
		}
		a, b = b, r
	}
	return a, nil
}

// Inverse returns a⁻¹ mod m in [0, m), using the coefficient of a.
func Inverse(a, m bigint.Int) (bigint.Int, error) {
	if err := checkModulus(m); err != nil {
		return bigint.Int{}, err
	}
	ar, err := bigint.Mod(a, m)
	if err != nil {
		return bigint.Int{}, err
	}
	bz, err := ExtendedGCD(ar, m)
	if err != nil {
		return bigint.Int{}, err
	}
	return normalize(bz, bz.X, a, m)
}

// InverseOf is Inverse with the operands in (modulus, element) order: it
// runs ExtendedGCD(m, a) and picks the coefficient of the second argument.
// Both orders agree; call sites that already hold the pair this way avoid a
// swap.
func InverseOf(m, a bigint.Int) (bigint.Int, error) {
	if err := checkModulus(m); err != nil {
		return bigint.Int{}, err
	}
	ar, err := bigint.Mod(a, m)
	if err != nil {
		return bigint.Int{}, err
	}
	bz, err := ExtendedGCD(m, ar)
	if err != nil {
		return bigint.Int{}, err
	}
	return normalize(bz, bz.Y, a, m)
}

func normalize(bz Bezout, coef, a, m bigint.Int) (bigint.Int, error) {
	if !bz.GCD.Equal(bigint.One()) {
		return bigint.Int{}, fmt.Errorf("%w: gcd(%s, %s) = %s", ErrNotInvertible, a, m, bz.GCD)
	}
	if coef.Sign() < 0 {
		coef = bigint.Add(coef, m)
	}
	return bigint.Mod(coef, m)
}
