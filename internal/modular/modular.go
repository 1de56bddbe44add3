package modular

import (
	"errors"
	"fmt"

	"github.com/kingaa1/Cryptography-algorithms/internal/bigint"
)

var (
	ErrInvalidModulus   = errors.New("modular: modulus must be greater than 1")
	ErrNegativeExponent = errors.New("modular: negative exponent")
	ErrNotInvertible    = errors.New("modular: element is not invertible")
	ErrNegativeOperand  = errors.New("modular: negative operand")
)

func checkModulus(m bigint.Int) error {
	if bigint.Cmp(m, bigint.One()) <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidModulus, m)
	}
	return nil
}

// Reduce returns x mod m in [0, m).
func Reduce(x, m bigint.Int) (bigint.Int, error) {
	if err := checkModulus(m); err != nil {
		return bigint.Int{}, err
	}
	return bigint.Mod(x, m)
}

// MulMod returns x·y mod m.
func MulMod(x, y, m bigint.Int) (bigint.Int, error) {
	return Reduce(bigint.Mul(x, y), m)
}

// Exp returns base^exp mod m.
func Exp(base, exp, m bigint.Int) (bigint.Int, error) {
	if err := checkModulus(m); err != nil {
		return bigint.Int{}, err
	}
	if exp.Sign() < 0 {
		return bigint.Int{}, fmt.Errorf("%w: %s", ErrNegativeExponent, exp)
	}

	b, err := bigint.Mod(base, m)
	if err != nil {
		return bigint.Int{}, err
	}
	result := bigint.One()
	for !exp.IsZero() {
		if exp.IsOdd() {
			if result, err = bigint.Mod(bigint.Mul(result, b), m); err != nil {
				return bigint.Int{}, err
			}
		}
		if b, err = bigint.Mod(bigint.Mul(b, b), m); err != nil {
			return bigint.Int{}, err
		}
		exp = bigint.Half(exp)
	}
	return result, nil
}
