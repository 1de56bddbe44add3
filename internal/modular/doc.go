// Package modular provides modular exponentiation and inversion on
// bigint.Int values.
//
// Exp is right-to-left square-and-multiply driven by bigint.Half and
// bigint.IsOdd, so it needs O(log e) multiplications. Inverse is a thin
// accessor over ExtendedGCD, the single extended Euclidean routine of the
// package.
//
// # Errors
//
//   - ErrInvalidModulus: the modulus is not greater than one
//   - ErrNegativeExponent: Exp was asked for a negative power
//   - ErrNotInvertible: gcd(a, m) != 1
//   - ErrNegativeOperand: ExtendedGCD or GCD got a negative input
package modular
