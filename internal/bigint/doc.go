// Package bigint implements signed arbitrary-precision integers on top of
// plain decimal digits.
//
// # Representation
//
// An Int is an immutable value: a sign flag and a slice of base-10 digits
// stored least significant first, with no high zero digits. The zero value is
// the number 0. Every operation allocates its result and leaves its operands
// untouched, so values can be shared freely between goroutines.
//
// The canonical text form is an optional '-' followed by decimal digits with
// no leading zeros; zero is always "0". Parse accepts non-canonical input
// (leading zeros, "-0") and normalizes it, String always emits canonical text.
// Two Ints are equal iff their canonical strings are equal.
//
// # Operations
//
//   - Add, Sub: signed addition and subtraction with carry/borrow propagation
//   - CmpAbs, Cmp: magnitude and signed comparison
//   - Mul: Karatsuba multiplication; the recombination step uses Add, Sub
//     and Shift only, never machine integers
//   - QuoRem, Quo, Rem: truncated long division (Go's / and % semantics)
//   - Div, Mod: Euclidean division, 0 <= Mod(a, b) < |b|
//   - Half, IsOdd: helpers for square-and-multiply loops
//
// # Errors
//
// ErrSyntax is returned by Parse for malformed text. ErrDivisionByZero is
// returned by every division entry point when the divisor is zero.
package bigint
