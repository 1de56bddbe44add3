// Package dh implements finite-field Diffie-Hellman key agreement over
// decimal big integers.
//
// # Overview
//
// Two parties agree on a group (generator G, modulus P), each picks a private
// exponent in [1, P-1] and publishes G^x mod P. Each side raises the peer's
// public value to its own exponent and both arrive at G^(ab) mod P.
//
// # Flows
//
// Exchange runs both sides from known exponents and returns the transcript.
// Run draws the two exponents from a RandomSource first. The equality
// B^a = A^b is a property of modular.Exp and is covered by tests; it is not
// re-checked at runtime.
//
// DeriveKey stretches the shared secret into symmetric key material with
// HKDF-SHA256 over its decimal text.
//
// # Errors
//
// ErrInvalidParams is returned for a modulus <= 1 or a generator outside
// (0, P). ErrInvalidPrivate is returned for exponents outside [1, P-1].
package dh
