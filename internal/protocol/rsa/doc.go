// Package rsa implements RSA over decimal big integers, with the plaintext
// additionally masked by a Diffie-Hellman shared secret.
//
// # Keys
//
// GenerateKey takes caller-supplied primes p, q and public exponent e. It
// computes n = p·q and φ(n) = (p-1)(q-1), rejects e unless gcd(e, φ(n)) = 1,
// and sets d = e⁻¹ mod φ(n). Primality of p and q is not checked.
//
// # Encryption
//
//	c = (m · s mod n)^e mod n
//	m = (c^d mod n) · s⁻¹ mod n
//
// where m is the codec encoding of the plaintext and s is the shared secret
// both parties derived beforehand. This is not textbook RSA; the mask is part
// of the protocol and both sides must apply it.
//
// # Errors
//
//   - ErrInvalidPrime: p or q is not greater than 1
//   - ErrInvalidExponent: e is not positive or not coprime with φ(n)
//   - ErrMessageTooLarge: the encoded plaintext is not below n
//   - modular.ErrNotInvertible: the shared secret has a factor in common with n
package rsa
