package rsa

import (
	"errors"
	"fmt"

	"github.com/kingaa1/Cryptography-algorithms/internal/bigint"
	"github.com/kingaa1/Cryptography-algorithms/internal/codec"
	"github.com/kingaa1/Cryptography-algorithms/internal/domain"
	"github.com/kingaa1/Cryptography-algorithms/internal/modular"
)

var (
	ErrInvalidPrime    = errors.New("rsa: prime must be greater than 1")
	ErrInvalidExponent = errors.New("rsa: public exponent is not coprime with phi(n)")
	ErrMessageTooLarge = errors.New("rsa: message does not fit below the modulus")
)

// Phi returns (p-1)(q-1).
func Phi(p, q bigint.Int) bigint.Int {
	return bigint.Mul(bigint.Sub(p, bigint.One()), bigint.Sub(q, bigint.One()))
}

// GenerateKey derives the key pair for primes p, q and public exponent e.
func GenerateKey(p, q, e bigint.Int) (domain.RSAPublicKey, domain.RSAPrivateKey, error) {
	for _, f := range []bigint.Int{p, q} {
		if bigint.Cmp(f, bigint.One()) <= 0 {
			return domain.RSAPublicKey{}, domain.RSAPrivateKey{}, fmt.Errorf("%w: %s", ErrInvalidPrime, f)
		}
	}
	if e.Sign() <= 0 {
		return domain.RSAPublicKey{}, domain.RSAPrivateKey{}, fmt.Errorf("%w: %s", ErrInvalidExponent, e)
	}

	n := bigint.Mul(p, q)
	phi := Phi(p, q)

	g, err := modular.GCD(e, phi)
	if err != nil {
		return domain.RSAPublicKey{}, domain.RSAPrivateKey{}, err
	}
	if !g.Equal(bigint.One()) {
		return domain.RSAPublicKey{}, domain.RSAPrivateKey{}, fmt.Errorf("%w: gcd(%s, %s) = %s", ErrInvalidExponent, e, phi, g)
	}
	d, err := modular.Inverse(e, phi)
	if err != nil {
		return domain.RSAPublicKey{}, domain.RSAPrivateKey{}, fmt.Errorf("rsa: private exponent: %w", err)
	}
	return domain.RSAPublicKey{N: n, E: e}, domain.RSAPrivateKey{N: n, D: d}, nil
}

// Encrypt masks the encoded plaintext with shared and raises it to e mod n.
func Encrypt(pub domain.RSAPublicKey, plaintext string, shared bigint.Int) (bigint.Int, error) {
	m := codec.Encode(plaintext)
	if bigint.Cmp(m, pub.N) >= 0 {
		return bigint.Int{}, fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, len(plaintext))
	}
	g, err := modular.GCD(shared.Abs(), pub.N)
	if err != nil {
		return bigint.Int{}, err
	}
	if !g.Equal(bigint.One()) {
		return bigint.Int{}, fmt.Errorf("%w: shared secret shares factor %s with n", modular.ErrNotInvertible, g)
	}

	masked, err := modular.MulMod(m, shared, pub.N)
	if err != nil {
		return bigint.Int{}, err
	}
	return modular.Exp(masked, pub.E, pub.N)
}

// Decrypt raises c to d mod n and removes the shared-secret mask.
func Decrypt(priv domain.RSAPrivateKey, c, shared bigint.Int) (string, error) {
	x, err := modular.Exp(c, priv.D, priv.N)
	if err != nil {
		return "", err
	}
	inv, err := modular.InverseOf(priv.N, shared)
	if err != nil {
		return "", err
	}
	m, err := modular.MulMod(x, inv, priv.N)
	if err != nil {
		return "", err
	}
	return codec.Decode(m)
}
