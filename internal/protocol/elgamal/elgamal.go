// Package elgamal implements ElGamal encryption over a Diffie-Hellman group,
// with an additional multiplicative mask taken from a previously agreed
// Diffie-Hellman shared secret.
//
// With receiver key pair (a, g^a), sender ephemeral b and shared secret s:
//
//	y1 = g^b mod p
//	y2 = m · (g^a)^b · s mod p
//
// Decryption recomputes g^(ab) = y1^a, multiplies in s and divides it out of
// y2. The message m is the codec encoding of the plaintext and must be
// smaller than p.
package elgamal

import (
	"errors"
	"fmt"

	"github.com/kingaa1/Cryptography-algorithms/internal/bigint"
	"github.com/kingaa1/Cryptography-algorithms/internal/codec"
	"github.com/kingaa1/Cryptography-algorithms/internal/domain"
	"github.com/kingaa1/Cryptography-algorithms/internal/modular"
	"github.com/kingaa1/Cryptography-algorithms/internal/protocol/dh"
)

// ErrMessageTooLarge reports a plaintext whose encoding does not fit below p.
var ErrMessageTooLarge = errors.New("elgamal: message does not fit in the group")

// mask returns (g^(ab) · shared) mod p and checks that it can be inverted.
func mask(params domain.DHParams, gab, shared bigint.Int) (bigint.Int, error) {
	k, err := modular.MulMod(gab, shared, params.P)
	if err != nil {
		return bigint.Int{}, err
	}
	g, err := modular.GCD(k, params.P)
	if err != nil {
		return bigint.Int{}, err
	}
	if !g.Equal(bigint.One()) {
		return bigint.Int{}, fmt.Errorf("%w: mask shares factor %s with p", modular.ErrNotInvertible, g)
	}
	return k, nil
}

// Encrypt encrypts plaintext to the holder of peerPublic = g^a using the
// sender's ephemeral exponent b and the agreed shared secret.
func Encrypt(params domain.DHParams, plaintext string, peerPublic, ephemeral, shared bigint.Int) (domain.Ciphertext, error) {
	if err := dh.CheckParams(params); err != nil {
		return domain.Ciphertext{}, err
	}
	m := codec.Encode(plaintext)
	if bigint.Cmp(m, params.P) >= 0 {
		return domain.Ciphertext{}, fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, len(plaintext))
	}

	y1, err := dh.PublicValue(params, ephemeral)
	if err != nil {
		return domain.Ciphertext{}, err
	}
	gab, err := dh.SharedSecret(params, peerPublic, ephemeral)
	if err != nil {
		return domain.Ciphertext{}, err
	}
	k, err := mask(params, gab, shared)
	if err != nil {
		return domain.Ciphertext{}, err
	}
	y2, err := modular.MulMod(m, k, params.P)
	if err != nil {
		return domain.Ciphertext{}, err
	}
	return domain.Ciphertext{Y1: y1, Y2: y2}, nil
}

// EncryptRandom is Encrypt with a fresh ephemeral exponent drawn from src.
func EncryptRandom(src domain.RandomSource, params domain.DHParams, plaintext string, peerPublic, shared bigint.Int) (domain.Ciphertext, error) {
	if err := dh.CheckParams(params); err != nil {
		return domain.Ciphertext{}, err
	}
	b, err := src.RandomBelow(params.P)
	if err != nil {
		return domain.Ciphertext{}, err
	}
	return Encrypt(params, plaintext, peerPublic, b, shared)
}

// Decrypt recovers the plaintext using the receiver's private exponent.
func Decrypt(params domain.DHParams, ct domain.Ciphertext, private, shared bigint.Int) (string, error) {
	if err := dh.CheckParams(params); err != nil {
		return "", err
	}
	gab, err := dh.SharedSecret(params, ct.Y1, private)
	if err != nil {
		return "", err
	}
	k, err := modular.MulMod(gab, shared, params.P)
	if err != nil {
		return "", err
	}
	inv, err := modular.Inverse(k, params.P)
	if err != nil {
		return "", err
	}
	m, err := modular.MulMod(ct.Y2, inv, params.P)
	if err != nil {
		return "", err
	}
	return codec.Decode(m)
}
