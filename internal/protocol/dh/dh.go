package dh

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/kingaa1/Cryptography-algorithms/internal/bigint"
	"github.com/kingaa1/Cryptography-algorithms/internal/domain"
	"github.com/kingaa1/Cryptography-algorithms/internal/modular"
)

var (
	ErrInvalidParams  = errors.New("dh: invalid group parameters")
	ErrInvalidPrivate = errors.New("dh: private exponent out of range")
)

// Transcript is the outcome of one exchange.
type Transcript struct {
	Alice  domain.DHKeyPair
	Bob    domain.DHKeyPair
	Shared bigint.Int
}

// CheckParams validates P > 1 and 0 < G < P.
func CheckParams(params domain.DHParams) error {
	if bigint.Cmp(params.P, bigint.One()) <= 0 {
		return fmt.Errorf("%w: modulus %s", ErrInvalidParams, params.P)
	}
	if params.G.Sign() <= 0 || bigint.Cmp(params.G, params.P) >= 0 {
		return fmt.Errorf("%w: generator %s", ErrInvalidParams, params.G)
	}
	return nil
}

func checkPrivate(params domain.DHParams, priv bigint.Int) error {
	if priv.Sign() <= 0 || bigint.Cmp(priv, params.P) >= 0 {
		return ErrInvalidPrivate
	}
	return nil
}

// PublicValue returns G^priv mod P.
func PublicValue(params domain.DHParams, priv bigint.Int) (bigint.Int, error) {
	if err := CheckParams(params); err != nil {
		return bigint.Int{}, err
	}
	if err := checkPrivate(params, priv); err != nil {
		return bigint.Int{}, err
	}
	return modular.Exp(params.G, priv, params.P)
}

// SharedSecret returns peerPublic^priv mod P.
func SharedSecret(params domain.DHParams, peerPublic, priv bigint.Int) (bigint.Int, error) {
	if err := CheckParams(params); err != nil {
		return bigint.Int{}, err
	}
	if err := checkPrivate(params, priv); err != nil {
		return bigint.Int{}, err
	}
	return modular.Exp(peerPublic, priv, params.P)
}

// KeyPair builds the key pair for a known private exponent.
func KeyPair(params domain.DHParams, priv bigint.Int) (domain.DHKeyPair, error) {
	pub, err := PublicValue(params, priv)
	if err != nil {
		return domain.DHKeyPair{}, err
	}
	return domain.DHKeyPair{Private: priv, Public: pub}, nil
}

// GenerateKeyPair draws a private exponent in [1, P-1] from src.
func GenerateKeyPair(src domain.RandomSource, params domain.DHParams) (domain.DHKeyPair, error) {
	if err := CheckParams(params); err != nil {
		return domain.DHKeyPair{}, err
	}
	priv, err := src.RandomBelow(params.P)
	if err != nil {
		return domain.DHKeyPair{}, err
	}
	return KeyPair(params, priv)
}

// Exchange computes A = G^a, B = G^b and the shared secret B^a mod P.
func Exchange(params domain.DHParams, a, b bigint.Int) (Transcript, error) {
	alice, err := KeyPair(params, a)
	if err != nil {
		return Transcript{}, fmt.Errorf("alice: %w", err)
	}
	bob, err := KeyPair(params, b)
	if err != nil {
		return Transcript{}, fmt.Errorf("bob: %w", err)
	}
	shared, err := SharedSecret(params, bob.Public, a)
	if err != nil {
		return Transcript{}, err
	}
	return Transcript{Alice: alice, Bob: bob, Shared: shared}, nil
}

// Run picks two distinct private exponents from src and performs Exchange.
func Run(src domain.RandomSource, params domain.DHParams) (Transcript, error) {
	if err := CheckParams(params); err != nil {
		return Transcript{}, err
	}
	a, b, err := src.ChooseTwoDistinct(params.P)
	if err != nil {
		return Transcript{}, err
	}
	return Exchange(params, a, b)
}

// DeriveKey returns size bytes of HKDF-SHA256 output keyed by the decimal
// text of the shared secret.
func DeriveKey(shared bigint.Int, info []byte, size int) ([]byte, error) {
	if shared.Sign() <= 0 {
		return nil, fmt.Errorf("%w: shared secret must be positive", ErrInvalidParams)
	}
	out := make([]byte, size)
	r := hkdf.New(sha256.New, []byte(shared.String()), nil, info)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, err
	}
	return out, nil
}
