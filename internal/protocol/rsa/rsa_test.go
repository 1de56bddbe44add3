package rsa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingaa1/Cryptography-algorithms/internal/bigint"
	"github.com/kingaa1/Cryptography-algorithms/internal/domain"
	"github.com/kingaa1/Cryptography-algorithms/internal/modular"
	"github.com/kingaa1/Cryptography-algorithms/internal/protocol/dh"
	"github.com/kingaa1/Cryptography-algorithms/internal/protocol/rsa"
	"github.com/kingaa1/Cryptography-algorithms/internal/random"
)

// Mersenne primes 2^61-1 and 2^89-1.
var (
	p61 = bigint.MustParse("2305843009213693951")
	p89 = bigint.MustParse("618970019642690137449562111")
)

func TestGenerateKey_Textbook(t *testing.T) {
	pub, priv, err := rsa.GenerateKey(bigint.MustParse("61"), bigint.MustParse("53"), bigint.MustParse("17"))
	require.NoError(t, err)

	assert.Equal(t, "3233", pub.N.String())
	assert.Equal(t, "17", pub.E.String())
	assert.Equal(t, "3233", priv.N.String())
	assert.Equal(t, "2753", priv.D.String())
	assert.Equal(t, "3120", rsa.Phi(bigint.MustParse("61"), bigint.MustParse("53")).String())
}

func TestRoundTrip_Textbook(t *testing.T) {
	pub, priv, err := rsa.GenerateKey(bigint.MustParse("61"), bigint.MustParse("53"), bigint.MustParse("17"))
	require.NoError(t, err)
	shared := bigint.MustParse("2")

	for c := byte('A'); c <= 'Z'; c++ {
		msg := string([]byte{c})
		ct, err := rsa.Encrypt(pub, msg, shared)
		require.NoError(t, err)
		got, err := rsa.Decrypt(priv, ct, shared)
		require.NoError(t, err)
		require.Equal(t, msg, got)
	}
}

func TestEncrypt_MatchesFormula(t *testing.T) {
	pub, _, err := rsa.GenerateKey(bigint.MustParse("61"), bigint.MustParse("53"), bigint.MustParse("17"))
	require.NoError(t, err)

	// m = 65, s = 2: c = (130)^17 mod 3233
	ct, err := rsa.Encrypt(pub, "A", bigint.MustParse("2"))
	require.NoError(t, err)
	want, err := modular.Exp(bigint.MustParse("130"), pub.E, pub.N)
	require.NoError(t, err)
	assert.True(t, ct.Equal(want), "got %s want %s", ct, want)
}

func TestRoundTrip_MersennePrimes(t *testing.T) {
	pub, priv, err := rsa.GenerateKey(p61, p89, bigint.MustParse("65537"))
	require.NoError(t, err)
	assert.Equal(t, "1427247692705959880439315947500961989719490561", pub.N.String())
	assert.Equal(t, "740443132154395775117746638826656402702473", priv.D.String())

	params := domain.DHParams{G: bigint.MustParse("5"), P: p89}
	tr, err := dh.Run(random.New(nil), params)
	require.NoError(t, err)

	for _, msg := range []string{"HELLOO", "hello, rsa", ""} {
		ct, err := rsa.Encrypt(pub, msg, tr.Shared)
		require.NoError(t, err)
		got, err := rsa.Decrypt(priv, ct, tr.Shared)
		require.NoError(t, err)
		assert.Equal(t, msg, got)
	}
}

func TestGenerateKey_InvalidExponent(t *testing.T) {
	// 17 divides 2^88 - 1, hence φ(n).
	_, _, err := rsa.GenerateKey(p61, p89, bigint.MustParse("17"))
	assert.ErrorIs(t, err, rsa.ErrInvalidExponent)

	_, _, err = rsa.GenerateKey(bigint.MustParse("61"), bigint.MustParse("53"), bigint.MustParse("3"))
	assert.ErrorIs(t, err, rsa.ErrInvalidExponent)

	_, _, err = rsa.GenerateKey(bigint.MustParse("61"), bigint.MustParse("53"), bigint.MustParse("0"))
	assert.ErrorIs(t, err, rsa.ErrInvalidExponent)
}

func TestGenerateKey_InvalidPrime(t *testing.T) {
	_, _, err := rsa.GenerateKey(bigint.MustParse("1"), bigint.MustParse("53"), bigint.MustParse("17"))
	assert.ErrorIs(t, err, rsa.ErrInvalidPrime)
	_, _, err = rsa.GenerateKey(bigint.MustParse("61"), bigint.MustParse("-53"), bigint.MustParse("17"))
	assert.ErrorIs(t, err, rsa.ErrInvalidPrime)
}

func TestEncrypt_MessageTooLarge(t *testing.T) {
	pub, _, err := rsa.GenerateKey(bigint.MustParse("61"), bigint.MustParse("53"), bigint.MustParse("17"))
	require.NoError(t, err)
	_, err = rsa.Encrypt(pub, "AB", bigint.MustParse("2"))
	assert.ErrorIs(t, err, rsa.ErrMessageTooLarge)
}

func TestSharedSecretNotInvertible(t *testing.T) {
	pub, priv, err := rsa.GenerateKey(bigint.MustParse("61"), bigint.MustParse("53"), bigint.MustParse("17"))
	require.NoError(t, err)

	_, err = rsa.Encrypt(pub, "A", bigint.MustParse("61"))
	assert.ErrorIs(t, err, modular.ErrNotInvertible)
	_, err = rsa.Decrypt(priv, bigint.MustParse("100"), bigint.MustParse("53"))
	assert.ErrorIs(t, err, modular.ErrNotInvertible)
}
