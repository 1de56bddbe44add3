package crypto_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingaa1/Cryptography-algorithms/internal/crypto"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	secret := "740443132154395775117746638826656402702473"

	sealed, err := crypto.SealSecret("correct horse", secret)
	require.NoError(t, err)
	assert.Len(t, sealed.Salt, crypto.SaltBytes)
	assert.Len(t, sealed.Nonce, crypto.NonceBytes)
	assert.NotContains(t, string(sealed.Ciphertext), secret)

	got, err := crypto.OpenSecret("correct horse", sealed)
	require.NoError(t, err)
	assert.Equal(t, secret, got)
}

func TestOpen_WrongPassphrase(t *testing.T) {
	sealed, err := crypto.SealSecret("right", "2753")
	require.NoError(t, err)

	_, err = crypto.OpenSecret("wrong", sealed)
	assert.ErrorIs(t, err, crypto.ErrWrongPassphrase)
}

func TestOpen_Tampered(t *testing.T) {
	sealed, err := crypto.SealSecret("pass", "2753")
	require.NoError(t, err)

	sealed.Ciphertext[0] ^= 1
	_, err = crypto.OpenSecret("pass", sealed)
	assert.ErrorIs(t, err, crypto.ErrWrongPassphrase)

	sealed.Nonce = sealed.Nonce[:4]
	_, err = crypto.OpenSecret("pass", sealed)
	assert.ErrorIs(t, err, crypto.ErrMalformedSecret)
}

func TestSeal_DeterministicSource(t *testing.T) {
	stream := bytes.Repeat([]byte{7}, crypto.SaltBytes+crypto.NonceBytes)

	a, err := crypto.SealSecretFrom(bytes.NewReader(stream), "pass", "42")
	require.NoError(t, err)
	b, err := crypto.SealSecretFrom(bytes.NewReader(stream), "pass", "42")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = crypto.SealSecretFrom(bytes.NewReader(stream[:3]), "pass", "42")
	assert.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	f := crypto.Fingerprint("3233", "17")
	assert.Len(t, f.String(), 2*crypto.FingerprintBytes)
	assert.Equal(t, f, crypto.Fingerprint("3233", "17"))
	assert.NotEqual(t, f, crypto.Fingerprint("323", "317"))
	assert.NotEqual(t, f, crypto.Fingerprint("3233", "3"))
}

func TestWipe(t *testing.T) {
	b := []byte("secret")
	crypto.Wipe(b)
	assert.Equal(t, make([]byte, 6), b)
}
