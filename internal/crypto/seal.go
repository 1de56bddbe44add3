package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/kingaa1/Cryptography-algorithms/internal/domain"
)

const (
	KeyBytes   = chacha20poly1305.KeySize
	SaltBytes  = 16
	NonceBytes = chacha20poly1305.NonceSize
)

// Argon2id tunables for key-encryption keys.
const (
	kdfTime    = 1
	kdfMemory  = 64 * 1024
	kdfThreads = 4
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// sealed value has been modified.
	ErrWrongPassphrase = errors.New("crypto: wrong passphrase or corrupted secret")
	// ErrMalformedSecret is returned for sealed values with bad field sizes.
	ErrMalformedSecret = errors.New("crypto: malformed sealed secret")
)

// DeriveKEK stretches a passphrase into a 32-byte key-encryption key.
func DeriveKEK(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, kdfTime, kdfMemory, kdfThreads, KeyBytes)
}

// SealSecret encrypts secret under passphrase with fresh salt and nonce
// drawn from crypto/rand.
func SealSecret(passphrase, secret string) (domain.SealedSecret, error) {
	return SealSecretFrom(rand.Reader, passphrase, secret)
}

// SealSecretFrom is SealSecret with an explicit randomness source.
func SealSecretFrom(r io.Reader, passphrase, secret string) (domain.SealedSecret, error) {
	salt := make([]byte, SaltBytes)
	if _, err := io.ReadFull(r, salt); err != nil {
		return domain.SealedSecret{}, fmt.Errorf("read salt: %w", err)
	}
	nonce := make([]byte, NonceBytes)
	if _, err := io.ReadFull(r, nonce); err != nil {
		return domain.SealedSecret{}, fmt.Errorf("read nonce: %w", err)
	}

	kek := DeriveKEK(passphrase, salt)
	defer Wipe(kek)
	aead, err := chacha20poly1305.New(kek)
	if err != nil {
		return domain.SealedSecret{}, err
	}

	plain := []byte(secret)
	defer Wipe(plain)
	return domain.SealedSecret{
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: aead.Seal(nil, nonce, plain, salt),
	}, nil
}

// OpenSecret reverses SealSecret.
func OpenSecret(passphrase string, s domain.SealedSecret) (string, error) {
	if len(s.Salt) != SaltBytes || len(s.Nonce) != NonceBytes {
		return "", ErrMalformedSecret
	}
	kek := DeriveKEK(passphrase, s.Salt)
	defer Wipe(kek)
	aead, err := chacha20poly1305.New(kek)
	if err != nil {
		return "", err
	}
	plain, err := aead.Open(nil, s.Nonce, s.Ciphertext, s.Salt)
	if err != nil {
		return "", ErrWrongPassphrase
	}
	defer Wipe(plain)
	return string(plain), nil
}
