package app

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/kingaa1/Cryptography-algorithms/internal/bigint"
	"github.com/kingaa1/Cryptography-algorithms/internal/domain"
	"github.com/kingaa1/Cryptography-algorithms/internal/protocol/dh"
	"github.com/kingaa1/Cryptography-algorithms/internal/protocol/elgamal"
	"github.com/kingaa1/Cryptography-algorithms/internal/protocol/rsa"
)

// SessionKeyBytes is the size of the key derived from a DH shared secret.
const SessionKeyBytes = 32

// App runs the end-to-end protocol flows: a fresh DH exchange whose shared
// secret then masks an ElGamal or RSA round trip.
type App struct {
	Random domain.RandomSource
	Log    logrus.FieldLogger
}

// New returns an App drawing ephemeral values from src. A nil logger
// discards output.
func New(src domain.RandomSource, log logrus.FieldLogger) *App {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &App{Random: src, Log: log.WithField("component", "app")}
}

// DHResult is a completed exchange plus the session key derived from it.
type DHResult struct {
	dh.Transcript
	SessionKey []byte
}

// ElGamalResult records one ElGamal round trip.
type ElGamalResult struct {
	Exchange   dh.Transcript
	Ciphertext domain.Ciphertext
	Plaintext  string
}

// RSAResult records one RSA round trip.
type RSAResult struct {
	Exchange   dh.Transcript
	Public     domain.RSAPublicKey
	Private    domain.RSAPrivateKey
	Ciphertext bigint.Int
	Plaintext  string
}

// DH performs a random exchange over params.
func (a *App) DH(params domain.DHParams) (DHResult, error) {
	t, err := a.exchange(params)
	if err != nil {
		return DHResult{}, err
	}
	key, err := dh.DeriveKey(t.Shared, []byte("cryptalg session"), SessionKeyBytes)
	if err != nil {
		return DHResult{}, fmt.Errorf("derive session key: %w", err)
	}
	return DHResult{Transcript: t, SessionKey: key}, nil
}

// ElGamal runs an exchange, then Alice's public value G^a receives msg
// encrypted with Bob's exponent b, and Alice decrypts it with a.
func (a *App) ElGamal(params domain.DHParams, msg string) (ElGamalResult, error) {
	t, err := a.exchange(params)
	if err != nil {
		return ElGamalResult{}, err
	}
	ct, err := elgamal.Encrypt(params, msg, t.Alice.Public, t.Bob.Private, t.Shared)
	if err != nil {
		return ElGamalResult{}, fmt.Errorf("elgamal encrypt: %w", err)
	}
	pt, err := elgamal.Decrypt(params, ct, t.Alice.Private, t.Shared)
	if err != nil {
		return ElGamalResult{}, fmt.Errorf("elgamal decrypt: %w", err)
	}
	a.Log.WithField("digits", ct.Y2.Len()).Debug("elgamal round trip")
	return ElGamalResult{Exchange: t, Ciphertext: ct, Plaintext: pt}, nil
}

// RSA runs an exchange over params, derives an RSA key from p, q and e and
// sends msg through it masked by the shared secret.
func (a *App) RSA(params domain.DHParams, p, q, e bigint.Int, msg string) (RSAResult, error) {
	t, err := a.exchange(params)
	if err != nil {
		return RSAResult{}, err
	}
	pub, priv, err := rsa.GenerateKey(p, q, e)
	if err != nil {
		return RSAResult{}, err
	}
	c, err := rsa.Encrypt(pub, msg, t.Shared)
	if err != nil {
		return RSAResult{}, fmt.Errorf("rsa encrypt: %w", err)
	}
	pt, err := rsa.Decrypt(priv, c, t.Shared)
	if err != nil {
		return RSAResult{}, fmt.Errorf("rsa decrypt: %w", err)
	}
	a.Log.WithField("digits", pub.N.Len()).Debug("rsa round trip")
	return RSAResult{Exchange: t, Public: pub, Private: priv, Ciphertext: c, Plaintext: pt}, nil
}

func (a *App) exchange(params domain.DHParams) (dh.Transcript, error) {
	t, err := dh.Run(a.Random, params)
	if err != nil {
		return dh.Transcript{}, fmt.Errorf("dh exchange: %w", err)
	}
	a.Log.WithField("digits", params.P.Len()).Debug("dh exchange complete")
	return t, nil
}
