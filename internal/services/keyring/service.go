package keyring

import (
	"errors"
	"fmt"
	"io"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kingaa1/Cryptography-algorithms/internal/bigint"
	"github.com/kingaa1/Cryptography-algorithms/internal/crypto"
	"github.com/kingaa1/Cryptography-algorithms/internal/domain"
	"github.com/kingaa1/Cryptography-algorithms/internal/protocol/rsa"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
	// ErrUnknownKey is returned when an id has no stored record.
	ErrUnknownKey = errors.New("keyring: unknown key id")
)

// Service manages RSA key records using a backing store.
type Service struct {
	store domain.KeyStore
	log   logrus.FieldLogger
	now   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New returns a keyring service backed by the given store. A nil logger
// discards output.
func New(store domain.KeyStore, log logrus.FieldLogger, opts ...Option) *Service {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	s := &Service{store: store, log: log.WithField("component", "keyring"), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateRSA derives a key pair from p, q and e, seals d with the
// passphrase and stores the record under a fresh id.
func (s *Service) GenerateRSA(passphrase string, p, q, e bigint.Int) (domain.RSAKeyRecord, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.RSAKeyRecord{}, ErrWeakPassphrase
	}

	pub, priv, err := rsa.GenerateKey(p, q, e)
	if err != nil {
		return domain.RSAKeyRecord{}, err
	}
	sealed, err := crypto.SealSecret(passphrase, priv.D.String())
	if err != nil {
		return domain.RSAKeyRecord{}, fmt.Errorf("seal private exponent: %w", err)
	}

	rec := domain.RSAKeyRecord{
		ID:          domain.KeyID(uuid.NewString()),
		Fingerprint: Fingerprint(pub),
		Public:      pub,
		SealedD:     sealed,
		CreatedUTC:  s.now().UTC().Unix(),
	}
	if err := s.store.SaveRSAKey(rec); err != nil {
		return domain.RSAKeyRecord{}, fmt.Errorf("save key: %w", err)
	}
	s.log.WithFields(logrus.Fields{
		"key_id":      rec.ID,
		"fingerprint": rec.Fingerprint,
		"digits":      pub.N.Len(),
	}).Info("generated rsa key")
	return rec, nil
}

// Encrypt encrypts plaintext to the stored public key id.
func (s *Service) Encrypt(id domain.KeyID, plaintext string, shared bigint.Int) (bigint.Int, error) {
	rec, err := s.load(id)
	if err != nil {
		return bigint.Int{}, err
	}
	c, err := rsa.Encrypt(rec.Public, plaintext, shared)
	if err != nil {
		return bigint.Int{}, err
	}
	s.log.WithFields(logrus.Fields{"key_id": id, "digits": c.Len()}).Debug("rsa encrypt")
	return c, nil
}

// Decrypt opens the sealed private exponent of id and decrypts c.
func (s *Service) Decrypt(passphrase string, id domain.KeyID, c, shared bigint.Int) (string, error) {
	rec, err := s.load(id)
	if err != nil {
		return "", err
	}
	dText, err := crypto.OpenSecret(passphrase, rec.SealedD)
	if err != nil {
		return "", err
	}
	d, err := bigint.Parse(dText)
	if err != nil {
		return "", fmt.Errorf("stored private exponent: %w", err)
	}
	pt, err := rsa.Decrypt(domain.RSAPrivateKey{N: rec.Public.N, D: d}, c, shared)
	if err != nil {
		return "", err
	}
	s.log.WithField("key_id", id).Debug("rsa decrypt")
	return pt, nil
}

// List returns every stored record.
func (s *Service) List() ([]domain.RSAKeyRecord, error) {
	return s.store.ListRSAKeys()
}

// Delete removes a stored record.
func (s *Service) Delete(id domain.KeyID) error {
	if err := s.store.DeleteRSAKey(id); err != nil {
		return err
	}
	s.log.WithField("key_id", id).Info("deleted rsa key")
	return nil
}

func (s *Service) load(id domain.KeyID) (domain.RSAKeyRecord, error) {
	rec, ok, err := s.store.LoadRSAKey(id)
	if err != nil {
		return domain.RSAKeyRecord{}, err
	}
	if !ok {
		return domain.RSAKeyRecord{}, fmt.Errorf("%w: %s", ErrUnknownKey, id)
	}
	return rec, nil
}

// Fingerprint returns the short fingerprint of a public key.
func Fingerprint(pub domain.RSAPublicKey) domain.Fingerprint {
	return crypto.Fingerprint(pub.N.String(), pub.E.String())
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.KeyringService.
var _ domain.KeyringService = (*Service)(nil)
