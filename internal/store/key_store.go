package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/kingaa1/Cryptography-algorithms/internal/domain"
)

const rsaKeysFilename = "rsa_keys.json"

// ErrKeyNotFound is returned when deleting an id that is not stored.
var ErrKeyNotFound = errors.New("store: key not found")

// KeyFileStore persists RSA keyring records to disk.
type KeyFileStore struct {
	dir string
	log logrus.FieldLogger
	mu  sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore rooted at dir. A nil logger
// discards output.
func NewKeyFileStore(dir string, log logrus.FieldLogger) *KeyFileStore {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &KeyFileStore{dir: dir, log: log.WithField("component", "store")}
}

func (s *KeyFileStore) path() string { return filepath.Join(s.dir, rsaKeysFilename) }

func (s *KeyFileStore) load() (map[domain.KeyID]domain.RSAKeyRecord, error) {
	keys := map[domain.KeyID]domain.RSAKeyRecord{}
	if err := readJSON(s.path(), &keys); err != nil {
		return nil, fmt.Errorf("read %s: %w", rsaKeysFilename, err)
	}
	return keys, nil
}

func (s *KeyFileStore) save(keys map[domain.KeyID]domain.RSAKeyRecord) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return writeJSON(s.path(), keys, 0o600)
}

// SaveRSAKey inserts or replaces the record with rec.ID.
func (s *KeyFileStore) SaveRSAKey(rec domain.RSAKeyRecord) error {
	if rec.ID == "" {
		return errors.New("store: empty key id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.load()
	if err != nil {
		return err
	}
	keys[rec.ID] = rec
	if err := s.save(keys); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"key_id":      rec.ID,
		"fingerprint": rec.Fingerprint,
		"digits":      rec.Public.N.Len(),
	}).Debug("saved rsa key")
	return nil
}

// LoadRSAKey retrieves a stored record.
func (s *KeyFileStore) LoadRSAKey(id domain.KeyID) (domain.RSAKeyRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.load()
	if err != nil {
		return domain.RSAKeyRecord{}, false, err
	}
	rec, ok := keys[id]
	return rec, ok, nil
}

// ListRSAKeys returns every record, oldest first.
func (s *KeyFileStore) ListRSAKeys() ([]domain.RSAKeyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.RSAKeyRecord, 0, len(keys))
	for _, rec := range keys {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedUTC != out[j].CreatedUTC {
			return out[i].CreatedUTC < out[j].CreatedUTC
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// DeleteRSAKey removes a record.
func (s *KeyFileStore) DeleteRSAKey(id domain.KeyID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := keys[id]; !ok {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, id)
	}
	delete(keys, id)
	if err := s.save(keys); err != nil {
		return err
	}
	s.log.WithField("key_id", id).Debug("deleted rsa key")
	return nil
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)
