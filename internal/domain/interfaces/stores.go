package interfaces

import domaintypes "github.com/kingaa1/Cryptography-algorithms/internal/domain/types"

// KeyStore persists RSA keyring records.
type KeyStore interface {
	SaveRSAKey(rec domaintypes.RSAKeyRecord) error
	// LoadRSAKey returns ok=false when no record has the given id.
	LoadRSAKey(id domaintypes.KeyID) (rec domaintypes.RSAKeyRecord, ok bool, err error)
	ListRSAKeys() ([]domaintypes.RSAKeyRecord, error)
	DeleteRSAKey(id domaintypes.KeyID) error
}
