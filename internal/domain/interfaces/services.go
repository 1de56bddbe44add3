package interfaces

import (
	"github.com/kingaa1/Cryptography-algorithms/internal/bigint"
	domaintypes "github.com/kingaa1/Cryptography-algorithms/internal/domain/types"
)

// RandomSource supplies the ephemeral values the protocols consume.
type RandomSource interface {
	// RandomBelow returns a uniform integer in (0, bound).
	RandomBelow(bound bigint.Int) (bigint.Int, error)
	// ChooseTwoDistinct returns two distinct uniform integers in [1, p-1].
	ChooseTwoDistinct(p bigint.Int) (bigint.Int, bigint.Int, error)
}

// KeyringService generates RSA key pairs and runs RSA operations against
// the stored keys.
type KeyringService interface {
	GenerateRSA(passphrase string, p, q, e bigint.Int) (domaintypes.RSAKeyRecord, error)
	Encrypt(id domaintypes.KeyID, plaintext string, shared bigint.Int) (bigint.Int, error)
	Decrypt(passphrase string, id domaintypes.KeyID, ciphertext, shared bigint.Int) (string, error)
	List() ([]domaintypes.RSAKeyRecord, error)
	Delete(id domaintypes.KeyID) error
}
