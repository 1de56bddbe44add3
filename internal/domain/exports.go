package domain

import (
	interfaces "github.com/kingaa1/Cryptography-algorithms/internal/domain/interfaces"
	types "github.com/kingaa1/Cryptography-algorithms/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	KeyID         = types.KeyID
	Fingerprint   = types.Fingerprint
	DHParams      = types.DHParams
	DHKeyPair     = types.DHKeyPair
	Ciphertext    = types.Ciphertext
	RSAPublicKey  = types.RSAPublicKey
	RSAPrivateKey = types.RSAPrivateKey
	SealedSecret  = types.SealedSecret
	RSAKeyRecord  = types.RSAKeyRecord
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	RandomSource   = interfaces.RandomSource
	KeyStore       = interfaces.KeyStore
	KeyringService = interfaces.KeyringService
)
