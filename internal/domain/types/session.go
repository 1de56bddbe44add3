package types

// SealedSecret is a passphrase-encrypted decimal string.
type SealedSecret struct {
	Salt       []byte `json:"salt"`
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

// RSAKeyRecord is a keyring entry. The private exponent is only stored
// sealed under the owner's passphrase.
type RSAKeyRecord struct {
	ID          KeyID        `json:"id"`
	Fingerprint Fingerprint  `json:"fingerprint"`
	Public      RSAPublicKey `json:"public"`
	SealedD     SealedSecret `json:"sealed_d"`
	CreatedUTC  int64        `json:"created_utc"`
}
