package types

// KeyID uniquely identifies a key pair held in the local keyring.
type KeyID string

// String returns the string form of the identifier.
func (id KeyID) String() string { return string(id) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
