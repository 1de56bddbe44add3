// Package crypto holds the symmetric helpers the keyring needs around the
// number-theoretic protocols.
//
// Contents
//
//   - Passphrase sealing of secret decimal values with an Argon2id derived
//     key and ChaCha20-Poly1305 (SealSecret, OpenSecret)
//   - Short BLAKE3 fingerprints of public values for display and logging
//     (Fingerprint)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// Secrets enter and leave this package as strings of decimal digits; the
// byte buffers used while sealing are wiped before returning. Callers should
// still treat returned plaintext as sensitive.
package crypto
