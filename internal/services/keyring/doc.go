// Package keyring manages RSA key pairs held on the local machine.
//
// It enforces the passphrase policy, derives key pairs from caller supplied
// primes via the rsa protocol package, seals the private exponent under the
// passphrase and persists records through domain.KeyStore. Encryption needs
// only the stored public key; decryption reopens the sealed exponent.
package keyring
