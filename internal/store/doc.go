// Package store provides file-based persistence for the local keyring.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk. All methods are concurrency-safe via
// internal locking. Stored files live under the user's configured home
// directory and are replaced atomically (temp file, then rename).
//
// Numbers are written as decimal text and private exponents only ever appear
// sealed (see crypto.SealSecret); the store never sees a passphrase.
package store
