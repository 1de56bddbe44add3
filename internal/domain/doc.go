// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (key material, ciphertexts, keyring records) and
// contracts (interfaces) only. Every number is a bigint.Int and serializes as
// decimal text.
package domain
