package types

import "github.com/kingaa1/Cryptography-algorithms/internal/bigint"

// DHParams is a Diffie-Hellman group: generator G modulo P.
type DHParams struct {
	G bigint.Int `json:"g"`
	P bigint.Int `json:"p"`
}

// DHKeyPair is an ephemeral private exponent and its public value G^Private mod P.
type DHKeyPair struct {
	Private bigint.Int `json:"private"`
	Public  bigint.Int `json:"public"`
}

// RSAPublicKey is the pair (N, E).
type RSAPublicKey struct {
	N bigint.Int `json:"n"`
	E bigint.Int `json:"e"`
}

// RSAPrivateKey is the pair (N, D) with D = E⁻¹ mod φ(N).
type RSAPrivateKey struct {
	N bigint.Int `json:"n"`
	D bigint.Int `json:"d"`
}
