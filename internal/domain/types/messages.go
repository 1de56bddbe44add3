package types

import "github.com/kingaa1/Cryptography-algorithms/internal/bigint"

// Ciphertext is an ElGamal ciphertext: Y1 = G^b mod P and the masked
// message Y2.
type Ciphertext struct {
	Y1 bigint.Int `json:"y1"`
	Y2 bigint.Int `json:"y2"`
}
