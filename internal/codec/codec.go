// Package codec maps byte-oriented text to a bigint.Int and back using a
// little-endian radix-256 positional scheme: byte i carries weight 256^i.
//
// Weights are exact powers of 256, so arbitrarily long text encodes without
// loss. Because the highest position carries the last byte, trailing NUL
// bytes contribute nothing and do not survive a round trip.
package codec

import (
	"errors"
	"fmt"

	"github.com/kingaa1/Cryptography-algorithms/internal/bigint"
)

// ErrNegative reports an attempt to decode a negative number.
var ErrNegative = errors.New("codec: cannot decode a negative number")

var radix = bigint.FromUint64(256)

// Encode returns Σ text[i]·256^i.
func Encode(text string) bigint.Int {
	sum := bigint.Zero()
	weight := bigint.One()
	for i := 0; i < len(text); i++ {
		term := bigint.Mul(bigint.FromUint64(uint64(text[i])), weight)
		sum = bigint.Add(sum, term)
		weight = bigint.Mul(weight, radix)
	}
	return sum
}

// Decode inverts Encode, peeling off n mod 256 as the next byte until n is 0.
func Decode(n bigint.Int) (string, error) {
	if n.Sign() < 0 {
		return "", fmt.Errorf("%w: %s", ErrNegative, n)
	}
	var out []byte
	for !n.IsZero() {
		q, r, err := bigint.QuoRem(n, radix)
		if err != nil {
			return "", err
		}
		b, _ := r.Uint64()
		out = append(out, byte(b))
		n = q
	}
	return string(out), nil
}
