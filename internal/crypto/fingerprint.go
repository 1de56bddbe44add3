package crypto

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/kingaa1/Cryptography-algorithms/internal/domain"
)

// FingerprintBytes is the length of a fingerprint before hex encoding.
const FingerprintBytes = 10

// Fingerprint returns a short hex fingerprint of a public value.
//
// Each part is written with a trailing NUL so ("12", "3") and ("1", "23")
// hash differently. The BLAKE3 digest is truncated to 10 bytes (20 hex chars).
func Fingerprint(parts ...string) domain.Fingerprint {
	h := blake3.New()
	_, _ = h.WriteString("cryptalg-fingerprint")
	for _, p := range parts {
		_, _ = h.WriteString(p)
		_, _ = h.Write([]byte{0})
	}
	sum := h.Sum(nil)
	return domain.Fingerprint(hex.EncodeToString(sum[:FingerprintBytes]))
}
