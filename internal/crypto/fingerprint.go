package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"math/big"
)

// Fingerprint returns a short hex fingerprint of a sequence of public values.
//
// Each value is length-prefixed before hashing with SHA-256; the digest is
// truncated to 10 bytes (20 hex chars).
func Fingerprint(values ...*big.Int) string {
	h := sha256.New()
	for _, v := range values {
		var b []byte
		if v != nil {
			b = v.Bytes()
		}
		n := len(b)
		h.Write([]byte{byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)})
		h.Write(b)
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:10])
}
