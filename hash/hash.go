// Package hash implements the single keyed-hash primitive the guardian
// core builds everything else on: HMAC-SHA-256, used both as a plain
// keyed digest ("the election hash") and as the one building block of
// the share-encryption KDF (package share).
package hash

import (
	"crypto/hmac"
	"crypto/sha256"
)

// Size is the length in bytes of an HValue, and of the key H accepts.
const Size = sha256.Size

// HValue is a 32-byte hash output.
type HValue [Size]byte

// H computes HMAC-SHA-256 over data using the 32-byte key. This is the
// only hashing primitive used anywhere in the guardian core; the same
// construction underlies the MAC in the share-encryption protocol and
// the two-output KDF derived from it (see package share).
func H(key HValue, data []byte) HValue {
	mac := hmac.New(sha256.New, key[:])
	// hmac.Hash.Write never returns an error.
	_, _ = mac.Write(data)

	var out HValue
	copy(out[:], mac.Sum(nil))
	return out
}

// Equal reports whether two HValues are equal, using a constant-time
// comparison (as required when comparing a computed MAC against one
// received over the wire).
func Equal(a, b HValue) bool {
	return hmac.Equal(a[:], b[:])
}
