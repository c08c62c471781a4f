// Package cryptox holds the hashing helpers used to fingerprint document
// bodies.
package cryptox

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// ContentHash returns the hex BLAKE2b-256 digest of data. Identical bodies
// always hash to the same value, so it is safe to use as a cache key.
func ContentHash(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

