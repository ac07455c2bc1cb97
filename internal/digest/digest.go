// Package digest provides the two hash checks STAR uses: a SHA-256 binding
// between a case03/04 index and its STAR blob, and an xxHash64 quick check
// logged alongside round-trip verification so a human scanning encode
// output has a cheap tripwire for corruption without needing to re-run the
// full proof.
package digest

import (
	"crypto/sha256"

	"github.com/cespare/xxhash/v2"
)

// SHA256 returns the 32-byte SHA-256 digest of data.
func SHA256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// QuickCheck returns the xxHash64 fingerprint of data, used only as a cheap
// human-facing smoke test in CLI output, never as a binding mechanism.
func QuickCheck(data []byte) uint64 {
	return xxhash.Sum64(data)
}
