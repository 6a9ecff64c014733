package shells

import (
	"crypto/sha256"
	"crypto/subtle"
	"strings"
)

// proofLength is the number of digest bytes translated into syllables.
const proofLength = 12

var syllables = [8]string{"ba", "la", "ha", "no", "re", "na", "ne", "sha"}

// Proof derives the Sselvish phrase committing user id to an amount under
// salt. It is deterministic: the same inputs always yield the same phrase,
// which is the whole trick — a player can only present a phrase this
// process once produced for them.
func Proof(salt, userID, amount string) string {
	hash := sha256.Sum256([]byte(salt + userID + amount))
	return translate(hash[:])
}

// VerifyProof reports whether the presented phrase matches the expected one
// for the claim. Comparison is constant time; this doubles as an
// authorization check.
func VerifyProof(salt, userID, amount, presented string) bool {
	expected := Proof(salt, userID, amount)
	presented = strings.TrimSpace(presented)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(presented)) == 1
}

// translate maps digest bytes 1..proofLength into syllables: the low three
// bits pick one of eight syllables and the next bit decides whether a space
// follows. Byte zero is skipped to match the phrases already in the wild.
func translate(hash []byte) string {
	var b strings.Builder

	for i := 1; i <= proofLength; i++ {
		n := hash[i]
		b.WriteString(syllables[n&7])
		if n>>3&1 == 0 {
			b.WriteByte(' ')
		}
	}

	return strings.TrimSpace(b.String())
}
