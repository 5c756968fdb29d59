package pwdutil

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
)

// Length of the random salt appended to salted digests, matching the
// directory's SSHA256 convention.
const saltLength = 8

// Holder is implemented by any record carrying a plaintext password.
type Holder interface {
	PlaintextPassword() string
}

// Digest returns the base64 encoded SHA-256 hash of the plaintext password.
// It is deterministic and serves as a reference form only; values written to
// the directory always use SaltedDigest.
func Digest(h Holder) string {
	var hash = sha256.Sum256([]byte(h.PlaintextPassword()))
	return base64.StdEncoding.EncodeToString(hash[:])
}

// SaltedDigest returns base64(sha256(password||salt)||salt) with a fresh
// random salt. Callers prefix the result with {SSHA256} before storing it in
// userPassword; the directory server performs all later verification itself.
func SaltedDigest(h Holder) string {
	var salt = make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		panic(err)
	}
	var hash = sha256.Sum256(append([]byte(h.PlaintextPassword()), salt...))
	return base64.StdEncoding.EncodeToString(append(hash[:], salt...))
}
