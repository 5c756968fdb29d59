package stringutil

import (
	"crypto/rand"
	"encoding/base64"
)

// IsAnyEmpty reports whether at least one of the given strings is empty.
func IsAnyEmpty(strings ...string) bool {
	for _, s := range strings {
		if s == "" {
			return true
		}
	}
	return false
}

// RandomBytesString returns max random bytes as an unpadded URL safe base64
// string. Used for generated session secrets.
func RandomBytesString(max int) string {
	var bytes = make([]byte, max)

	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}

	return base64.RawURLEncoding.EncodeToString(bytes)
}
