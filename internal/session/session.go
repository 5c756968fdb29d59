package session

import (
	"crypto/rand"
	"math/big"
	"time"
)

const (
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	tokenLength   = 8
)

// Session binds an opaque token to an authenticated directory identity. It is
// immutable after creation; handlers share it by pointer and must not modify
// it. A DN may be empty for statically configured accounts that have no
// directory entry.
type Session struct {
	Token     string
	DN        string
	UID       string
	CreatedAt time.Time
}

func randomToken() string {
	var token = make([]byte, tokenLength)
	for i := range token {
		var n, err = rand.Int(rand.Reader, big.NewInt(int64(len(tokenAlphabet))))
		if err != nil {
			panic(err)
		}
		token[i] = tokenAlphabet[n.Int64()]
	}
	return string(token)
}
