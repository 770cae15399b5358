package token

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
)

var ErrTokenGeneration = errors.New("token: failed to generate random token")

// sessionTokenBytes yields 32 hex characters per token, unguessable and with
// negligible collision probability over a process lifetime.
const sessionTokenBytes = 16

// NewSessionToken mints an opaque session token from the CSPRNG.
func NewSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", ErrTokenGeneration
	}
	return hex.EncodeToString(buf), nil
}

// NewSuffix returns n hex characters for generated usernames and similar
// non-secret identifiers.
func NewSuffix(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	buf := make([]byte, (n+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", ErrTokenGeneration
	}
	return hex.EncodeToString(buf)[:n], nil
}
