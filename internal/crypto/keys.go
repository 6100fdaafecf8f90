package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// HashKeyLen is the length of the cookie HMAC key.
	HashKeyLen = 64
	// BlockKeyLen selects AES-256 for cookie encryption.
	BlockKeyLen = 32
)

// ErrEmptySecret is returned when a key derivation is asked to start from nothing.
var ErrEmptySecret = errors.New("empty secret")

// derive reads n bytes of HKDF-SHA256 output for the given purpose label.
func derive(secret []byte, label string, n int) ([]byte, error) {
	h := hkdf.New(sha256.New, secret, nil, []byte(label))
	out := make([]byte, n)
	if _, err := io.ReadFull(h, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeriveSessionKeys derives the cookie signing and encryption keys from a
// single configured secret using HKDF-SHA256 with distinct labels.
func DeriveSessionKeys(secret []byte) (hashKey, blockKey []byte, err error) {
	if len(secret) == 0 {
		return nil, nil, ErrEmptySecret
	}
	hashKey, err = derive(secret, "session-hash-key", HashKeyLen)
	if err != nil {
		return nil, nil, err
	}
	blockKey, err = derive(secret, "session-block-key", BlockKeyLen)
	if err != nil {
		return nil, nil, err
	}
	return hashKey, blockKey, nil
}

// MustRandom returns n random bytes or panics.
func MustRandom(n int) []byte {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		panic(err)
	}
	return b
}
