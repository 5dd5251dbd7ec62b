package cryptography

import (
	"crypto/rand"
	"encoding/hex"
)

type Hasher interface {
	HashString(data string, salt []byte) ([]byte, error)
	VerifyHashData(hash string, data string) bool
}

var CryptoHahser Hasher = argonHasher{}

// RandomHex returns n random bytes hex encoded.
func RandomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
