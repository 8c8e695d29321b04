// Package cryptox implements password hashing for stored user credentials.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const saltSize = 16

// argon2id parameters: time=1, memory=64MB, threads=4, 32-byte key.
func deriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// HashPassword derives an argon2id hash of password with a fresh random salt
// and returns it in the storable form "argon2id$<salt hex>$<hash hex>".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := deriveKey([]byte(password), salt)
	return fmt.Sprintf("argon2id$%s$%s", hex.EncodeToString(salt), hex.EncodeToString(hash)), nil
}

// VerifyPassword reports whether password matches the stored encoded hash.
// The comparison is constant-time. An unparseable encoded value verifies as false.
func VerifyPassword(encoded, password string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != "argon2id" {
		return false
	}

	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(parts[2])
	if err != nil {
		return false
	}

	got := deriveKey([]byte(password), salt)
	return subtle.ConstantTimeCompare(got, want) == 1
}
