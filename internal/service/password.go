package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

var _ PasswordHasher = SHA256Hasher{}

// SHA256Hasher stores passwords as lowercase hex SHA-256 digests,
// the same value Postgres and MySQL produce for sha256/SHA2(pw, 256).
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func (h SHA256Hasher) Verify(hash, password string) bool {
	return subtle.ConstantTimeCompare([]byte(strings.ToLower(hash)), []byte(h.Hash(password))) == 1
}

const passwordSpecials = "@$!%*?&#"

// ValidPassword reports whether password has at least 8 characters, one each of
// upper case, lower case, digit and special, and nothing outside those classes.
func ValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			return false
		}
	}

	return upper && lower && digit && special
}
