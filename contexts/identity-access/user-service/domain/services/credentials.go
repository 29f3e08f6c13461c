package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword derives the stored credential digest for a password:
// hex(HMAC-SHA256(key=password, message=password)). The password doubles as
// the HMAC key. Existing stored hashes depend on this exact construction, so
// it must not be replaced with a salted scheme without a migration.
func HashPassword(password string) string {
	mac := hmac.New(sha256.New, []byte(password))
	mac.Write([]byte(password))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPassword compares a candidate password against a stored hex digest
// in constant time.
func VerifyPassword(password, storedHash string) bool {
	candidate := HashPassword(password)
	return hmac.Equal([]byte(candidate), []byte(storedHash))
}
