// Package auth implements the credential and session-token codecs.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

const (
	saltAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	saltLength   = 5

	// recordSeparator splits the salt from the digest inside a stored record.
	recordSeparator = ","
)

// MakeSalt returns a random salt of saltLength letters.
func MakeSalt() string {
	buf := make([]byte, saltLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// nothing sensible can be done at this layer.
		panic("auth: reading random salt: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = saltAlphabet[int(b)%len(saltAlphabet)]
	}
	return string(buf)
}

// HashPassword computes the credential record for the given salt:
// salt + "," + hex(sha256(name + password + salt)). Deterministic for a
// fixed salt, which is what makes verification possible. The name is part
// of the digest input so a record cannot be reused across accounts.
func HashPassword(name, password, salt string) string {
	sum := sha256.Sum256([]byte(name + password + salt))
	return salt + recordSeparator + hex.EncodeToString(sum[:])
}

// MakePasswordRecord hashes a password under a freshly generated salt.
func MakePasswordRecord(name, password string) string {
	return HashPassword(name, password, MakeSalt())
}

// VerifyPassword recomputes the record using the salt extracted from the
// stored record and compares byte-for-byte. Malformed records simply fail
// verification; this never returns an error or panics on bad input.
func VerifyPassword(name, password, record string) bool {
	salt, _, ok := strings.Cut(record, recordSeparator)
	if !ok {
		return false
	}
	expected := HashPassword(name, password, salt)
	return subtle.ConstantTimeCompare([]byte(record), []byte(expected)) == 1
}
