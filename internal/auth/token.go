package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// tokenSeparator splits the payload from the integrity tag in an encoded
// token. Payloads (numeric user ids) never contain it.
const tokenSeparator = "|"

// TokenCodec produces and verifies tamper-evident opaque values used as
// session cookies. Tokens are signed, not encrypted: the payload stays
// visible to the holder, only integrity is protected. The secret is injected
// at construction and must stay constant for the process lifetime; rotating
// it invalidates every outstanding token and forces re-login.
type TokenCodec struct {
	secret []byte
}

// NewTokenCodec returns a codec signing with the given secret.
func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

// Encode returns value + "|" + hex(HMAC-SHA256(secret, value)).
func (c *TokenCodec) Encode(value string) string {
	return value + tokenSeparator + c.mac(value)
}

// Decode splits the token, recomputes the MAC over the payload and compares
// against the embedded tag. It reports ok only on an exact match; tokens
// with missing or extra separators, truncated tags, or a mismatching MAC
// are invalid. Never panics on malformed input.
func (c *TokenCodec) Decode(token string) (string, bool) {
	parts := strings.Split(token, tokenSeparator)
	if len(parts) != 2 {
		return "", false
	}
	value, tag := parts[0], parts[1]
	if !hmac.Equal([]byte(tag), []byte(c.mac(value))) {
		return "", false
	}
	return value, true
}

func (c *TokenCodec) mac(value string) string {
	h := hmac.New(sha256.New, c.secret)
	h.Write([]byte(value))
	return hex.EncodeToString(h.Sum(nil))
}
