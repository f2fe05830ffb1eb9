package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidUsername(t *testing.T) {
	tests := []struct {
		username string
		want     bool
	}{
		{"alice", true},
		{"bob_123", true},
		{"with-hyphen", true},
		{"abc", true},
		{strings.Repeat("a", 20), true},
		{"", false},
		{"ab", false},
		{strings.Repeat("a", 21), false},
		{"has space", false},
		{"bad!char", false},
		{"unicode_é", false},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidUsername(tt.username))
		})
	}
}

func TestValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"minimal", "abc", true},
		{"any characters", "p@ss w0rd!", true},
		{"max length", strings.Repeat("x", 20), true},
		{"empty", "", false},
		{"too short", "ab", false},
		{"too long", strings.Repeat("x", 21), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPassword(tt.password))
		})
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"empty is allowed", "", true},
		{"plain", "alice@example.com", true},
		{"subdomain", "a@mail.example.co", true},
		{"no at sign", "alice.example.com", false},
		{"no dot", "alice@example", false},
		{"spaces", "alice @example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.email))
		})
	}
}
