package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigestKnownVectors(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{
			name:  "default token",
			token: "default-token-12345",
			want:  "29e19ce95326c0b77b912c912caf782e6a0f3ca5c77e2f72ebdce1724ccf8607",
		},
		{
			name:  "abc",
			token: "abc",
			want:  "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		{
			name:  "empty token",
			token: "",
			want:  "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Digest(tt.token))
		})
	}
}

func TestDigestShape(t *testing.T) {
	d := Digest("anything at all")
	assert.Len(t, d, 64)
	assert.Equal(t, strings.ToLower(d), d)
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		candidate string
		want      bool
	}{
		{"matching token", "default-token-12345", "default-token-12345", true},
		{"off by one character", "default-token-12345", "default-token-12346", false},
		{"prefix only", "default-token-12345", "default-token", false},
		{"empty candidate", "default-token-12345", "", false},
		{"case sensitive", "Secret", "secret", false},
		{"unicode token", "トークン", "トークン", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest := Digest(tt.token)
			assert.Equal(t, tt.want, Verify(tt.candidate, digest))
		})
	}
}

func TestVerifyRejectsRawToken(t *testing.T) {
	// The stored secret is a digest; presenting the digest itself as the
	// token must not authenticate.
	digest := Digest("secret-token")
	assert.False(t, Verify(digest, digest))
}
