// Package codec converts raw bytes to and from the text-safe form used by the
// binary read and write endpoints.
//
// The encoding is standard base64 with padding, matching what the companion
// application sends and expects.
package codec

import "encoding/base64"

// Encode returns the base64 encoding of data.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Decode reverses Encode. The error text surfaces to API callers verbatim.
func Decode(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
