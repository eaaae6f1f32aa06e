package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/hiroshi-tamura/file-agent/internal/shared/codec"
)

// Read returns the contents of the file at path as UTF-8 text.
func (s *Service) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}

// ReadBinary returns the raw contents of the file at path, base64 encoded.
func (s *Service) ReadBinary(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return codec.Encode(data), nil
}

// Write overwrites (or creates) the file at path with the given text.
// Missing parent directories are not created; the OS error passes through.
func (s *Service) Write(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

// WriteBinary decodes the base64 payload and overwrites (or creates) the
// file at path with the raw bytes. A decode failure leaves the filesystem
// untouched.
func (s *Service) WriteBinary(path, encoded string) error {
	data, err := codec.Decode(encoded)
	if err != nil {
		return fmt.Errorf("Base64 decode error: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("File write error: %v", err)
	}
	return nil
}

// Delete removes the file at path, or the whole tree when path is a
// directory. A missing path is reported with a fixed message instead of the
// OS error.
func (s *Service) Delete(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return ErrPathNotFound
	}
	if info.IsDir() {
		return os.RemoveAll(path)
	}
	return os.Remove(path)
}

// Create makes a directory (including missing ancestors) when isDirectory
// is set, otherwise an empty file, creating missing ancestors first.
// Directory creation is idempotent; file creation truncates an existing file.
func (s *Service) Create(path string, isDirectory bool) error {
	if isDirectory {
		return os.MkdirAll(path, 0o755)
	}

	if parent := filepath.Dir(path); parent != "" {
		if _, err := os.Stat(parent); os.IsNotExist(err) {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return fmt.Errorf("Failed to create parent directory: %v", err)
			}
		}
	}
	return os.WriteFile(path, []byte{}, 0o644)
}
