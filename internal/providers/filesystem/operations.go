package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Move renames source to destination, creating missing ancestor directories
// of the destination first. Rename semantics (cross-device failures,
// overwrite behavior) are inherited from the OS.
func (s *Service) Move(source, destination string) error {
	if _, err := os.Stat(source); err != nil {
		return ErrSourceNotFound
	}
	if err := ensureParent(destination); err != nil {
		return err
	}
	return os.Rename(source, destination)
}

// Copy duplicates source at destination, creating missing ancestor
// directories of the destination first. A directory source is copied
// recursively; entries already copied when a step fails are kept.
func (s *Service) Copy(source, destination string) error {
	info, err := os.Stat(source)
	if err != nil {
		return ErrSourceNotFound
	}
	if err := ensureParent(destination); err != nil {
		return err
	}
	if info.IsDir() {
		return copyDir(source, destination)
	}
	return copyFile(source, destination)
}

// ensureParent creates the destination's missing ancestor directories.
func ensureParent(destination string) error {
	parent := filepath.Dir(destination)
	if parent == "" {
		return nil
	}
	if _, err := os.Stat(parent); os.IsNotExist(err) {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("Failed to create destination directory: %v", err)
		}
	}
	return nil
}

// copyDir recursively copies the tree rooted at src into dst.
func copyDir(src, dst string) error {
	if _, err := os.Stat(dst); os.IsNotExist(err) {
		if err := os.MkdirAll(dst, 0o755); err != nil {
			return err
		}
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}

// copyFile copies a regular file's contents and permission bits.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chmod(dst, info.Mode().Perm())
}
