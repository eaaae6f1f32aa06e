package filesystem

import "errors"

// FileInfo is a directory-entry snapshot returned by search and list.
// Size is nil when the entry's metadata could not be read; the JSON key is
// still emitted as null so callers always see the same shape.
type FileInfo struct {
	Path   string  `json:"path"`
	Name   string  `json:"name"`
	IsFile bool    `json:"is_file"`
	Size   *uint64 `json:"size"`
}

// Fixed error messages. The text reaches API callers verbatim and existing
// clients match on it, so the non-standard capitalization stays.
var (
	// ErrPathNotFound is returned by Delete when the target does not exist.
	ErrPathNotFound = errors.New("Path does not exist")

	// ErrSourceNotFound is returned by Move and Copy when the source is missing.
	ErrSourceNotFound = errors.New("Source file does not exist")

	// ErrInvalidUTF8 is returned by Read for files that are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
)

// Service performs the atomic file and directory operations behind the API
// endpoints. It holds no state; every call is a self-contained filesystem
// action.
type Service struct{}

// NewService creates a file operation service.
func NewService() *Service {
	return &Service{}
}
