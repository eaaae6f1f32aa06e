package http

// One request struct per operation, mirroring the JSON bodies the companion
// application sends. Every mutating and reading request carries the caller's
// token; list is the exception and passes path/token as query parameters.

// ReadRequest asks for a file's contents, text or binary.
type ReadRequest struct {
	Path  string `json:"path"`
	Token string `json:"token"`
}

// WriteRequest replaces a file's contents with text.
type WriteRequest struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Token   string `json:"token"`
}

// WriteBinaryRequest replaces a file's contents with base64-encoded bytes.
type WriteBinaryRequest struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Token   string `json:"token"`
}

// DeleteRequest removes a file or a directory tree.
type DeleteRequest struct {
	Path  string `json:"path"`
	Token string `json:"token"`
}

// SearchRequest looks for filenames containing a pattern under a directory.
type SearchRequest struct {
	Directory string `json:"directory"`
	Pattern   string `json:"pattern"`
	Token     string `json:"token"`
}

// CreateRequest makes an empty file or a directory chain.
type CreateRequest struct {
	Path        string `json:"path"`
	IsDirectory bool   `json:"is_directory"`
	Token       string `json:"token"`
}

// MoveRequest renames source to destination.
type MoveRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Token       string `json:"token"`
}

// CopyRequest duplicates source at destination.
type CopyRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Token       string `json:"token"`
}
