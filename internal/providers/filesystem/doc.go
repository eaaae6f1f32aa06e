// Package filesystem implements the agent's file and directory operations
// against the local filesystem.
//
// The package is organized into focused modules:
//   - basic: whole-file operations (read, write, delete, create)
//   - operations: path manipulation (move, copy)
//   - directory: shallow listing of immediate children
//   - search: bounded recursive filename search
//
// Operations perform a single filesystem action each and surface OS errors
// verbatim; the handful of fixed messages (missing paths, decode failures)
// are part of the wire contract with the companion application and must not
// be reworded.
//
// Example Usage:
//
//	svc := filesystem.NewService()
//	if err := svc.Write("notes.txt", "hello"); err != nil { ... }
//
//	walker := filesystem.NewWalker()
//	matches := walker.Search("/home/user", "report")
package filesystem
