// Package http provides the HTTP handlers for the file agent's REST API.
//
// This package implements all endpoints using the Gin framework. Every
// response, success or failure, is the same envelope with HTTP status 200;
// callers inspect the success flag rather than the status code, so the wire
// contract stays uniform across all operations and the health check.
//
// Endpoints:
//   - Health: GET /api/health (no token)
//   - Text: POST /api/read, /api/write
//   - Binary: POST /api/read_binary, /api/write_binary (base64 payloads)
//   - Tree: POST /api/delete, /api/create, /api/move, /api/copy
//   - Lookup: POST /api/search, GET /api/list
//
// Every operation except the health check verifies the caller's token
// against a secret digest computed once at server construction.
//
// Example Usage:
//
//	handlers := http.NewHandlers(digest, files, walker, metrics)
//	router.GET("/api/health", handlers.Health)
//	router.POST("/api/read", handlers.Read)
package http
