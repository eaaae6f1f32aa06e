// Package main is the entry point for the file agent.
//
// The agent is a local background service that exposes filesystem
// operations (read, write, delete, list, search, create, move, copy, in
// text and binary form) over a loopback HTTP API gated by a shared-secret
// token. A companion desktop application drives the API; the tray icon and
// settings dialog are separate programs that edit the same INI file and
// signal this process.
//
// The server provides:
//   - REST API for file and directory operations
//   - Uniform success/data/error envelope, always HTTP 200
//   - Bounded recursive filename search
//   - Prometheus metrics on /metrics
//
// Configuration:
//   - file_agent.ini beside the executable ([Settings] port/token)
//   - generated with defaults on first run
//   - no environment variables, no flags
//
// Usage:
//
//	./fileagent
//
// Signals:
//   - SIGHUP: reload configuration and restart the server
//   - SIGINT, SIGTERM: graceful shutdown
package main
