// Package logging provides structured logging using uber/zap.
//
// This package offers two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// The mode and level come from the [Logging] section of the agent's INI
// file, never from environment variables.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("server starting", zap.Uint16("port", 8767))
//	logger.Error("bind failed", zap.Error(err))
package logging
