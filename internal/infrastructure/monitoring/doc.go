/*
Package monitoring provides performance monitoring and metrics collection.

# Overview

This package implements Prometheus-based metrics collection for the file
agent, tracking HTTP requests and the outcome of every file operation.
Collectors live in a private registry so a supervisor-driven server rebuild
never trips duplicate registration.

# Features

- HTTP request metrics (latency, throughput, size)
- File operation metrics (per operation, per outcome)
- Uptime gauge computed on scrape

# Usage

	// Create metrics collector
	metrics := monitoring.NewMetrics()

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Record operation outcomes
	metrics.RecordOperation("read", monitoring.OutcomeSuccess)

# Metrics Endpoint

Expose the private registry via the standard Prometheus endpoint:

	router.GET("/metrics", metrics.Handler())
*/
package monitoring
