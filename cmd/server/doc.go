// Package main is the entry point for the casefolio console server.
//
// The server hosts a read-only virtual filesystem rendered from a YAML
// project catalog and exposes a restricted shell over REST and WebSocket
// for the site frontend to drive.
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8080 -catalog catalog.yaml
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
