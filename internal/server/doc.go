// Package server provides HTTP server setup and initialization for the
// casefolio console.
//
// This package orchestrates all components:
//   - HTTP routing with Gin framework
//   - Middleware stack (CORS, rate limiting, metrics, recovery)
//   - Catalog loading and virtual filesystem construction
//   - Session manager initialization
//
// Server Lifecycle:
//  1. Load configuration from environment/flags
//  2. Initialize logger (production or development)
//  3. Load the project catalog and build the virtual filesystem
//  4. Start the session manager
//  5. Setup HTTP routes and middleware
//  6. Start HTTP server
//  7. Graceful shutdown on signal
//
// The router is not constructed until the filesystem build completes, so
// every handler observes a fully populated tree.
package server
