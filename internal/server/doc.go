// Package server runs the stub backend.
//
// It owns the HTTP server lifecycle: startup, signal handling, and graceful
// shutdown with a bounded drain period.
package server
