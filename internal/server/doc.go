// Package server runs the daemon's status API.
//
// It owns the HTTP listener lifecycle: startup, serving until the daemon's
// context is cancelled and graceful shutdown of in-flight requests.
package server
