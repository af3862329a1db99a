// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a ticker-driven Periodic worker and a
// Workers aggregate that starts and stops several workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker and returns immediately; the worker keeps running
// until ctx is cancelled or Stop is called. Stop blocks until the worker has
// fully exited and must be safe to call on a worker that is not running.
//
// Example implementation:
//
//	type MyWorker struct{ p *Periodic }
//
//	func (w *MyWorker) Start(ctx context.Context) { w.p.Start(ctx) }
//	func (w *MyWorker) Stop()                    { w.p.Stop() }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Task is the unit of work a [Periodic] runs on every tick.
type Task func(ctx context.Context) error
