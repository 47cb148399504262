// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that runs
// multiple workers under a shared context.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker fails. Returning nil after
// cancellation is a clean stop.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

// Run implements [Worker].
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
