// Package workers provides a bounded pool that runs independent units of
// work in parallel and reports the outcome of each one.
package workers

import "context"

// Worker is the interface that must be implemented by any unit of work run
// by a [Pool]. Run should return promptly once ctx is done.
//
// Example implementation:
//
//	type downloadWorker struct{ link models.Link }
//
//	func (w *downloadWorker) Run(ctx context.Context) error {
//	    // fetch, decrypt and save one paste
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts an ordinary function to the [Worker] interface.
type WorkerFunc func(ctx context.Context) error

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
