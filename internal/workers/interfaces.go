// Package workers runs the background jobs of the server next to the HTTP
// listener. Each job implements Worker; Workers starts them together and
// stops them when the context is cancelled.
package workers

import "context"

// Worker is a long-running background job.
//
// Run blocks until ctx is done and returns nil on a clean stop. A non-nil
// error stops every other worker started by the same [Workers].
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
