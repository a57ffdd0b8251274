package server

import "context"

// Server is the lifecycle contract of the application process.
type Server interface {
	// RunServer serves until ctx is cancelled or a termination signal
	// arrives, then shuts down gracefully. It returns the first failure.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight
	// requests until ctx is done.
	Shutdown(ctx context.Context) error
}
