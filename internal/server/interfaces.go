package server

import "context"

// Server defines the lifecycle contract of the HTTP server managed by this
// package.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT, then shuts down.
	RunServer()

	// Run serves until ctx is done, then shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()

	// Addr returns the bound address once the server is listening.
	Addr() string
}
