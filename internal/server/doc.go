// Package server runs an HTTP handler with signal handling and graceful
// shutdown. cmd/scim-stub uses it to serve the fake enterprise directory.
package server
