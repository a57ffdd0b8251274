// Package server runs the HTTP listener and the background workers.
//
// Both run under one errgroup bound to a context cancelled by SIGINT,
// SIGTERM or SIGQUIT. When either side stops, the other is told to stop and
// the HTTP server drains in-flight requests within the shutdown timeout.
package server
