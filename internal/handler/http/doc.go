// Package http implements the REST transport of the application.
//
// Routes are declared in one table together with the access rule each of
// them requires. Every request passes through tracing, access logging,
// panic recovery, metrics and compression, then has its bearer token
// resolved into an identity before the access guards and the handler run.
// Service errors are translated to status codes in a single place.
package http
