// Package config provides configuration loading, merging, and validation
// facilities for the server.
//
// Configuration is assembled from multiple sources in the following priority
// order (a field set by an earlier source is never overwritten):
//  1. Environment variables (a .env file is loaded into the environment first)
//  2. Command-line flags
//  3. JSON config file (path from CONFIG or -c)
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
