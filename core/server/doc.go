// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber application; this package only defines the
// listen address and request timeouts it is configured with.
package server
