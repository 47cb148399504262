// Package server runs the HTTP server of the reference shadow store,
// including signal handling and graceful shutdown.
package server
