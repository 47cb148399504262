// Package http implements the HTTP and WebSocket surface of the reference
// shadow store.
//
// It exposes route wiring, request handlers, and middleware. Device
// authentication, request tracing, access logging and response compression
// are handled in this package before requests are delegated to the service
// layer.
package http
