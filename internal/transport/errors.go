package transport

import "errors"

var (
	ErrClosed         = errors.New("transport closed")
	ErrQueueFull      = errors.New("transport queue full")
	ErrNotInitialized = errors.New("transport runtime not initialized")
	ErrInvalidAddress = errors.New("invalid shadow store address")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("device unauthorized")
	ErrForbidden           = errors.New("device disabled")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
