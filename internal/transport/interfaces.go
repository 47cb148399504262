// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package transport provides the asynchronous, callback-driven link between a
// device and the shadow store.
//
// The primary abstraction is [Transport]. Every Submit/Request method returns
// as soon as the operation is queued; its outcome arrives later on a
// transport-owned goroutine through the handler passed in. Handlers must not
// block for long and must not call [Transport.Close].
//
// The package ships an HTTP implementation ([Dial]) that uses resty for
// request/response operations and a websocket stream for desired-state
// pushes. Process-wide resources shared by every HTTP transport are acquired
// with [Init] and released with [Deinit].
package transport

import (
	"context"

	"github.com/MKhiriev/go-shadow-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// ConnectionStatusHandler receives session status transitions.
type ConnectionStatusHandler func(status models.ConnectionStatus, reason models.StatusReason)

// PatchHandler receives desired-state notifications from the shadow store.
// Invocations for one transport are serialized.
type PatchHandler func(kind models.UpdateKind, payload []byte)

// StateHandler receives the full twin document requested with
// [Transport.RequestFullState]. err is non-nil when the request failed after
// it was accepted.
type StateHandler func(payload []byte, err error)

// ReportHandler receives the status code of a reported-state submission. A
// zero code means no response was received.
type ReportHandler func(statusCode int)

// DeliveryHandler receives the outcome of a telemetry submission.
type DeliveryHandler func(outcome models.DeliveryOutcome)

// UploadHandler receives the outcome of a file upload.
type UploadHandler func(outcome models.UploadOutcome)

// Message is a telemetry message ready for submission.
type Message struct {
	Body            []byte
	ContentType     string
	ContentEncoding string
	Properties      models.Properties
}

// Transport is a device session with the shadow store.
//
// Implementations must be safe for concurrent use. After Close returns no
// handler registered through the transport is invoked again.
type Transport interface {
	// SetRetryPolicy configures how the session recovers from transient
	// connection failures.
	SetRetryPolicy(policy RetryPolicy) error

	// SetConnectionStatusHandler installs fn, replacing any previous
	// handler. A nil fn unregisters it.
	SetConnectionStatusHandler(fn ConnectionStatusHandler) error

	// SetPatchHandler installs fn, replacing any previous handler. A nil fn
	// unregisters it.
	SetPatchHandler(fn PatchHandler) error

	// RequestFullState queues a fetch of the full twin document.
	RequestFullState(fn StateHandler) error

	// SubmitReportedState queues payload as the new reported state.
	SubmitReportedState(payload []byte, fn ReportHandler) error

	// SubmitMessage queues a telemetry message.
	SubmitMessage(msg Message, fn DeliveryHandler) error

	// SubmitFileUpload queues a file transfer.
	SubmitFileUpload(name string, contents []byte, fn UploadHandler) error

	// Close tears the session down and waits for running handlers to
	// return. Operations still queued complete with a destroyed or error
	// outcome before Close returns.
	Close() error
}

// Dialer opens a [Transport].
type Dialer interface {
	Dial(ctx context.Context) (Transport, error)
}

// DialerFunc adapts a function to [Dialer].
type DialerFunc func(ctx context.Context) (Transport, error)

// Dial implements [Dialer].
func (f DialerFunc) Dial(ctx context.Context) (Transport, error) {
	return f(ctx)
}
