// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Properties are application-defined string key/value pairs attached to a
// telemetry message.
type Properties = map[string]string

// Fixed system metadata attached to every telemetry message.
const (
	MessageContentType     = "application/json"
	MessageContentEncoding = "utf-8"

	// PropertyMessageID is the property carrying the idempotency key of a
	// message. Retries reuse it so consumers can de-duplicate.
	PropertyMessageID = "message-id"
)

// PendingMessage is a telemetry message whose delivery outcome has not been
// confirmed yet.
type PendingMessage struct {
	// TrackingID is unique for the lifetime of a connection and never reused.
	TrackingID uint64
	Payload    string
	Properties Properties
	// Attempt is 1 for the original submission and 2 for the single
	// automatic retry.
	Attempt int
}

// MessageEnvelope is the wire form of a telemetry message.
type MessageEnvelope struct {
	MessageID       string     `json:"message_id"`
	ContentType     string     `json:"content_type"`
	ContentEncoding string     `json:"content_encoding"`
	Body            string     `json:"body"`
	Properties      Properties `json:"properties,omitempty"`
}

// DeliveryOutcome is the final result of a message submission as reported by
// the transport.
type DeliveryOutcome int

const (
	DeliveryOK DeliveryOutcome = iota
	DeliveryTimeout
	DeliveryError
	// DeliveryDestroyed is reported for submissions still in flight when the
	// transport is closed.
	DeliveryDestroyed
)

// String implements fmt.Stringer.
func (o DeliveryOutcome) String() string {
	switch o {
	case DeliveryOK:
		return "ok"
	case DeliveryTimeout:
		return "timeout"
	case DeliveryError:
		return "error"
	case DeliveryDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// UploadOutcome is the final result of a file upload.
type UploadOutcome int

const (
	UploadOK UploadOutcome = iota
	UploadError
)

// String implements fmt.Stringer.
func (o UploadOutcome) String() string {
	if o == UploadOK {
		return "ok"
	}
	return "error"
}
