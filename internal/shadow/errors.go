package shadow

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shadow-sync/models"
)

var (
	ErrRequestTimeout  = errors.New("request timed out")
	ErrRequestRejected = errors.New("request rejected")
	ErrClosed          = errors.New("connection closed")
	ErrDecode          = errors.New("state decode failed")
	ErrEncode          = errors.New("state encode failed")
)

// Operation names carried by [RequestError] and [DeliveryError].
const (
	OpGetState    = "get state"
	OpReportState = "report state"
	OpSendMessage = "send message"
	OpUploadFile  = "upload file"
	OpApplyPatch  = "apply patch"
)

// Connect stages carried by [ConnectionError].
const (
	StageRuntime        = "transport runtime"
	StageDial           = "dial"
	StageRetryPolicy    = "retry policy"
	StageStatusHandler  = "status handler"
	StagePatchHandler   = "patch handler"
	StageInvalidOptions = "options"
)

// ConnectionError is returned by [Connect]. Nothing acquired during the
// failed attempt is retained.
type ConnectionError struct {
	Stage string
	Err   error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("shadow connect: %s: %v", e.Stage, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// RequestError reports a synchronous failure of a single operation. The
// connection stays usable.
type RequestError struct {
	Op  string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("shadow %s: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the request failed because it was not answered in
// time.
func (e *RequestError) Timeout() bool {
	return errors.Is(e.Err, ErrRequestTimeout)
}

// DeliveryError is passed to the error callback when an accepted operation
// fails after its call has returned.
type DeliveryError struct {
	Op string
	// TrackingID identifies the message for send failures.
	TrackingID uint64
	// StatusCode is the shadow store response for report failures. Zero
	// means no response.
	StatusCode int
	// Outcome is the transport outcome for send failures.
	Outcome models.DeliveryOutcome
	Err     error
}

func (e *DeliveryError) Error() string {
	switch e.Op {
	case OpSendMessage:
		return fmt.Sprintf("shadow %s: message %d: %s: %v", e.Op, e.TrackingID, e.Outcome, e.Err)
	case OpReportState:
		return fmt.Sprintf("shadow %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("shadow %s: %v", e.Op, e.Err)
	}
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
