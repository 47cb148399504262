package shadow

import (
	"fmt"
	"net/http"
)

// SendReportState submits state as the full reported state and caches it
// without waiting for the shadow store to acknowledge it.
//
// A response outside the 2xx and 3xx range is passed to the error callback
// as a [*DeliveryError]. It is not retried.
func (c *Connection[T]) SendReportState(state T) error {
	if c.closing.Load() {
		return &RequestError{Op: OpReportState, Err: ErrClosed}
	}

	payload, err := c.codec.Encode(state)
	if err != nil {
		return &RequestError{Op: OpReportState, Err: fmt.Errorf("%w: %w", ErrEncode, err)}
	}

	err = c.transport.SubmitReportedState(payload, func(statusCode int) {
		if statusCode >= http.StatusOK && statusCode < http.StatusBadRequest {
			return
		}
		c.reportAsync(&DeliveryError{
			Op:         OpReportState,
			StatusCode: statusCode,
			Err:        ErrRequestRejected,
		})
	})
	if err != nil {
		return &RequestError{Op: OpReportState, Err: fmt.Errorf("%w: %w", ErrRequestRejected, err)}
	}

	c.state.set(state)
	c.persist()
	return nil
}
