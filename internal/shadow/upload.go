package shadow

import (
	"fmt"

	"github.com/MKhiriev/go-shadow-sync/models"
)

// UploadFile submits contents as the file name. A failed transfer is passed
// to the error callback as a [*DeliveryError] and is not retried.
func (c *Connection[T]) UploadFile(name string, contents []byte) error {
	if c.closing.Load() {
		return &RequestError{Op: OpUploadFile, Err: ErrClosed}
	}

	err := c.transport.SubmitFileUpload(name, contents, func(outcome models.UploadOutcome) {
		if outcome == models.UploadOK {
			return
		}
		c.reportAsync(&DeliveryError{
			Op:  OpUploadFile,
			Err: fmt.Errorf("%w: file %q", ErrRequestRejected, name),
		})
	})
	if err != nil {
		return &RequestError{Op: OpUploadFile, Err: fmt.Errorf("%w: %w", ErrRequestRejected, err)}
	}
	return nil
}
