package shadow

import (
	"fmt"

	"github.com/MKhiriev/go-shadow-sync/internal/transport"
	"github.com/MKhiriev/go-shadow-sync/models"
)

// SendMessage submits body as a telemetry message and returns once the
// transport accepted it.
//
// properties are copied. A "message-id" property is generated when absent
// and kept on the retry so consumers can de-duplicate. A delivery that times
// out is resubmitted once from the retry dispatcher. A second timeout, a
// delivery error or a failed resubmission is passed to the error callback
// as a [*DeliveryError].
func (c *Connection[T]) SendMessage(body string, properties models.Properties) error {
	if c.closing.Load() {
		return &RequestError{Op: OpSendMessage, Err: ErrClosed}
	}

	props := make(models.Properties, len(properties)+1)
	for k, v := range properties {
		props[k] = v
	}
	if props[models.PropertyMessageID] == "" {
		props[models.PropertyMessageID] = c.ids.Generate()
	}

	h, msg := c.pending.add(models.PendingMessage{
		Payload:    body,
		Properties: props,
		Attempt:    1,
	})
	if err := c.submitMessage(h, msg); err != nil {
		c.pending.remove(h)
		return &RequestError{Op: OpSendMessage, Err: fmt.Errorf("%w: %w", ErrRequestRejected, err)}
	}
	return nil
}

func (c *Connection[T]) submitMessage(h handle, msg models.PendingMessage) error {
	return c.transport.SubmitMessage(transport.Message{
		Body:            []byte(msg.Payload),
		ContentType:     models.MessageContentType,
		ContentEncoding: models.MessageContentEncoding,
		Properties:      msg.Properties,
	}, func(outcome models.DeliveryOutcome) {
		c.handleDelivery(h, outcome)
	})
}

func (c *Connection[T]) handleDelivery(h handle, outcome models.DeliveryOutcome) {
	msg, ok := c.pending.get(h)
	if !ok {
		return
	}

	log := c.logger.Debug().
		Uint64("tracking_id", msg.TrackingID).
		Int("attempt", msg.Attempt).
		Stringer("outcome", outcome)

	switch outcome {
	case models.DeliveryOK, models.DeliveryDestroyed:
		log.Msg("message settled")
		c.pending.remove(h)

	case models.DeliveryTimeout:
		if msg.Attempt >= maxMessageAttempts {
			log.Msg("message retry timed out")
			c.pending.remove(h)
			c.reportAsync(&DeliveryError{
				Op:         OpSendMessage,
				TrackingID: msg.TrackingID,
				Outcome:    outcome,
				Err:        ErrRequestTimeout,
			})
			return
		}
		log.Msg("message timed out, scheduling retry")
		if !c.dispatch.enqueue(func() { c.retryMessage(h) }) {
			c.pending.remove(h)
		}

	default:
		log.Msg("message delivery failed")
		c.pending.remove(h)
		c.reportAsync(&DeliveryError{
			Op:         OpSendMessage,
			TrackingID: msg.TrackingID,
			Outcome:    outcome,
			Err:        ErrRequestRejected,
		})
	}
}

// retryMessage resubmits the message behind original under a fresh tracking
// id and then drops the original entry.
func (c *Connection[T]) retryMessage(original handle) {
	msg, ok := c.pending.get(original)
	if !ok {
		return
	}
	if c.closing.Load() {
		c.pending.remove(original)
		return
	}

	h, retry := c.pending.add(models.PendingMessage{
		Payload:    msg.Payload,
		Properties: msg.Properties,
		Attempt:    msg.Attempt + 1,
	})
	err := c.submitMessage(h, retry)
	c.pending.remove(original)

	if err != nil {
		c.pending.remove(h)
		c.reportAsync(&DeliveryError{
			Op:         OpSendMessage,
			TrackingID: retry.TrackingID,
			Outcome:    models.DeliveryTimeout,
			Err:        fmt.Errorf("%w: resubmit: %w", ErrRequestRejected, err),
		})
		return
	}

	c.logger.Debug().
		Uint64("tracking_id", retry.TrackingID).
		Uint64("retry_of", msg.TrackingID).
		Msg("message resubmitted")
}
