package shadow

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-shadow-sync/internal/codec"
	"github.com/MKhiriev/go-shadow-sync/models"
)

type stateResult[T any] struct {
	value T
	err   error
}

// GetState fetches the full twin from the shadow store, decodes its desired
// section, caches it and returns it.
//
// GetState blocks until the fetch completes, ctx is done, the state timeout
// elapses (30s unless changed with [WithStateTimeout]) or the connection is
// closed. A completion that arrives after GetState returned is discarded.
func (c *Connection[T]) GetState(ctx context.Context) (T, error) {
	var zero T
	if c.closing.Load() {
		return zero, &RequestError{Op: OpGetState, Err: ErrClosed}
	}

	// Buffered so a late completion never blocks the transport goroutine.
	results := make(chan stateResult[T], 1)
	var fulfilled atomic.Bool

	err := c.transport.RequestFullState(func(payload []byte, err error) {
		if !fulfilled.CompareAndSwap(false, true) {
			return
		}
		if err != nil {
			results <- stateResult[T]{err: fmt.Errorf("%w: %w", ErrRequestRejected, err)}
			return
		}
		value, err := c.decodeDesired(payload)
		results <- stateResult[T]{value: value, err: err}
	})
	if err != nil {
		return zero, &RequestError{Op: OpGetState, Err: fmt.Errorf("%w: %w", ErrRequestRejected, err)}
	}

	timer := time.NewTimer(c.stateTimeout)
	defer timer.Stop()

	select {
	case res := <-results:
		if res.err != nil {
			return zero, &RequestError{Op: OpGetState, Err: res.err}
		}
		c.state.set(res.value)
		c.persist()
		return res.value, nil
	case <-timer.C:
		c.logger.Warn().Dur("timeout", c.stateTimeout).Msg("get state timed out")
		return zero, &RequestError{Op: OpGetState, Err: ErrRequestTimeout}
	case <-ctx.Done():
		return zero, &RequestError{Op: OpGetState, Err: ctx.Err()}
	case <-c.done:
		return zero, &RequestError{Op: OpGetState, Err: ErrClosed}
	}
}

func (c *Connection[T]) decodeDesired(payload []byte) (T, error) {
	var zero T

	doc, err := codec.ParseDocument(payload)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	desired, ok := codec.Section(doc, models.SectionDesired)
	if !ok {
		return zero, fmt.Errorf("%w: twin has no %s section", ErrDecode, models.SectionDesired)
	}

	value, err := codec.FromDocument(c.codec, stripMetadata(desired))
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return value, nil
}
