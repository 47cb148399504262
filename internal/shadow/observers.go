package shadow

import (
	"sync"

	"github.com/MKhiriev/go-shadow-sync/models"
)

// callbackSlot holds at most one callback. The lock is held for the whole
// invocation, so a replacement never races a running call.
type callbackSlot[A any] struct {
	mu sync.Mutex
	fn func(A)
}

func (s *callbackSlot[A]) replace(fn func(A)) {
	s.mu.Lock()
	s.fn = fn
	s.mu.Unlock()
}

// call invokes the registered callback and reports whether one was set.
func (s *callbackSlot[A]) call(arg A) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fn == nil {
		return false
	}
	s.fn(arg)
	return true
}

type statusEvent struct {
	status models.ConnectionStatus
	reason models.StatusReason
}

type observers[T any] struct {
	status      callbackSlot[statusEvent]
	stateChange callbackSlot[T]
	err         callbackSlot[error]
}

// OnConnectionStatus registers fn for session status transitions, replacing
// any previous callback. A nil fn unregisters it.
func (c *Connection[T]) OnConnectionStatus(fn func(status models.ConnectionStatus, reason models.StatusReason)) {
	if fn == nil {
		c.observers.status.replace(nil)
		return
	}
	c.observers.status.replace(func(e statusEvent) {
		fn(e.status, e.reason)
	})
}

// OnStateChange registers fn for desired-state changes, replacing any
// previous callback. fn receives the new state.
func (c *Connection[T]) OnStateChange(fn func(state T)) {
	c.observers.stateChange.replace(fn)
}

// OnError registers fn for asynchronous failures, replacing any previous
// callback. Errors are typically [*DeliveryError].
func (c *Connection[T]) OnError(fn func(err error)) {
	c.observers.err.replace(fn)
}
