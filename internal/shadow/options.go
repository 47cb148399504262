package shadow

import (
	"reflect"
	"time"

	"github.com/MKhiriev/go-shadow-sync/internal/logger"
	"github.com/MKhiriev/go-shadow-sync/internal/transport"
	"github.com/MKhiriev/go-shadow-sync/models"
)

// DefaultStateTimeout bounds GetState unless overridden with
// [WithStateTimeout].
const DefaultStateTimeout = 30 * time.Second

// maxMessageAttempts is the original submission plus one retry on timeout.
const maxMessageAttempts = 2

type settings[T any] struct {
	stateTimeout time.Duration
	retry        transport.RetryPolicy
	logger       *logger.Logger
	equal        func(a, b T) bool
	initial      T
	snapshots    SnapshotStore
	deviceID     string

	onStatus func(models.ConnectionStatus, models.StatusReason)
	onState  func(T)
	onError  func(error)
}

// Option configures [Connect].
type Option[T any] func(*settings[T])

func defaultSettings[T any]() settings[T] {
	return settings[T]{
		stateTimeout: DefaultStateTimeout,
		retry:        transport.DefaultRetryPolicy(),
		logger:       logger.Nop(),
		equal: func(a, b T) bool {
			return reflect.DeepEqual(a, b)
		},
	}
}

// WithStateTimeout overrides how long GetState waits for the shadow store.
func WithStateTimeout[T any](d time.Duration) Option[T] {
	return func(s *settings[T]) {
		if d > 0 {
			s.stateTimeout = d
		}
	}
}

// WithRetryPolicy overrides the transport reconnect policy.
func WithRetryPolicy[T any](p transport.RetryPolicy) Option[T] {
	return func(s *settings[T]) {
		s.retry = p
	}
}

// WithLogger sets the connection logger.
func WithLogger[T any](l *logger.Logger) Option[T] {
	return func(s *settings[T]) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithEqual overrides the equality used to suppress no-op state changes.
func WithEqual[T any](equal func(a, b T) bool) Option[T] {
	return func(s *settings[T]) {
		if equal != nil {
			s.equal = equal
		}
	}
}

// WithInitialState seeds the cached state.
func WithInitialState[T any](state T) Option[T] {
	return func(s *settings[T]) {
		s.initial = state
	}
}

// WithSnapshotStore restores the cached state of deviceID from store on
// connect and saves every later state change to it.
func WithSnapshotStore[T any](store SnapshotStore, deviceID string) Option[T] {
	return func(s *settings[T]) {
		s.snapshots = store
		s.deviceID = deviceID
	}
}

// WithConnectionStatusHandler registers fn before the transport handlers are
// installed, so no status transition is missed.
func WithConnectionStatusHandler[T any](fn func(status models.ConnectionStatus, reason models.StatusReason)) Option[T] {
	return func(s *settings[T]) {
		s.onStatus = fn
	}
}

// WithStateChangeHandler registers fn before the desired-state stream opens,
// so the first full twin already reaches it.
func WithStateChangeHandler[T any](fn func(state T)) Option[T] {
	return func(s *settings[T]) {
		s.onState = fn
	}
}

// WithErrorHandler registers fn for asynchronous failures from the start.
func WithErrorHandler[T any](fn func(err error)) Option[T] {
	return func(s *settings[T]) {
		s.onError = fn
	}
}
