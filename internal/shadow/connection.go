// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package shadow

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-shadow-sync/internal/codec"
	"github.com/MKhiriev/go-shadow-sync/internal/logger"
	"github.com/MKhiriev/go-shadow-sync/internal/transport"
	"github.com/MKhiriev/go-shadow-sync/internal/utils"
	"github.com/MKhiriev/go-shadow-sync/models"
)

// snapshotSaveTimeout bounds a single snapshot write.
const snapshotSaveTimeout = 5 * time.Second

// Connection is one logical session with the shadow store for state type T.
// It is safe for concurrent use.
type Connection[T any] struct {
	codec     codec.Codec[T]
	transport transport.Transport

	state     stateCell[T]
	observers observers[T]
	pending   tracker
	dispatch  *dispatcher
	ids       *utils.UUIDGenerator

	equal        func(a, b T) bool
	stateTimeout time.Duration
	snapshots    SnapshotStore
	deviceID     string

	// snapshotDirty is set while a state change is not yet saved.
	snapshotDirty atomic.Bool

	closing   atomic.Bool
	done      chan struct{}
	closeOnce sync.Once
	teardown  []func()

	logger *logger.Logger
}

// Connect opens a session through dialer and installs the connection status
// and desired-state patch handlers.
//
// Resources are acquired in this order: the process-wide transport runtime,
// the retry dispatcher, the transport session, the retry policy, the status
// handler and the patch handler. If any step fails everything acquired so
// far is released in reverse order and a [*ConnectionError] naming the
// failed stage is returned.
func Connect[T any](ctx context.Context, dialer transport.Dialer, c codec.Codec[T], opts ...Option[T]) (*Connection[T], error) {
	s := defaultSettings[T]()
	for _, opt := range opts {
		opt(&s)
	}

	if dialer == nil || c == nil {
		return nil, &ConnectionError{Stage: StageInvalidOptions, Err: errors.New("dialer and codec are required")}
	}

	conn := &Connection[T]{
		codec:        c,
		ids:          utils.NewUUIDGenerator(),
		equal:        s.equal,
		stateTimeout: s.stateTimeout,
		snapshots:    s.snapshots,
		deviceID:     s.deviceID,
		done:         make(chan struct{}),
		logger:       s.logger,
	}
	conn.state.set(s.initial)
	if s.onStatus != nil {
		conn.OnConnectionStatus(s.onStatus)
	}
	if s.onState != nil {
		conn.OnStateChange(s.onState)
	}
	if s.onError != nil {
		conn.OnError(s.onError)
	}

	fail := func(stage string, err error) (*Connection[T], error) {
		conn.release()
		conn.logger.Error().Err(err).Str("stage", stage).Msg("shadow connect failed")
		return nil, &ConnectionError{Stage: stage, Err: err}
	}

	if err := transport.Init(); err != nil {
		return fail(StageRuntime, err)
	}
	conn.acquired(transport.Deinit)

	conn.dispatch = newDispatcher()
	conn.acquired(conn.dispatch.stop)

	tr, err := dialer.Dial(ctx)
	if err != nil {
		return fail(StageDial, err)
	}
	conn.transport = tr
	conn.acquired(func() {
		if err := tr.Close(); err != nil {
			conn.logger.Warn().Err(err).Msg("transport close failed")
		}
	})

	conn.restoreSnapshot(ctx)

	if err = tr.SetRetryPolicy(s.retry); err != nil {
		return fail(StageRetryPolicy, err)
	}

	if err = tr.SetConnectionStatusHandler(conn.handleStatus); err != nil {
		return fail(StageStatusHandler, err)
	}
	conn.acquired(func() { _ = tr.SetConnectionStatusHandler(nil) })

	if err = tr.SetPatchHandler(conn.handlePatch); err != nil {
		return fail(StagePatchHandler, err)
	}
	conn.acquired(func() { _ = tr.SetPatchHandler(nil) })

	conn.logger.Info().Msg("shadow connection established")
	return conn, nil
}

// Close unregisters the handlers, closes the transport, stops the retry
// dispatcher and releases the transport runtime. No callback registered on
// the connection runs after Close returns. Close must not be called from a
// callback.
func (c *Connection[T]) Close() error {
	c.closeOnce.Do(func() {
		c.closing.Store(true)
		close(c.done)
		c.release()
		// The dispatcher is stopped, so this is the only writer left.
		c.saveSnapshot()
		c.pending.clear()
		c.logger.Info().Msg("shadow connection closed")
	})
	return nil
}

// State returns the cached state without contacting the shadow store.
// Reference-typed fields of T are shared with the cache and must not be
// mutated.
func (c *Connection[T]) State() T {
	return c.state.get()
}

// PendingMessages returns the number of messages whose delivery is not
// settled yet.
func (c *Connection[T]) PendingMessages() int {
	return c.pending.len()
}

func (c *Connection[T]) acquired(release func()) {
	c.teardown = append(c.teardown, release)
}

func (c *Connection[T]) release() {
	for i := len(c.teardown) - 1; i >= 0; i-- {
		c.teardown[i]()
	}
	c.teardown = nil
}

func (c *Connection[T]) handleStatus(status models.ConnectionStatus, reason models.StatusReason) {
	if c.closing.Load() {
		return
	}
	c.logger.Debug().
		Stringer("status", status).
		Stringer("reason", reason).
		Msg("connection status")
	c.observers.status.call(statusEvent{status: status, reason: reason})
}

// reportAsync hands err to the error callback. Without one the error is
// dropped.
func (c *Connection[T]) reportAsync(err error) {
	if c.closing.Load() {
		return
	}
	if !c.observers.err.call(err) {
		c.logger.Debug().Err(err).Msg("asynchronous failure dropped: no error callback")
	}
}

func (c *Connection[T]) restoreSnapshot(ctx context.Context) {
	if c.snapshots == nil {
		return
	}

	snapshot, err := c.snapshots.Load(ctx, c.deviceID)
	if err != nil {
		c.logger.Debug().Err(err).Msg("no state snapshot restored")
		return
	}

	value, err := c.codec.Decode(snapshot.Payload)
	if err != nil {
		c.logger.Warn().Err(err).Msg("state snapshot is unreadable")
		return
	}
	c.state.set(value)
	c.logger.Info().Time("saved_at", snapshot.UpdatedAt).Msg("state restored from snapshot")
}

// persist marks the cached state as unsaved and schedules a write on the
// dispatcher. Writes coalesce: at most one is queued, and it saves whatever
// the cache holds when it runs.
func (c *Connection[T]) persist() {
	if c.snapshots == nil {
		return
	}
	if c.snapshotDirty.Swap(true) {
		return
	}
	// A rejected task leaves the flag set for Close to flush.
	c.dispatch.enqueue(c.saveSnapshot)
}

// saveSnapshot writes the current cached state if it changed since the
// last write.
func (c *Connection[T]) saveSnapshot() {
	if c.snapshots == nil || !c.snapshotDirty.Swap(false) {
		return
	}

	payload, err := c.codec.Encode(c.state.get())
	if err != nil {
		c.logger.Warn().Err(err).Msg("state snapshot not encoded")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), snapshotSaveTimeout)
	defer cancel()

	err = c.snapshots.Save(ctx, models.StateSnapshot{
		DeviceID:  c.deviceID,
		Payload:   payload,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		c.logger.Warn().Err(err).Msg("state snapshot not saved")
	}
}
