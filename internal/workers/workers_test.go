// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called and blocks until cancelled.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(ctx context.Context) error {
	m.runCount.Add(1)
	<-ctx.Done()
	return nil
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}
	ws := New(w1, w2)
	ws.Add(w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	assert.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestWorkers_Run_FailureCancelsOthers(t *testing.T) {
	blocker := &mockWorker{}
	boom := errors.New("boom")
	failing := WorkerFunc(func(context.Context) error { return boom })

	err := New(blocker, failing).Run(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should return immediately on an empty set
	assert.NoError(t, New().Run(context.Background()))
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	assert.NoError(t, ws.Run(context.Background()))
}
