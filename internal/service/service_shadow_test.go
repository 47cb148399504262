// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shadow-sync/internal/logger"
	"github.com/MKhiriev/go-shadow-sync/models"
)

func recvFrame(t *testing.T, frames <-chan models.PatchFrame) models.PatchFrame {
	t.Helper()
	select {
	case f, ok := <-frames:
		require.True(t, ok, "frame channel closed")
		return f
	case <-time.After(time.Second):
		t.Fatal("no frame received")
		return models.PatchFrame{}
	}
}

func TestShadowService_GetTwin_Empty(t *testing.T) {
	svc := NewShadowService(logger.Nop())

	doc, err := svc.GetTwin(context.Background(), "dev-1")
	require.NoError(t, err)
	assert.Equal(t, "dev-1", doc.DeviceID)
	assert.Equal(t, models.Document{models.FieldVersion: int64(0)}, doc.Desired)
	assert.Equal(t, models.Document{models.FieldVersion: int64(0)}, doc.Reported)
}

func TestShadowService_NoDeviceID(t *testing.T) {
	svc := NewShadowService(logger.Nop())
	ctx := context.Background()

	_, err := svc.GetTwin(ctx, "")
	assert.ErrorIs(t, err, ErrNoDeviceID)
	_, err = svc.PatchDesired(ctx, "", models.Document{})
	assert.ErrorIs(t, err, ErrNoDeviceID)
	assert.ErrorIs(t, svc.ReplaceReported(ctx, "", models.Document{}), ErrNoDeviceID)
	_, err = svc.Subscribe(ctx, "")
	assert.ErrorIs(t, err, ErrNoDeviceID)
}

func TestShadowService_PatchDesired(t *testing.T) {
	svc := NewShadowService(logger.Nop())
	ctx := context.Background()

	desired, err := svc.PatchDesired(ctx, "dev-1", models.Document{"mode": "eco", "fan": map[string]any{"speed": 2.0}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), desired[models.FieldVersion])

	desired, err = svc.PatchDesired(ctx, "dev-1", models.Document{"fan": map[string]any{"speed": nil}, models.FieldVersion: 99.0})
	require.NoError(t, err)
	assert.Equal(t, models.Document{"mode": "eco", "fan": map[string]any{}, models.FieldVersion: int64(2)}, desired)

	_, err = svc.PatchDesired(ctx, "dev-1", nil)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	doc, err := svc.GetTwin(ctx, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, desired, doc.Desired)
}

func TestShadowService_GetTwin_ReturnsCopy(t *testing.T) {
	svc := NewShadowService(logger.Nop())
	ctx := context.Background()
	_, err := svc.PatchDesired(ctx, "dev-1", models.Document{"mode": "eco"})
	require.NoError(t, err)

	doc, _ := svc.GetTwin(ctx, "dev-1")
	doc.Desired["mode"] = "off"

	again, _ := svc.GetTwin(ctx, "dev-1")
	assert.Equal(t, "eco", again.Desired["mode"])
}

func TestShadowService_ReplaceReported(t *testing.T) {
	svc := NewShadowService(logger.Nop())
	ctx := context.Background()

	require.NoError(t, svc.ReplaceReported(ctx, "dev-1", models.Document{"mode": "eco", "target": 21.0}))
	require.NoError(t, svc.ReplaceReported(ctx, "dev-1", models.Document{"mode": "eco", "target": 21.0}))
	doc, _ := svc.GetTwin(ctx, "dev-1")
	assert.Equal(t, int64(1), doc.Reported[models.FieldVersion], "unchanged report must not bump the version")

	require.NoError(t, svc.ReplaceReported(ctx, "dev-1", models.Document{"mode": "off"}))
	doc, _ = svc.GetTwin(ctx, "dev-1")
	assert.Equal(t, models.Document{"mode": "off", models.FieldVersion: int64(2)}, doc.Reported)

	assert.ErrorIs(t, svc.ReplaceReported(ctx, "dev-1", nil), ErrInvalidDataProvided)
}

func TestShadowService_Subscribe(t *testing.T) {
	svc := NewShadowService(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := svc.PatchDesired(ctx, "dev-1", models.Document{"mode": "eco"})
	require.NoError(t, err)

	frames, err := svc.Subscribe(ctx, "dev-1")
	require.NoError(t, err)

	full := recvFrame(t, frames)
	assert.Equal(t, models.FrameFull, full.Kind)
	var twinDoc models.TwinDocument
	require.NoError(t, json.Unmarshal(full.Payload, &twinDoc))
	assert.Equal(t, "eco", twinDoc.Desired["mode"])

	_, err = svc.PatchDesired(ctx, "dev-1", models.Document{"target": 22.0})
	require.NoError(t, err)

	partial := recvFrame(t, frames)
	assert.Equal(t, models.FramePartial, partial.Kind)
	assert.JSONEq(t, `{"target":22,"$version":2}`, string(partial.Payload))

	// other devices do not leak into the stream
	_, err = svc.PatchDesired(ctx, "dev-2", models.Document{"mode": "off"})
	require.NoError(t, err)
	select {
	case f := <-frames:
		t.Fatalf("unexpected frame %+v", f)
	case <-time.After(20 * time.Millisecond):
	}

	cancel()
	assert.Eventually(t, func() bool {
		_, ok := <-frames
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestShadowService_DropsSlowSubscriber(t *testing.T) {
	svc := NewShadowService(logger.Nop())
	ctx := context.Background()

	frames, err := svc.Subscribe(ctx, "dev-1")
	require.NoError(t, err)

	// the full frame already occupies one buffer slot
	for i := 0; i < subscriberBuffer+1; i++ {
		_, err = svc.PatchDesired(ctx, "dev-1", models.Document{"n": float64(i)})
		require.NoError(t, err)
	}

	n := 0
	for range frames {
		n++
	}
	assert.Equal(t, subscriberBuffer, n)
}
