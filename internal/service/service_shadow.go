// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-shadow-sync/internal/logger"
	"github.com/MKhiriev/go-shadow-sync/internal/mergepatch"
	"github.com/MKhiriev/go-shadow-sync/models"
)

// subscriberBuffer is the number of frames a stream subscriber may lag
// behind before it is dropped.
const subscriberBuffer = 16

type twin struct {
	desired         models.Document
	reported        models.Document
	desiredVersion  int64
	reportedVersion int64

	subscribers map[chan models.PatchFrame]struct{}
}

// shadowService is an in-memory twin registry.
type shadowService struct {
	mu    sync.Mutex
	twins map[string]*twin

	logger *logger.Logger
}

// NewShadowService constructs an empty in-memory [ShadowService].
func NewShadowService(logger *logger.Logger) ShadowService {
	return &shadowService{
		twins:  make(map[string]*twin),
		logger: logger,
	}
}

func (s *shadowService) GetTwin(ctx context.Context, deviceID string) (models.TwinDocument, error) {
	if deviceID == "" {
		return models.TwinDocument{}, ErrNoDeviceID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.twinLocked(deviceID).document(deviceID), nil
}

func (s *shadowService) PatchDesired(ctx context.Context, deviceID string, patch models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	if deviceID == "" {
		return nil, ErrNoDeviceID
	}
	if patch == nil {
		return nil, fmt.Errorf("%w: desired patch must be a JSON object", ErrInvalidDataProvided)
	}
	patch = mergepatch.Clone(patch)
	delete(patch, models.FieldVersion)

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.twinLocked(deviceID)
	t.desired = mergepatch.Apply(t.desired, patch)
	t.desiredVersion++

	patch[models.FieldVersion] = t.desiredVersion
	payload, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	s.publishLocked(t, models.PatchFrame{Kind: models.FramePartial, Payload: payload})

	log.Info().
		Str("func", "shadowService.PatchDesired").
		Str("device_id", deviceID).
		Int64("version", t.desiredVersion).
		Int("subscribers", len(t.subscribers)).
		Msg("desired state patched")

	return withVersion(t.desired, t.desiredVersion), nil
}

func (s *shadowService) ReplaceReported(ctx context.Context, deviceID string, reported models.Document) error {
	log := logger.FromContext(ctx)

	if deviceID == "" {
		return ErrNoDeviceID
	}
	if reported == nil {
		return fmt.Errorf("%w: reported state must be a JSON object", ErrInvalidDataProvided)
	}
	reported = mergepatch.Clone(reported)
	delete(reported, models.FieldVersion)

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.twinLocked(deviceID)
	changes := mergepatch.Diff(t.reported, reported)
	if len(changes) == 0 {
		log.Debug().Str("func", "shadowService.ReplaceReported").Str("device_id", deviceID).Msg("reported state unchanged")
		return nil
	}
	t.reported = reported
	t.reportedVersion++

	log.Info().
		Str("func", "shadowService.ReplaceReported").
		Str("device_id", deviceID).
		Int64("version", t.reportedVersion).
		Int("changed_keys", len(changes)).
		Msg("reported state replaced")

	return nil
}

func (s *shadowService) Subscribe(ctx context.Context, deviceID string) (<-chan models.PatchFrame, error) {
	if deviceID == "" {
		return nil, ErrNoDeviceID
	}

	s.mu.Lock()
	t := s.twinLocked(deviceID)
	payload, err := json.Marshal(t.document(deviceID))
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("encode twin: %w", err)
	}

	frames := make(chan models.PatchFrame, subscriberBuffer)
	frames <- models.PatchFrame{Kind: models.FrameFull, Payload: payload}
	t.subscribers[frames] = struct{}{}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		defer s.mu.Unlock()
		s.unsubscribeLocked(t, frames)
	}()

	return frames, nil
}

func (s *shadowService) twinLocked(deviceID string) *twin {
	t, ok := s.twins[deviceID]
	if !ok {
		t = &twin{
			desired:     models.Document{},
			reported:    models.Document{},
			subscribers: make(map[chan models.PatchFrame]struct{}),
		}
		s.twins[deviceID] = t
	}
	return t
}

func (s *shadowService) publishLocked(t *twin, frame models.PatchFrame) {
	for ch := range t.subscribers {
		select {
		case ch <- frame:
		default:
			s.logger.Warn().Str("func", "shadowService.publishLocked").Msg("dropping slow stream subscriber")
			s.unsubscribeLocked(t, ch)
		}
	}
}

func (s *shadowService) unsubscribeLocked(t *twin, ch chan models.PatchFrame) {
	if _, ok := t.subscribers[ch]; !ok {
		return
	}
	delete(t.subscribers, ch)
	close(ch)
}

func (t *twin) document(deviceID string) models.TwinDocument {
	return models.TwinDocument{
		DeviceID: deviceID,
		Desired:  withVersion(t.desired, t.desiredVersion),
		Reported: withVersion(t.reported, t.reportedVersion),
	}
}

func withVersion(section models.Document, version int64) models.Document {
	doc := mergepatch.Clone(section)
	if doc == nil {
		doc = models.Document{}
	}
	doc[models.FieldVersion] = version
	return doc
}
