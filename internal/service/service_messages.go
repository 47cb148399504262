package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-shadow-sync/internal/logger"
	"github.com/MKhiriev/go-shadow-sync/models"
)

// DefaultMessageRetention is the number of messages kept per device.
const DefaultMessageRetention = 1024

type deviceMessages struct {
	log  []models.MessageEnvelope
	seen map[string]struct{}
}

// messageService is an in-memory telemetry sink that de-duplicates by
// message id.
type messageService struct {
	mu        sync.Mutex
	devices   map[string]*deviceMessages
	retention int

	logger *logger.Logger
}

// NewMessageService constructs a [MessageService] keeping the last retention
// messages of every device.
func NewMessageService(retention int, logger *logger.Logger) MessageService {
	if retention <= 0 {
		retention = DefaultMessageRetention
	}
	return &messageService{
		devices:   make(map[string]*deviceMessages),
		retention: retention,
		logger:    logger,
	}
}

func (s *messageService) Accept(ctx context.Context, deviceID string, envelope models.MessageEnvelope) (bool, error) {
	log := logger.FromContext(ctx)

	if deviceID == "" {
		return false, ErrNoDeviceID
	}
	if envelope.Body == "" {
		return false, ErrEmptyMessageBody
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.devices[deviceID]
	if !ok {
		d = &deviceMessages{seen: make(map[string]struct{})}
		s.devices[deviceID] = d
	}

	if envelope.MessageID != "" {
		if _, dup := d.seen[envelope.MessageID]; dup {
			log.Debug().
				Str("func", "messageService.Accept").
				Str("device_id", deviceID).
				Str("message_id", envelope.MessageID).
				Msg("duplicate message acknowledged")
			return true, nil
		}
		d.seen[envelope.MessageID] = struct{}{}
	}

	d.log = append(d.log, envelope)
	if len(d.log) > s.retention {
		evicted := d.log[0]
		d.log = d.log[1:]
		delete(d.seen, evicted.MessageID)
	}

	log.Info().
		Str("func", "messageService.Accept").
		Str("device_id", deviceID).
		Str("message_id", envelope.MessageID).
		Int("size", len(envelope.Body)).
		Msg("message accepted")

	return false, nil
}

func (s *messageService) Messages(ctx context.Context, deviceID string) []models.MessageEnvelope {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.devices[deviceID]
	if !ok {
		return nil
	}
	out := make([]models.MessageEnvelope, len(d.log))
	copy(out, d.log)
	return out
}
