package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shadow-sync/internal/validators"
	"github.com/MKhiriev/go-shadow-sync/models"
)

// messageValidationService rejects malformed envelopes before they reach the
// wrapped sink.
type messageValidationService struct {
	inner     MessageService
	validator validators.Validator
}

// NewMessageValidationService wraps inner with envelope validation.
func NewMessageValidationService(inner MessageService) MessageService {
	return &messageValidationService{
		inner:     inner,
		validator: validators.NewEnvelopeValidator(),
	}
}

func (v *messageValidationService) Accept(ctx context.Context, deviceID string, envelope models.MessageEnvelope) (bool, error) {
	if err := v.validator.Validate(ctx, envelope); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Accept(ctx, deviceID, envelope)
}

func (v *messageValidationService) Messages(ctx context.Context, deviceID string) []models.MessageEnvelope {
	return v.inner.Messages(ctx, deviceID)
}
