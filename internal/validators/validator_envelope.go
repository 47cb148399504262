package validators

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-shadow-sync/models"
)

const (
	FieldBody            = "body"
	FieldContentType     = "content_type"
	FieldContentEncoding = "content_encoding"
	FieldProperties      = "properties"
	FieldMessageID       = "message_id"
)

// MaxMessageProperties caps the number of application properties of one
// message.
const MaxMessageProperties = 64

var envelopeFields = []string{FieldBody, FieldContentType, FieldContentEncoding, FieldProperties, FieldMessageID}

type EnvelopeValidator struct {
}

func NewEnvelopeValidator() Validator {
	return &EnvelopeValidator{}
}

// Validate checks a telemetry envelope. Without fields every rule applies.
func (v *EnvelopeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.MessageEnvelope:
		return v.validateEnvelope(ctx, value, fields...)
	case *models.MessageEnvelope:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateEnvelope(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *EnvelopeValidator) validateEnvelope(_ context.Context, envelope models.MessageEnvelope, fields ...string) error {
	if len(fields) == 0 {
		fields = envelopeFields
	}

	for _, field := range fields {
		switch field {
		case FieldBody:
			if envelope.Body == "" {
				return ErrEmptyBody
			}
			if !utf8.ValidString(envelope.Body) {
				return ErrBodyNotUTF8
			}
		case FieldContentType:
			if envelope.ContentType != "" && envelope.ContentType != models.MessageContentType {
				return fmt.Errorf("%w: %q", ErrInvalidContentType, envelope.ContentType)
			}
		case FieldContentEncoding:
			if envelope.ContentEncoding != "" && envelope.ContentEncoding != models.MessageContentEncoding {
				return fmt.Errorf("%w: %q", ErrInvalidContentEncoding, envelope.ContentEncoding)
			}
		case FieldProperties:
			if len(envelope.Properties) > MaxMessageProperties {
				return ErrTooManyMessageProperties
			}
			for name := range envelope.Properties {
				if name == "" {
					return ErrEmptyPropertyName
				}
			}
		case FieldMessageID:
			prop, ok := envelope.Properties[models.PropertyMessageID]
			if ok && envelope.MessageID != "" && prop != envelope.MessageID {
				return ErrMessageIDMismatch
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}
