package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shadow-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService verifies device tokens presented to the shadow store.
type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ShadowService keeps the twin document of every device and fans desired
// patches out to stream subscribers.
type ShadowService interface {
	// GetTwin returns a copy of the twin of deviceID. Unknown devices get an
	// empty twin at version 0.
	GetTwin(ctx context.Context, deviceID string) (models.TwinDocument, error)

	// PatchDesired merges patch into the desired section, bumps its version
	// and publishes a partial frame. It returns the new desired section.
	PatchDesired(ctx context.Context, deviceID string, patch models.Document) (models.Document, error)

	// ReplaceReported stores reported as the reported section.
	ReplaceReported(ctx context.Context, deviceID string, reported models.Document) error

	// Subscribe registers a stream subscriber. The first frame delivered is
	// always a full twin. The channel is closed when ctx is done or the
	// subscriber falls behind.
	Subscribe(ctx context.Context, deviceID string) (<-chan models.PatchFrame, error)
}

// MessageService accepts device telemetry.
type MessageService interface {
	// Accept records envelope. A repeated message id is acknowledged but not
	// recorded twice.
	Accept(ctx context.Context, deviceID string, envelope models.MessageEnvelope) (duplicate bool, err error)

	// Messages returns the retained messages of deviceID, oldest first.
	Messages(ctx context.Context, deviceID string) []models.MessageEnvelope
}

// FileService stores signed uploads.
type FileService interface {
	Store(ctx context.Context, deviceID, name string, contents []byte, signature string) (string, error)
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// Refresher fetches the full desired state from the shadow store.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// RefreshFunc adapts a function to [Refresher].
type RefreshFunc func(ctx context.Context) error

// Refresh implements [Refresher].
func (f RefreshFunc) Refresh(ctx context.Context) error {
	return f(ctx)
}

// ResyncJob periodically reconciles the device state with the shadow store.
type ResyncJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
