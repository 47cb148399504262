package store

import (
	"context"

	"github.com/MKhiriev/go-shadow-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SnapshotRepository persists the last-known application state per device.
// It satisfies shadow.SnapshotStore.
type SnapshotRepository interface {
	Load(ctx context.Context, deviceID string) (models.StateSnapshot, error)
	Save(ctx context.Context, snapshot models.StateSnapshot) error
}

// FileStorage stores files uploaded by devices.
type FileStorage interface {
	// SaveFile writes contents as name in the directory of deviceID and
	// returns the stored path.
	SaveFile(ctx context.Context, deviceID, name string, contents []byte) (string, error)
}
