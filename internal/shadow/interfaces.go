package shadow

import (
	"context"

	"github.com/MKhiriev/go-shadow-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/snapshot_store_mock.go -package=mock

// SnapshotStore persists the last-known state across restarts.
type SnapshotStore interface {
	// Load returns the most recent snapshot of the device. It returns an
	// error when none exists.
	Load(ctx context.Context, deviceID string) (models.StateSnapshot, error)
	// Save replaces the snapshot of snapshot.DeviceID.
	Save(ctx context.Context, snapshot models.StateSnapshot) error
}
