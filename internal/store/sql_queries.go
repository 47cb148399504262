package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-shadow-sync/models"
)

const snapshotsTable = "state_snapshots"

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectSnapshotQuery(deviceID string) (string, []any, error) {
	return sqlite.
		Select("device_id", "payload", "updated_at").
		From(snapshotsTable).
		Where(sq.Eq{"device_id": deviceID}).
		Limit(1).
		ToSql()
}

func buildUpsertSnapshotQuery(snapshot models.StateSnapshot) (string, []any, error) {
	return sqlite.
		Insert(snapshotsTable).
		Columns("device_id", "payload", "updated_at").
		Values(snapshot.DeviceID, snapshot.Payload, snapshot.UpdatedAt).
		Suffix("ON CONFLICT(device_id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
}
