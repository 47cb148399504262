package models

import "time"

// StateSnapshot is the persisted last-known application state of a device.
type StateSnapshot struct {
	DeviceID  string
	Payload   []byte
	UpdatedAt time.Time
}
