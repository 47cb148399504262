package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidEndpointConfigs indicates invalid device endpoint settings
	// (for example, missing address).
	ErrInvalidEndpointConfigs = errors.New("invalid endpoint configuration")
	// ErrInvalidDeviceConfigs indicates a missing device id or key.
	ErrInvalidDeviceConfigs = errors.New("invalid device configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an in-memory DSN or missing upload dir).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAuthConfigs indicates a missing token sign key.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative resync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
