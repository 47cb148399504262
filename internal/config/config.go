// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// device runtime and the shadow store server. It is populated by merging
// values from environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Device holds the identity of the device this process represents.
	Device Device `envPrefix:"DEVICE_"`

	// Endpoint holds the address and timeouts used to reach the shadow store.
	Endpoint Endpoint `envPrefix:"ENDPOINT_"`

	// Auth holds token parameters shared by devices and the shadow store.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for local persistence and file sinks.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the shadow
	// store HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Device identifies the device and carries its symmetric key.
type Device struct {
	// ID is the device identifier registered with the shadow store.
	// Env: DEVICE_ID
	ID string `env:"ID"`

	// Key is the symmetric key used to sign device tokens and upload
	// signatures. Must be kept confidential.
	// Env: DEVICE_KEY
	Key string `env:"KEY"`
}

// Endpoint holds the settings of the outbound transport.
type Endpoint struct {
	// Address is the base URL or host:port of the shadow store.
	// Env: ENDPOINT_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds a single twin request (fetch or report).
	// Env: ENDPOINT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MessageTimeout bounds a single telemetry submission. Exceeding it
	// yields a timeout delivery outcome.
	// Env: ENDPOINT_MESSAGE_TIMEOUT
	MessageTimeout time.Duration `env:"MESSAGE_TIMEOUT"`

	// StateTimeout bounds a blocking GetState call.
	// Env: ENDPOINT_STATE_TIMEOUT
	StateTimeout time.Duration `env:"STATE_TIMEOUT"`

	// MaxInFlight is the number of queued asynchronous submissions the
	// transport accepts before rejecting new ones.
	// Env: ENDPOINT_MAX_IN_FLIGHT
	MaxInFlight int `env:"MAX_IN_FLIGHT"`

	// Workers is the number of transport callback goroutines.
	// Env: ENDPOINT_WORKERS
	Workers int `env:"WORKERS"`

	// RetryBaseDelay and RetryMaxDelay shape the reconnect backoff.
	// Env: ENDPOINT_RETRY_BASE_DELAY, ENDPOINT_RETRY_MAX_DELAY
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY"`
	RetryMaxDelay  time.Duration `env:"RETRY_MAX_DELAY"`
}

// Auth holds device token parameters.
type Auth struct {
	// TokenSignKey is the key the shadow store uses to verify device tokens.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in and required of every
	// device token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a device token remains valid.
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system settings of the upload sink.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the local snapshot database.
type DB struct {
	// DSN is the SQLite file path. Empty disables snapshot persistence.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Files holds file-system settings for uploaded device files.
type Files struct {
	// UploadDir is the directory where the shadow store writes uploads.
	// Env: STORAGE_FILES_UPLOAD_DIR
	UploadDir string `env:"UPLOAD_DIR"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ResyncInterval is how often the device fetches the full desired
	// state to reconcile missed patches.
	// Env: WORKERS_RESYNC_INTERVAL
	ResyncInterval time.Duration `env:"RESYNC_INTERVAL"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum emitted level ("debug", "info", "warn", "error").
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
