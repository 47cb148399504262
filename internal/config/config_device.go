package config

import (
	"fmt"
	"time"
)

// Defaults applied to device settings left unset by every source.
const (
	DefaultStateTimeout   = 30 * time.Second
	DefaultRequestTimeout = 15 * time.Second
	DefaultMessageTimeout = 20 * time.Second
	DefaultMaxInFlight    = 256
	DefaultWorkers        = 4
	DefaultRetryBaseDelay = 500 * time.Millisecond
	DefaultRetryMaxDelay  = time.Minute
	DefaultTokenDuration  = time.Hour
	DefaultTokenIssuer    = "shadowd"
)

// DeviceEndpoint holds everything the transport needs to open a session.
type DeviceEndpoint struct {
	Address        string
	DeviceID       string
	DeviceKey      string
	TokenIssuer    string
	TokenDuration  time.Duration
	RequestTimeout time.Duration
	MessageTimeout time.Duration
	MaxInFlight    int
	Workers        int
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
}

// DeviceWorkers contains device background worker settings.
type DeviceWorkers struct {
	// ResyncInterval defines how often the resync job runs. Zero disables it.
	ResyncInterval time.Duration
}

// DeviceConfig is the top-level device configuration assembled from
// [StructuredConfig].
type DeviceConfig struct {
	Endpoint DeviceEndpoint
	// StateTimeout bounds GetState.
	StateTimeout time.Duration
	Storage      DB
	Workers      DeviceWorkers
	LogLevel     string
}

// GetDeviceConfig builds and validates a device-specific config view from
// the merged structured configuration.
func GetDeviceConfig(args []string) (*DeviceConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	deviceCfg := cfg.deviceView()
	return deviceCfg, deviceCfg.validate()
}

func (cfg *StructuredConfig) deviceView() *DeviceConfig {
	d := &DeviceConfig{
		Endpoint: DeviceEndpoint{
			Address:        cfg.Endpoint.Address,
			DeviceID:       cfg.Device.ID,
			DeviceKey:      cfg.Device.Key,
			TokenIssuer:    cfg.Auth.TokenIssuer,
			TokenDuration:  cfg.Auth.TokenDuration,
			RequestTimeout: cfg.Endpoint.RequestTimeout,
			MessageTimeout: cfg.Endpoint.MessageTimeout,
			MaxInFlight:    cfg.Endpoint.MaxInFlight,
			Workers:        cfg.Endpoint.Workers,
			RetryBaseDelay: cfg.Endpoint.RetryBaseDelay,
			RetryMaxDelay:  cfg.Endpoint.RetryMaxDelay,
		},
		StateTimeout: cfg.Endpoint.StateTimeout,
		Storage:      cfg.Storage.DB,
		Workers:      DeviceWorkers{ResyncInterval: cfg.Workers.ResyncInterval},
		LogLevel:     cfg.Log.Level,
	}
	d.Endpoint.applyDefaults()
	if d.StateTimeout <= 0 {
		d.StateTimeout = DefaultStateTimeout
	}
	return d
}

func (e *DeviceEndpoint) applyDefaults() {
	if e.TokenIssuer == "" {
		e.TokenIssuer = DefaultTokenIssuer
	}
	if e.TokenDuration <= 0 {
		e.TokenDuration = DefaultTokenDuration
	}
	if e.RequestTimeout <= 0 {
		e.RequestTimeout = DefaultRequestTimeout
	}
	if e.MessageTimeout <= 0 {
		e.MessageTimeout = DefaultMessageTimeout
	}
	if e.MaxInFlight <= 0 {
		e.MaxInFlight = DefaultMaxInFlight
	}
	if e.Workers <= 0 {
		e.Workers = DefaultWorkers
	}
	if e.RetryBaseDelay <= 0 {
		e.RetryBaseDelay = DefaultRetryBaseDelay
	}
	if e.RetryMaxDelay <= 0 {
		e.RetryMaxDelay = DefaultRetryMaxDelay
	}
}
