package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files.
type StructuredJSONConfig struct {
	Device struct {
		ID  string `json:"id"`
		Key string `json:"key"`
	} `json:"device,omitempty"`

	Endpoint struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
		MessageTimeout Duration `json:"message_timeout"`
		StateTimeout   Duration `json:"state_timeout"`
		MaxInFlight    int      `json:"max_in_flight"`
		Workers        int      `json:"workers"`
		RetryBaseDelay Duration `json:"retry_base_delay"`
		RetryMaxDelay  Duration `json:"retry_max_delay"`
	} `json:"endpoint,omitempty"`

	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			UploadDir string `json:"upload_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		ResyncInterval Duration `json:"resync_interval"`
	} `json:"workers,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Device: Device{
			ID:  jsonCfg.Device.ID,
			Key: jsonCfg.Device.Key,
		},
		Endpoint: Endpoint{
			Address:        jsonCfg.Endpoint.Address,
			RequestTimeout: time.Duration(jsonCfg.Endpoint.RequestTimeout),
			MessageTimeout: time.Duration(jsonCfg.Endpoint.MessageTimeout),
			StateTimeout:   time.Duration(jsonCfg.Endpoint.StateTimeout),
			MaxInFlight:    jsonCfg.Endpoint.MaxInFlight,
			Workers:        jsonCfg.Endpoint.Workers,
			RetryBaseDelay: time.Duration(jsonCfg.Endpoint.RetryBaseDelay),
			RetryMaxDelay:  time.Duration(jsonCfg.Endpoint.RetryMaxDelay),
		},
		Auth: Auth{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
		},
		Storage: Storage{
			DB:    DB{DSN: jsonCfg.Storage.DB.DSN},
			Files: Files{UploadDir: jsonCfg.Storage.Files.UploadDir},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers:      Workers{ResyncInterval: time.Duration(jsonCfg.Workers.ResyncInterval)},
		Log:          Log{Level: jsonCfg.Log.Level},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
