package config

import (
	"fmt"
	"time"
)

// DefaultServerRequestTimeout bounds inbound requests when unset.
const DefaultServerRequestTimeout = 30 * time.Second

// ServerConfig is the shadow store server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	Server   Server
	Auth     Auth
	Files    Files
	LogLevel string
}

// GetServerConfig builds and validates the server-specific config view.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.serverView()
	return serverCfg, serverCfg.validate()
}

func (cfg *StructuredConfig) serverView() *ServerConfig {
	s := &ServerConfig{
		Server:   cfg.Server,
		Auth:     cfg.Auth,
		Files:    cfg.Storage.Files,
		LogLevel: cfg.Log.Level,
	}
	if s.Server.RequestTimeout <= 0 {
		s.Server.RequestTimeout = DefaultServerRequestTimeout
	}
	if s.Auth.TokenIssuer == "" {
		s.Auth.TokenIssuer = DefaultTokenIssuer
	}
	return s
}
