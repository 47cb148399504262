// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *DeviceConfig) validate() error {
	if cfg.Endpoint.Address == "" {
		return ErrInvalidEndpointConfigs
	}

	if cfg.Endpoint.DeviceID == "" || cfg.Endpoint.DeviceKey == "" {
		return ErrInvalidDeviceConfigs
	}

	if strings.Contains(cfg.Storage.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.ResyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Files.UploadDir == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
