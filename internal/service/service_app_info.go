package service

import (
	"context"

	"github.com/MKhiriev/go-shadow-sync/internal/logger"
	"github.com/MKhiriev/go-shadow-sync/models"
)

type appInfoService struct {
	info models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService rejects build info without a version.
func NewAppInfoService(info models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if info.BuildVersion() == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().
		Str("version", info.Version).
		Str("commit", info.Commit).
		Msg("app info registered")

	return &appInfoService{
		info:   info,
		logger: logger,
	}, nil
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.info
}
