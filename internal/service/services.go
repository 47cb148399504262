package service

import (
	"fmt"

	"github.com/MKhiriev/go-shadow-sync/internal/config"
	"github.com/MKhiriev/go-shadow-sync/internal/logger"
	"github.com/MKhiriev/go-shadow-sync/internal/store"
	"github.com/MKhiriev/go-shadow-sync/models"
)

// Services groups the services of the reference shadow store.
type Services struct {
	AuthService    AuthService
	ShadowService  ShadowService
	MessageService MessageService
	FileService    FileService
	AppInfoService AppInfoService
}

func NewServices(cfg *config.ServerConfig, files store.FileStorage, info models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(info, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(cfg.Auth, logger),
		ShadowService:  NewShadowService(logger),
		MessageService: NewMessageValidationService(NewMessageService(DefaultMessageRetention, logger)),
		FileService:    NewFileService(files, cfg.Auth.TokenSignKey, logger),
		AppInfoService: appInfo,
	}, nil
}
