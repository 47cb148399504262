package http

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-shadow-sync/internal/config"
	"github.com/MKhiriev/go-shadow-sync/internal/logger"
	"github.com/MKhiriev/go-shadow-sync/internal/service"
	"github.com/MKhiriev/go-shadow-sync/internal/utils"
)

const (
	// maxJSONBody bounds twin and message request bodies.
	maxJSONBody = 1 << 20
	// maxFileBody bounds file uploads.
	maxFileBody = 32 << 20

	defaultPingInterval = 30 * time.Second
	streamWriteTimeout  = 10 * time.Second
)

type Handler struct {
	services *service.Services

	upgrader       websocket.Upgrader
	pingInterval   time.Duration
	requestTimeout time.Duration
	ids            *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		pingInterval:   defaultPingInterval,
		requestTimeout: cfg.RequestTimeout,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
