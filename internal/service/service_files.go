package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shadow-sync/internal/logger"
	"github.com/MKhiriev/go-shadow-sync/internal/store"
	"github.com/MKhiriev/go-shadow-sync/internal/utils"
)

type fileService struct {
	files   store.FileStorage
	signKey string

	logger *logger.Logger
}

// NewFileService constructs a [FileService] that verifies the HMAC-SHA256
// signature of every upload with signKey before persisting it to files.
func NewFileService(files store.FileStorage, signKey string, logger *logger.Logger) FileService {
	return &fileService{
		files:   files,
		signKey: signKey,
		logger:  logger,
	}
}

func (s *fileService) Store(ctx context.Context, deviceID, name string, contents []byte, signature string) (string, error) {
	log := logger.FromContext(ctx)

	if deviceID == "" {
		return "", ErrNoDeviceID
	}
	if !utils.VerifyHash(contents, s.signKey, signature) {
		log.Error().
			Str("func", "fileService.Store").
			Str("device_id", deviceID).
			Str("name", name).
			Msg("upload signature mismatch")
		return "", ErrInvalidSignature
	}

	path, err := s.files.SaveFile(ctx, deviceID, name, contents)
	if err != nil {
		log.Err(err).Str("func", "fileService.Store").Str("name", name).Msg("failed to store upload")
		return "", fmt.Errorf("store upload: %w", err)
	}

	log.Info().
		Str("func", "fileService.Store").
		Str("device_id", deviceID).
		Str("path", path).
		Int("size", len(contents)).
		Msg("file stored")

	return path, nil
}
