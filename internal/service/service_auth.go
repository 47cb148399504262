package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-shadow-sync/internal/config"
	"github.com/MKhiriev/go-shadow-sync/internal/logger"
	"github.com/MKhiriev/go-shadow-sync/internal/utils"
	"github.com/MKhiriev/go-shadow-sync/models"
)

// authService validates HS256 device tokens signed with the shared key.
type authService struct {
	// tokenSignKey is the HMAC secret used to verify device tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim every token must carry.
	tokenIssuer string

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] from the auth section of the
// server config.
func NewAuthService(cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

// ParseToken validates tokenString and returns its claims.
//
// Returns:
//   - ErrTokenIsExpired if the exp claim is in the past.
//   - ErrTokenIsExpiredOrInvalid for any other validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		log.Err(err).Str("func", "authService.ParseToken").Msg("device token is expired")
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		log.Err(err).Str("func", "authService.ParseToken").Msg("device token is invalid")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}
