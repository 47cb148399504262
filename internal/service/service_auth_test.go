package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shadow-sync/internal/config"
	"github.com/MKhiriev/go-shadow-sync/internal/logger"
	"github.com/MKhiriev/go-shadow-sync/internal/utils"
)

func newTestAuthService() AuthService {
	return NewAuthService(config.Auth{TokenSignKey: testSignKey, TokenIssuer: "shadowd"}, logger.Nop())
}

func TestAuthService_ParseToken_Valid(t *testing.T) {
	token, err := utils.GenerateJWTToken("shadowd", "dev-1", time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := newTestAuthService().ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "dev-1", parsed.DeviceID)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "shadowd",
		Subject:   "dev-1",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = newTestAuthService().ParseToken(context.Background(), signed)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	wrongKey, err := utils.GenerateJWTToken("shadowd", "dev-1", time.Hour, "other-key")
	require.NoError(t, err)
	wrongIssuer, err := utils.GenerateJWTToken("someone-else", "dev-1", time.Hour, testSignKey)
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":      "not-a-token",
		"wrong key":    wrongKey.SignedString,
		"wrong issuer": wrongIssuer.SignedString,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := newTestAuthService().ParseToken(context.Background(), raw)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
