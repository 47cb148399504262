// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDeviceIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), DeviceIDCtxKey, "dev-1")
	id, ok := GetDeviceIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "dev-1", id)

	_, ok = GetDeviceIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = GetDeviceIDFromContext(context.WithValue(context.Background(), DeviceIDCtxKey, 42))
	assert.False(t, ok)

	_, ok = GetDeviceIDFromContext(context.WithValue(context.Background(), DeviceIDCtxKey, ""))
	assert.False(t, ok)
}

func TestHashString_Verify(t *testing.T) {
	data := []byte("firmware-log")
	sig := HashString(data, "key")

	assert.Len(t, sig, 64)
	assert.Equal(t, sig, HashString(data, "key"))
	assert.True(t, VerifyHash(data, "key", sig))
	assert.False(t, VerifyHash(data, "other-key", sig))
	assert.False(t, VerifyHash([]byte("tampered"), "key", sig))
	assert.False(t, VerifyHash(data, "key", "not-hex"))
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()
	a, b := g.Generate(), g.Generate()

	assert.NotEqual(t, a, b)
	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("shadowd", "dev-1", time.Hour, "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "secret", "shadowd")
	require.NoError(t, err)
	assert.Equal(t, "dev-1", parsed.DeviceID)
}

func TestJWTToken_Rejected(t *testing.T) {
	token, err := GenerateJWTToken("shadowd", "dev-1", time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "wrong", "shadowd")
	assert.Error(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "secret", "other-issuer")
	assert.Error(t, err)

	_, err = ValidateAndParseJWTToken("garbage", "secret", "shadowd")
	assert.Error(t, err)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		deviceID string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "dev", time.Hour, "key"},
		{"empty device", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "dev", 0, "key"},
		{"empty key", "iss", "dev", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.deviceID, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tok, err := ParseBearerToken("Bearer abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	for _, bad := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, err = ParseBearerToken(bad)
		assert.Error(t, err, bad)
	}
}

func TestNewHTTPClient_SharedTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	rt := &http.Transport{}
	c1, c2 := NewHTTPClient(rt), NewHTTPClient(rt)
	require.NotSame(t, c1.Client, c2.Client)

	resp, err := c1.R().Get(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.String())
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	_, err := WriteJSON(rec, map[string]string{"status": "ok"}, http.StatusCreated)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWriteJSON_KeepsHTMLAndFailsOnUnsupported(t *testing.T) {
	rec := httptest.NewRecorder()
	n, err := WriteJSON(rec, map[string]string{"label": "<b>&</b>"}, http.StatusOK)
	require.NoError(t, err)
	assert.Equal(t, `{"label":"<b>&</b>"}`, rec.Body.String())
	assert.Equal(t, rec.Body.Len(), n)

	rec = httptest.NewRecorder()
	_, err = WriteJSON(rec, map[string]any{"ch": make(chan int)}, http.StatusOK)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
