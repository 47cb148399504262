// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-shadow-sync/internal/logger"
	"github.com/MKhiriev/go-shadow-sync/internal/utils"
	"github.com/MKhiriev/go-shadow-sync/models"
)

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	_, _ = w.Write([]byte(" world"))

	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 11, w.size)
	assert.Equal(t, "hello world", rr.Body.String())
}

func TestResponseWriter_HijackUnsupported(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	_, _, err := w.Hijack()
	assert.ErrorIs(t, err, errHijackUnsupported)
}

func TestWithLogging_WritesAccessLog(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.New(&buf, "test", zerolog.DebugLevel), ids: utils.NewUUIDGenerator()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/messages", nil)
	rr := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	out := buf.String()
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"method":"POST"`)
	assert.Contains(t, out, `"uri":"/api/messages"`)
	assert.Contains(t, out, `"size":15`)
	assert.Contains(t, out, `"trace_id"`)
	assert.Contains(t, out, `"level":"warn"`)
	assert.NotContains(t, out, `"device_id"`)
}

func TestWithLogging_DeviceRouteLogsDeviceAndRoute(t *testing.T) {
	h, m := newMockHandler(t)
	var buf bytes.Buffer
	h.logger = logger.New(&buf, "test", zerolog.DebugLevel)
	m.shadow.EXPECT().GetTwin(gomock.Any(), testDeviceID).Return(models.TwinDocument{DeviceID: testDeviceID}, nil)

	rr := doRequest(t, h.Init(), http.MethodGet, "/api/twin", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var entry map[string]any
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	assert.Equal(t, testDeviceID, entry["device_id"])
	assert.Equal(t, "/api/twin", entry["route"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, rr.Header().Get(traceIDHeader), entry["trace_id"])
}

func TestAccessLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusOK))
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusSwitchingProtocols))
	assert.Equal(t, zerolog.WarnLevel, accessLogLevel(http.StatusUnauthorized))
	assert.Equal(t, zerolog.ErrorLevel, accessLogLevel(http.StatusBadGateway))
}
