package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-shadow-sync/internal/config"
	"github.com/MKhiriev/go-shadow-sync/internal/handler"
	"github.com/MKhiriev/go-shadow-sync/internal/logger"
	"github.com/MKhiriev/go-shadow-sync/internal/mock"
	"github.com/MKhiriev/go-shadow-sync/internal/service"
	"github.com/MKhiriev/go-shadow-sync/models"
)

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunAndShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("9.9.9", "", "")).AnyTimes()

	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}
	handlers, err := handler.NewHandlers(&service.Services{AppInfoService: appInfo}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	hs := srv.(*server).httpServer
	require.Eventually(t, func() bool { return hs.Addr() != "" }, time.Second, 5*time.Millisecond)

	resp, err := http.Get("http://" + hs.Addr() + "/api/version/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"version":"9.9.9","date":"N/A","commit":"N/A"}`, string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Error(t, hs.base.Err(), "request base context must be cancelled on shutdown")
}

func TestServer_ListenError(t *testing.T) {
	handlers, err := handler.NewHandlers(&service.Services{}, config.Server{HTTPAddress: "256.0.0.1:99999"}, logger.Nop())
	require.NoError(t, err)
	srv, err := NewServer(handlers, config.Server{HTTPAddress: "256.0.0.1:99999"}, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, srv.RunServer(context.Background()))
}
