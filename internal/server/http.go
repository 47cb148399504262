package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-shadow-sync/internal/config"
	"github.com/MKhiriev/go-shadow-sync/internal/logger"
)

type httpServer struct {
	server *http.Server

	// base is the parent of every request context. It is cancelled on
	// shutdown so hijacked stream connections terminate too.
	base       context.Context
	cancelBase context.CancelFunc

	mu       sync.Mutex
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	h := &httpServer{logger: logger}
	h.base, h.cancelBase = context.WithCancel(context.Background())
	h.server = &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
		BaseContext:       func(net.Listener) context.Context { return h.base },
	}
	return h
}

// listen binds the configured address. Addr reports the bound address
// afterwards, which matters for ":0".
func (h *httpServer) listen() error {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.listener = ln
	h.mu.Unlock()
	return nil
}

func (h *httpServer) Addr() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.listener == nil {
		return ""
	}
	return h.listener.Addr().String()
}

func (h *httpServer) serve() error {
	h.mu.Lock()
	ln := h.listener
	h.mu.Unlock()

	h.logger.Info().Str("address", ln.Addr().String()).Msg("Launching HTTP server")
	if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")
	h.cancelBase()
	return h.server.Shutdown(ctx)
}
