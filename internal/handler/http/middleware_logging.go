package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-shadow-sync/internal/logger"
)

// withLogging writes one access log line per request. Device routes also
// carry the authenticated device_id, which the auth middleware records on the
// wrapped writer because it only sees a derived request.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		log := logger.FromRequest(r)
		event := log.WithLevel(accessLogLevel(lw.status)).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size)
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			event = event.Str("route", rctx.RoutePattern())
		}
		if lw.deviceID != "" {
			event = event.Str("device_id", lw.deviceID)
		}
		if lw.status == http.StatusSwitchingProtocols {
			event = event.Bool("stream", true)
		}
		event.Send()
	})
}

func accessLogLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
