package http

import (
	"net/http"

	"github.com/rs/zerolog"
)

const (
	traceIDHeader = "X-Trace-ID"

	maxTraceIDLen = 128
)

// withTraceID reuses the caller's X-Trace-ID or generates a UUIDv7, and
// attaches a request logger carrying it to the request context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !validTraceID(traceID) {
			traceID = h.ids.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}

// validTraceID accepts short printable ASCII ids so a caller cannot inject
// control characters or unbounded text into every log line.
func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
