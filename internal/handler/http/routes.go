package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
	})

	// device routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		// long-lived; no request timeout or compression
		r.Get("/api/twin/stream", h.stream)

		r.Group(func(r chi.Router) {
			if h.requestTimeout > 0 {
				r.Use(middleware.Timeout(h.requestTimeout))
			}
			r.Use(withGZip)

			r.Get("/api/twin", h.getTwin)
			r.Patch("/api/twin/desired", h.patchDesired)
			r.Put("/api/twin/reported", h.putReported)
			r.Post("/api/messages", h.postMessage)
			r.Put("/api/files/{name}", h.putFile)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
