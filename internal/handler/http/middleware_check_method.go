// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] meant to be registered as the
// router's MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Instead of chi's default 405, a request whose method is not registered for
// the matched route gets 404 Not Found, hiding the route from callers that
// use an unsupported method. Only exact patterns are compared; parameterised
// segments such as /api/files/{name} always yield 404.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		w.WriteHeader(http.StatusNotFound)
	}
}
