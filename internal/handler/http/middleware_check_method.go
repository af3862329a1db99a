// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-sync-governor/internal/app"
	"github.com/MKhiriev/go-sync-governor/internal/utils"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// It answers 404 with a JSON error body instead of chi's default 405 so that
// an unsupported method does not reveal that the path exists.
//
// Only exact route patterns are compared against the request path;
// parameterised segments are not expanded.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var found chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				found = route
				break
			}
		}

		if _, ok := found.Handlers[r.Method]; !ok {
			utils.WriteError(w, http.StatusNotFound, app.MsgRouteNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
