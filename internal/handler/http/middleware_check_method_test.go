// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-governor/internal/app"
)

// buildRouter creates a minimal chi.Mux for tests without Handler.Init().
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/queue", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("queue"))
	})
	router.Post("/api/queue", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Post("/api/sync", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"GET /api/queue passes through", http.MethodGet, "/api/queue", http.StatusOK},
		{"POST /api/queue passes through", http.MethodPost, "/api/queue", http.StatusCreated},
		{"POST /api/sync passes through", http.MethodPost, "/api/sync", http.StatusOK},
		{"DELETE /api/queue is hidden", http.MethodDelete, "/api/queue", http.StatusNotFound},
		{"PATCH /api/queue is hidden", http.MethodPatch, "/api/queue", http.StatusNotFound},
		{"GET /api/sync is hidden", http.MethodGet, "/api/sync", http.StatusNotFound},
		{"unknown route", http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_PassThroughBody(t *testing.T) {
	router := buildRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/queue", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "queue", rr.Body.String())
}

func TestCheckHTTPMethod_WrongMethodWritesJSONError(t *testing.T) {
	router := buildRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/sync", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, app.MsgRouteNotFound, body["error"])
}
