// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-governor/internal/config"
	"github.com/MKhiriev/go-sync-governor/internal/logger"
	"github.com/MKhiriev/go-sync-governor/internal/utils"
	"github.com/MKhiriev/go-sync-governor/models"
)

// newTestTransport points an httpTransport at the test server.
func newTestTransport(t *testing.T, serverURL string) *httpTransport {
	t.Helper()
	cfg := config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	tr, err := NewHTTPTransport(cfg, logger.Nop())
	require.NoError(t, err)
	return tr.(*httpTransport)
}

func pushItems() []models.SyncItem {
	return []models.SyncItem{
		{ID: "a", Type: "attendance", Data: json.RawMessage(`{"in":"09:00"}`), Priority: 90},
		{ID: "b", Type: "leave", Priority: 40},
	}
}

// ── Push ────────────────────────────────────────────────────────────────────

func TestPush_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sync/push", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "trace-1", r.Header.Get(utils.TraceIDHeader))

		var req models.PushRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 2, req.Length)
		require.Len(t, req.Items, 2)
		assert.Equal(t, "a", req.Items[0].ID)
		assert.JSONEq(t, `{"in":"09:00"}`, string(req.Items[0].Data))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.PushResult{
			Synced: []string{"a"},
			Failed: map[string]string{"b": "duplicate"},
		})
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv.URL)
	ctx := utils.WithTraceID(context.Background(), "trace-1")

	got, err := tr.Push(ctx, pushItems())
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got.Synced)
	assert.Equal(t, "duplicate", got.Failed["b"])
}

func TestPush_NoTraceID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header[utils.TraceIDHeader]
		assert.False(t, present)
		_, _ = w.Write([]byte(`{"synced":["a","b"]}`))
	}))
	defer srv.Close()

	got, err := newTestTransport(t, srv.URL).Push(context.Background(), pushItems())
	require.NoError(t, err)
	assert.Len(t, got.Synced, 2)
}

func TestPush_EmptyBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("empty batch must not be sent")
	}))
	defer srv.Close()

	got, err := newTestTransport(t, srv.URL).Push(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got.Synced)
}

func TestPush_ErrorStatuses(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusBadRequest, want: ErrBadRequest},
		{status: http.StatusUnauthorized, want: ErrUnauthorized},
		{status: http.StatusForbidden, want: ErrForbidden},
		{status: http.StatusNotFound, want: ErrNotFound},
		{status: http.StatusConflict, want: ErrConflict},
		{status: http.StatusRequestEntityTooLarge, want: ErrPayloadTooLarge},
		{status: http.StatusTooManyRequests, want: ErrTooManyRequests},
		{status: http.StatusInternalServerError, want: ErrInternalServerError},
		{status: http.StatusBadGateway, want: ErrBadGateway},
		{status: http.StatusServiceUnavailable, want: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			_, err := newTestTransport(t, srv.URL).Push(context.Background(), pushItems())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestPush_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestTransport(t, srv.URL).Push(context.Background(), pushItems())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestPush_InvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := newTestTransport(t, srv.URL).Push(context.Background(), pushItems())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode push response")
}

func TestPush_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestTransport(t, url).Push(context.Background(), pushItems())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "push request")
}

// ── Constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPTransport_InvalidAddress(t *testing.T) {
	for _, addr := range []string{"", "   ", "http://"} {
		_, err := NewHTTPTransport(config.Adapter{HTTPAddress: addr}, logger.Nop())
		assert.ErrorIs(t, err, ErrInvalidAddress, addr)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://sync.example.com/", want: "https://sync.example.com"},
		{in: "  http://10.0.0.1:9000  ", want: "http://10.0.0.1:9000"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
