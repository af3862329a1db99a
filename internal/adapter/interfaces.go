// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the sync server.
//
// The primary abstraction is [Transport], which decouples the sync job from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPTransport]) and an HTTP network probe ([NewHTTPNetworkProbe]) that
// estimates latency and bandwidth for the interval controller.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-sync-governor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport pushes a batch of sync items to the server.
type Transport interface {
	// Push sends items in one request. The result lists the ids the server
	// accepted and the ids it rejected with a reason. Items missing from both
	// lists stay pending. A non-nil error means nothing was acknowledged.
	Push(ctx context.Context, items []models.SyncItem) (models.PushResult, error)
}
