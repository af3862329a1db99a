// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

const (
	// MsgInvalidDataProvided is returned when a sync item fails validation.
	// The response carries per-field details next to it.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected failure occurs
	// that the caller cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgRouteNotFound is returned for unknown paths and for methods a known
	// path does not accept.
	MsgRouteNotFound = "route not found"

	// MsgStorageFull is returned when admitting an item would exceed the
	// local storage quota.
	MsgStorageFull = "local storage quota exceeded"

	// MsgStorageBusy is returned when the local database is locked or
	// temporarily unavailable. The request can be retried.
	MsgStorageBusy = "local storage is busy, retry later"

	// MsgSyncServerUnavailable is returned when a manual sync pass could not
	// reach the sync server. The pushed items stay queued.
	MsgSyncServerUnavailable = "sync server unavailable"
)
