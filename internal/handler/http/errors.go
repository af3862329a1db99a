// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself, before a request
// reaches the service layer.
var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrBodyTooLarge is returned when a request body exceeds the size limit.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrEmptyItemID is returned when the {id} path parameter is missing.
	ErrEmptyItemID = errors.New("empty sync item id")
)
