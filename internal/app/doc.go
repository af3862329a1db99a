// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// sync daemon's HTTP handlers.
//
// All Msg* constants are human-readable message strings written into API
// error responses. Keeping them in one place keeps the wording consistent.
package app
