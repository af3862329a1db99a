// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package priority implements the scheduler that orders pending offline
// writes for sync.
//
// Every [models.SyncItem] is scored 0..100 by a weighted set of [Rule]s whose
// weights always sum to 1. The queue is kept sorted by descending score
// (ties keep insertion order) and scores are refreshed periodically because
// the recency rule decays with time.
package priority
