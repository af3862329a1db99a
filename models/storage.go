// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StorageQuota is a point-in-time estimate of local storage consumption.
// All sizes are in megabytes.
type StorageQuota struct {
	Used            float64 `json:"used"`
	Quota           float64 `json:"quota"`
	Percentage      float64 `json:"percentage"`
	Available       float64 `json:"available"`
	IsQuotaExceeded bool    `json:"is_quota_exceeded"`
	IsQuotaWarning  bool    `json:"is_quota_warning"`
	IsQuotaCritical bool    `json:"is_quota_critical"`
}

// StorageBand is the pressure level derived from [StorageQuota.Percentage].
type StorageBand string

const (
	StorageHealthy  StorageBand = "healthy"
	StorageWarning  StorageBand = "warning"
	StorageCritical StorageBand = "critical"
)

// Band returns the pressure level of the quota.
func (q StorageQuota) Band() StorageBand {
	switch {
	case q.IsQuotaCritical:
		return StorageCritical
	case q.IsQuotaWarning:
		return StorageWarning
	default:
		return StorageHealthy
	}
}

// StorageStats is the quota plus cleanup and archive bookkeeping.
type StorageStats struct {
	Quota        StorageQuota `json:"quota"`
	LastCleanup  *time.Time   `json:"last_cleanup,omitempty"`
	CleanupCount int          `json:"cleanup_count"`
	LastArchive  *time.Time   `json:"last_archive,omitempty"`
	ArchiveCount int          `json:"archive_count"`
}

// CleanupReport describes one cleanup pass.
type CleanupReport struct {
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Executed  []string      `json:"executed"`
	Skipped   []string      `json:"skipped"`
	Failed    []string      `json:"failed"`
	Before    StorageQuota  `json:"before"`
	After     StorageQuota  `json:"after"`
}

// ArchiveReport describes one archival pass.
type ArchiveReport struct {
	At    time.Time `json:"at"`
	Files int       `json:"files"`
	Bytes int64     `json:"bytes"`
}
