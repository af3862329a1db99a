// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Priority band boundaries used by [PriorityStats].
const (
	// PriorityHigh is the lowest score counted as high priority.
	PriorityHigh = 80
	// PriorityMedium is the lowest score counted as medium priority.
	PriorityMedium = 50
	// PriorityMax is the upper bound of every priority score.
	PriorityMax = 100
)

// SyncItem is a unit of local change that has not been transmitted yet.
// Once enqueued it is owned by the priority scheduler until it is marked as
// synced or discarded.
type SyncItem struct {
	// ID identifies the item. Uniqueness is the caller's responsibility.
	ID string `json:"id" validate:"required,max=128"`

	// Type is a free-form kind of the change (e.g. "attendance", "leave").
	Type string `json:"type" validate:"notblank,max=64"`

	// Data is the opaque payload pushed to the server.
	Data json.RawMessage `json:"data,omitempty" validate:"rawjson"`

	// Timestamp is when the change happened locally. It drives recency.
	Timestamp time.Time `json:"timestamp"`

	// IsUserFacing marks changes the user is waiting to see confirmed.
	IsUserFacing bool `json:"is_user_facing"`

	// IsCritical marks changes that must reach the server first.
	IsCritical bool `json:"is_critical"`

	// Priority is the 0..100 score computed by the active rule set.
	Priority int `json:"priority" validate:"min=0,max=100"`
}

// NewSyncItem is a [SyncItem] before it has been scored.
type NewSyncItem struct {
	ID           string          `json:"id" validate:"omitempty,max=128"`
	Type         string          `json:"type" validate:"notblank,max=64"`
	Data         json.RawMessage `json:"data,omitempty" validate:"rawjson"`
	Timestamp    time.Time       `json:"timestamp"`
	IsUserFacing bool            `json:"is_user_facing"`
	IsCritical   bool            `json:"is_critical"`
}

// WithPriority returns the scored [SyncItem].
func (n NewSyncItem) WithPriority(priority int) SyncItem {
	return SyncItem{
		ID:           n.ID,
		Type:         n.Type,
		Data:         n.Data,
		Timestamp:    n.Timestamp,
		IsUserFacing: n.IsUserFacing,
		IsCritical:   n.IsCritical,
		Priority:     priority,
	}
}

// Unscored strips the priority so the item can be re-scored.
func (s SyncItem) Unscored() NewSyncItem {
	return NewSyncItem{
		ID:           s.ID,
		Type:         s.Type,
		Data:         s.Data,
		Timestamp:    s.Timestamp,
		IsUserFacing: s.IsUserFacing,
		IsCritical:   s.IsCritical,
	}
}

// PriorityStats summarises the queue by priority band.
type PriorityStats struct {
	Total   int     `json:"total"`
	High    int     `json:"high"`
	Medium  int     `json:"medium"`
	Low     int     `json:"low"`
	Average float64 `json:"average"`
}

// PushResult is what the transport reports back after pushing a batch.
type PushResult struct {
	// Synced holds the ids the server acknowledged.
	Synced []string `json:"synced"`
	// Failed maps rejected ids to the server's reason.
	Failed map[string]string `json:"failed,omitempty"`
}
