package models

import "time"

// SyncReport is returned by a manual sync pass.
type SyncReport struct {
	// Skipped is set when the pass did not run: another pass was in flight,
	// the device was offline or the queue was empty.
	Skipped    bool              `json:"skipped"`
	Reason     string            `json:"reason,omitempty"`
	Sent       int               `json:"sent"`
	Synced     []string          `json:"synced,omitempty"`
	Failed     map[string]string `json:"failed,omitempty"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
}

// NetworkStatus is the interval controller state exposed by the status API.
type NetworkStatus struct {
	Condition       NetworkCondition     `json:"condition"`
	CurrentInterval time.Duration        `json:"current_interval"`
	IntervalHistory []SyncIntervalConfig `json:"interval_history"`
	NetworkHistory  []NetworkCondition   `json:"network_history"`
}

// AppInfo describes the running binary.
type AppInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
