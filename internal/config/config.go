// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the sync
// governor daemon. It aggregates all sub-configurations and is populated by
// merging values from a .env file, environment variables, command-line flags,
// an optional JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
//   - validate : go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// Logger controls log level and destination.
	Logger Logger `envPrefix:"LOG_"`

	// Storage holds the outbox database and the governed data directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds settings of the local status API.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the remote sync endpoint and the network probe.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings of the sync job and the state persister.
	Workers Workers `envPrefix:"WORKERS_"`

	// Priority configures the priority scheduler.
	Priority Priority `envPrefix:"PRIORITY_"`

	// Interval configures the adaptive interval controller.
	Interval Interval `envPrefix:"INTERVAL_"`

	// Governor configures the storage governor.
	Governor Governor `envPrefix:"GOVERNOR_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Logger holds logging settings.
type Logger struct {
	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" validate:"oneof=trace debug info warn error fatal panic disabled"`

	// File is an optional log file; empty means stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the outbox database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the governed data directory settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the outbox database.
type DB struct {
	// DSN selects the backend by scheme: "postgres://" or "postgresql://"
	// for PostgreSQL, anything else is a SQLite path or "file:" URI. Empty
	// means syncd.db under Files.DataDir.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds the storage-governor filesystem settings.
type Files struct {
	// DataDir is the root of the cache/, tmp/, data/ and archive/ directories.
	// Env: STORAGE_FILES_DATA_DIR
	DataDir string `env:"DATA_DIR" validate:"required"`

	// QuotaMB is the local storage quota in megabytes.
	// Env: STORAGE_FILES_QUOTA_MB
	QuotaMB float64 `env:"QUOTA_MB" validate:"gt=0"`
}

// Server holds the status API settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required"`

	// RequestTimeout bounds a single API request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gt=0"`
}

// Adapter holds settings of the outbound transport.
type Adapter struct {
	// HTTPAddress is the base URL of the sync server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required,url"`

	// ProbeURL is fetched to measure latency and bandwidth. Defaults to the
	// sync server's health endpoint.
	// Env: ADAPTER_PROBE_URL
	ProbeURL string `env:"PROBE_URL" validate:"omitempty,url"`

	// RequestTimeout bounds a single push.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gt=0"`

	// ProbeTimeout bounds a single probe; a timed out probe reads as offline.
	// Env: ADAPTER_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT" validate:"gt=0"`

	// SaveData reports a metered connection in every network sample.
	// Env: ADAPTER_SAVE_DATA
	SaveData bool `env:"SAVE_DATA"`
}

// Workers holds settings of the background jobs owned by the host.
type Workers struct {
	// BatchSize is the number of items pushed per sync pass.
	// Env: WORKERS_BATCH_SIZE
	BatchSize int `env:"BATCH_SIZE" validate:"gt=0"`

	// PersistInterval is how often runtime state is saved.
	// Env: WORKERS_PERSIST_INTERVAL
	PersistInterval time.Duration `env:"PERSIST_INTERVAL" validate:"gt=0"`
}

// Priority holds priority scheduler settings.
type Priority struct {
	UpdateInterval     time.Duration `env:"UPDATE_INTERVAL" validate:"gt=0"`
	MaxCalculationTime time.Duration `env:"MAX_CALCULATION_TIME" validate:"gt=0"`
	RecencyWeight      float64       `env:"RECENCY_WEIGHT" validate:"gte=0,lte=1"`
	UserFacingWeight   float64       `env:"USER_FACING_WEIGHT" validate:"gte=0,lte=1"`
	CriticalWeight     float64       `env:"CRITICAL_WEIGHT" validate:"gte=0,lte=1"`
	RecencyHorizon     time.Duration `env:"RECENCY_HORIZON" validate:"gt=0"`
}

// Interval holds adaptive interval controller settings. Bandwidth thresholds
// are in Mbps.
type Interval struct {
	BaseSyncInterval     time.Duration `env:"BASE" validate:"gt=0,gtefield=MinSyncInterval,ltefield=MaxSyncInterval"`
	MinSyncInterval      time.Duration `env:"MIN" validate:"gt=0"`
	MaxSyncInterval      time.Duration `env:"MAX" validate:"gt=0"`
	NetworkCheckInterval time.Duration `env:"NETWORK_CHECK" validate:"gt=0"`
	SlowNetworkThreshold float64       `env:"SLOW_THRESHOLD" validate:"gt=0,ltfield=FastNetworkThreshold"`
	FastNetworkThreshold float64       `env:"FAST_THRESHOLD" validate:"gt=0"`
	HighLatencyThreshold time.Duration `env:"HIGH_LATENCY" validate:"gt=0"`
	TrendThreshold       float64       `env:"TREND_THRESHOLD" validate:"gt=0,lt=1"`
}

// Governor holds storage governor settings. Thresholds are percentages.
type Governor struct {
	WarningThreshold  float64       `env:"WARNING_THRESHOLD" validate:"gt=0,ltfield=CriticalThreshold"`
	CriticalThreshold float64       `env:"CRITICAL_THRESHOLD" validate:"gt=0,lte=100"`
	ArchiveThreshold  float64       `env:"ARCHIVE_THRESHOLD" validate:"gt=0,lte=100"`
	MonitorInterval   time.Duration `env:"MONITOR_INTERVAL" validate:"gt=0"`
	CleanupInterval   time.Duration `env:"CLEANUP_INTERVAL" validate:"gt=0"`
	ArchiveInterval   time.Duration `env:"ARCHIVE_INTERVAL" validate:"gt=0"`
	ArchiveMaxAge     time.Duration `env:"ARCHIVE_MAX_AGE" validate:"gt=0"`
	CompressMinSize   int64         `env:"COMPRESS_MIN_SIZE" validate:"gt=0"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (an earlier source wins for every field it sets):
//  1. Environment variables, including those preloaded from a .env file
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
