package config

import (
	"path/filepath"
	"time"
)

// defaultDBFile is the outbox database created under Files.DataDir when no
// DSN is configured.
const defaultDBFile = "syncd.db"

// Defaults returns the configuration used for every field no other source
// sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Logger: Logger{Level: "info"},
		Storage: Storage{
			Files: Files{DataDir: "data", QuotaMB: 500},
		},
		Server: Server{
			HTTPAddress:    "localhost:8090",
			RequestTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 30 * time.Second,
			ProbeTimeout:   5 * time.Second,
		},
		Workers: Workers{
			BatchSize:       20,
			PersistInterval: time.Minute,
		},
		Priority: Priority{
			UpdateInterval:     30 * time.Second,
			MaxCalculationTime: 50 * time.Millisecond,
			RecencyWeight:      0.4,
			UserFacingWeight:   0.3,
			CriticalWeight:     0.3,
			RecencyHorizon:     24 * time.Hour,
		},
		Interval: Interval{
			BaseSyncInterval:     300 * time.Second,
			MinSyncInterval:      60 * time.Second,
			MaxSyncInterval:      600 * time.Second,
			NetworkCheckInterval: 30 * time.Second,
			SlowNetworkThreshold: 1,
			FastNetworkThreshold: 10,
			HighLatencyThreshold: time.Second,
			TrendThreshold:       0.2,
		},
		Governor: Governor{
			WarningThreshold:  70,
			CriticalThreshold: 90,
			ArchiveThreshold:  80,
			MonitorInterval:   30 * time.Second,
			CleanupInterval:   5 * time.Minute,
			ArchiveInterval:   5 * time.Minute,
			ArchiveMaxAge:     7 * 24 * time.Hour,
			CompressMinSize:   64 << 10,
		},
	}
}

// Database returns the outbox database settings. Without an explicit DSN the
// database is a SQLite file at the root of the governed data directory, so
// the queue counts against the storage quota.
func (s Storage) Database() DB {
	if s.DB.DSN != "" {
		return s.DB
	}
	return DB{DSN: filepath.Join(s.Files.DataDir, defaultDBFile)}
}
