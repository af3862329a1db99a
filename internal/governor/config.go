package governor

import (
	"time"

	"github.com/MKhiriev/go-sync-governor/internal/history"
)

// Config holds the thresholds and timers of a [Governor]. Thresholds are
// percentages of the quota.
type Config struct {
	WarningThreshold  float64
	CriticalThreshold float64
	ArchiveThreshold  float64

	MonitorInterval time.Duration
	CleanupInterval time.Duration
	ArchiveInterval time.Duration

	// ArchiveMaxAge is the age after which data files are archived.
	ArchiveMaxAge time.Duration
	// CompressMinSize is the size in bytes above which data files are gzipped.
	CompressMinSize int64

	HistorySize int
}

// DefaultConfig returns 70/90/80 percent thresholds, a 30s monitor and 5m
// cleanup and archive timers.
func DefaultConfig() Config {
	return Config{
		WarningThreshold:  70,
		CriticalThreshold: 90,
		ArchiveThreshold:  80,
		MonitorInterval:   30 * time.Second,
		CleanupInterval:   5 * time.Minute,
		ArchiveInterval:   5 * time.Minute,
		ArchiveMaxAge:     7 * 24 * time.Hour,
		CompressMinSize:   64 << 10,
		HistorySize:       history.DefaultCapacity,
	}
}
