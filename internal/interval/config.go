package interval

import (
	"time"

	"github.com/MKhiriev/go-sync-governor/internal/history"
)

// Config bounds the interval and sets the thresholds of the adjustment rules.
type Config struct {
	BaseSyncInterval time.Duration
	MinSyncInterval  time.Duration
	MaxSyncInterval  time.Duration

	// NetworkCheckInterval is how often the network is sampled.
	NetworkCheckInterval time.Duration

	// SlowNetworkThreshold and FastNetworkThreshold are in Mbps.
	SlowNetworkThreshold float64
	FastNetworkThreshold float64
	HighLatencyThreshold time.Duration

	// TrendThreshold is the relative change between two consecutive samples
	// that counts as an improvement or a regression.
	TrendThreshold float64

	HistorySize int
}

// DefaultConfig returns a 300s base interval bounded to 60s..600s, 1/10 Mbps
// bandwidth thresholds, a 1s latency threshold and a 20% trend threshold.
func DefaultConfig() Config {
	return Config{
		BaseSyncInterval:     300 * time.Second,
		MinSyncInterval:      60 * time.Second,
		MaxSyncInterval:      600 * time.Second,
		NetworkCheckInterval: 30 * time.Second,
		SlowNetworkThreshold: 1,
		FastNetworkThreshold: 10,
		HighLatencyThreshold: time.Second,
		TrendThreshold:       0.2,
		HistorySize:          history.DefaultCapacity,
	}
}
