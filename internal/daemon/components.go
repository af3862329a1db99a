package daemon

import (
	"github.com/MKhiriev/go-sync-governor/internal/config"
	"github.com/MKhiriev/go-sync-governor/internal/governor"
	"github.com/MKhiriev/go-sync-governor/internal/interval"
	"github.com/MKhiriev/go-sync-governor/internal/priority"
)

// priorityConfig converts the merged settings into a scheduler config.
func priorityConfig(cfg config.Priority) priority.Config {
	return priority.Config{
		UpdateInterval:     cfg.UpdateInterval,
		MaxCalculationTime: cfg.MaxCalculationTime,
		RecencyWeight:      cfg.RecencyWeight,
		UserFacingWeight:   cfg.UserFacingWeight,
		CriticalWeight:     cfg.CriticalWeight,
		RecencyHorizon:     cfg.RecencyHorizon,
	}
}

// intervalConfig converts the merged settings into a controller config.
func intervalConfig(cfg config.Interval) interval.Config {
	c := interval.DefaultConfig()
	c.BaseSyncInterval = cfg.BaseSyncInterval
	c.MinSyncInterval = cfg.MinSyncInterval
	c.MaxSyncInterval = cfg.MaxSyncInterval
	c.NetworkCheckInterval = cfg.NetworkCheckInterval
	c.SlowNetworkThreshold = cfg.SlowNetworkThreshold
	c.FastNetworkThreshold = cfg.FastNetworkThreshold
	c.HighLatencyThreshold = cfg.HighLatencyThreshold
	c.TrendThreshold = cfg.TrendThreshold
	return c
}

// governorConfig converts the merged settings into a governor config.
func governorConfig(cfg config.Governor) governor.Config {
	c := governor.DefaultConfig()
	c.WarningThreshold = cfg.WarningThreshold
	c.CriticalThreshold = cfg.CriticalThreshold
	c.ArchiveThreshold = cfg.ArchiveThreshold
	c.MonitorInterval = cfg.MonitorInterval
	c.CleanupInterval = cfg.CleanupInterval
	c.ArchiveInterval = cfg.ArchiveInterval
	c.ArchiveMaxAge = cfg.ArchiveMaxAge
	c.CompressMinSize = cfg.CompressMinSize
	return c
}
