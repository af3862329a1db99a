package interval

import (
	"time"

	"github.com/MKhiriev/go-sync-governor/models"
)

// Reasons attached to interval changes.
const (
	ReasonOffline   = "offline"
	ReasonSaveData  = "save-data mode"
	ReasonSlow      = "slow network"
	ReasonHighRTT   = "high latency"
	ReasonFast      = "fast network"
	ReasonImproving = "network improving"
	ReasonDegrading = "network degrading"
	ReasonRestored  = "restored"
)

const (
	slowFactor      = 1.5
	highRTTFactor   = 1.2
	fastFactor      = 0.8
	improvingFactor = 0.9
	degradingFactor = 1.1
)

// nextInterval applies the adjustment rules in order; the first match wins.
// An empty reason means no rule matched and the interval stays as is.
// prev is only consulted for the trend rule and only when it was online.
func nextInterval(cfg Config, current time.Duration, cur models.NetworkCondition, prev *models.NetworkCondition) (time.Duration, string) {
	switch {
	case !cur.IsOnline:
		return cfg.MaxSyncInterval, ReasonOffline
	case cur.SaveData:
		return cfg.MaxSyncInterval, ReasonSaveData
	case cur.Downlink < cfg.SlowNetworkThreshold:
		return min(scale(current, slowFactor), cfg.MaxSyncInterval), ReasonSlow
	case cur.RTT > cfg.HighLatencyThreshold:
		return min(scale(current, highRTTFactor), cfg.MaxSyncInterval), ReasonHighRTT
	case cur.Downlink > cfg.FastNetworkThreshold && cur.RTT < cfg.HighLatencyThreshold/2:
		return max(scale(current, fastFactor), cfg.MinSyncInterval), ReasonFast
	}

	if prev == nil || !prev.IsOnline {
		return current, ""
	}

	up := 1 + cfg.TrendThreshold
	down := 1 - cfg.TrendThreshold

	improved := cur.Downlink > prev.Downlink*up &&
		float64(cur.RTT) < float64(prev.RTT)*down
	if improved {
		return scale(current, improvingFactor), ReasonImproving
	}

	regressed := cur.Downlink < prev.Downlink*down ||
		float64(cur.RTT) > float64(prev.RTT)*up
	if regressed {
		return scale(current, degradingFactor), ReasonDegrading
	}

	return current, ""
}

// bound rounds d to the nearest second and clamps it to [min, max].
func bound(cfg Config, d time.Duration) time.Duration {
	d = d.Round(time.Second)
	if d < cfg.MinSyncInterval {
		return cfg.MinSyncInterval
	}
	if d > cfg.MaxSyncInterval {
		return cfg.MaxSyncInterval
	}
	return d
}

func scale(d time.Duration, f float64) time.Duration {
	return time.Duration(float64(d) * f)
}
