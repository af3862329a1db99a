package models

import "time"

// EffectiveType is the coarse connection class reported by the platform.
type EffectiveType string

const (
	EffectiveTypeSlow2G EffectiveType = "slow-2g"
	EffectiveType2G     EffectiveType = "2g"
	EffectiveType3G     EffectiveType = "3g"
	EffectiveType4G     EffectiveType = "4g"
)

// NetworkCondition is an immutable snapshot of the connection quality.
type NetworkCondition struct {
	IsOnline      bool          `json:"is_online"`
	EffectiveType EffectiveType `json:"effective_type"`
	// Downlink is the estimated bandwidth in Mbps.
	Downlink float64 `json:"downlink"`
	// RTT is the estimated round-trip time.
	RTT       time.Duration `json:"rtt"`
	SaveData  bool          `json:"save_data"`
	Timestamp time.Time     `json:"timestamp"`
}

// DefaultNetworkCondition is assumed until the first successful sample.
func DefaultNetworkCondition(now time.Time) NetworkCondition {
	return NetworkCondition{
		IsOnline:      true,
		EffectiveType: EffectiveType4G,
		Downlink:      10,
		RTT:           100 * time.Millisecond,
		Timestamp:     now,
	}
}

// ClassifyEffectiveType maps a measured bandwidth and latency to the same
// buckets browsers use for navigator.connection.effectiveType.
func ClassifyEffectiveType(downlink float64, rtt time.Duration) EffectiveType {
	switch {
	case rtt >= 2000*time.Millisecond || downlink < 0.05:
		return EffectiveTypeSlow2G
	case rtt >= 1400*time.Millisecond || downlink < 0.07:
		return EffectiveType2G
	case rtt >= 270*time.Millisecond || downlink < 0.7:
		return EffectiveType3G
	default:
		return EffectiveType4G
	}
}

// SyncIntervalConfig records a change of the sync interval.
type SyncIntervalConfig struct {
	Interval         time.Duration    `json:"interval"`
	Reason           string           `json:"reason"`
	NetworkCondition NetworkCondition `json:"network_condition"`
	Timestamp        time.Time        `json:"timestamp"`
}
