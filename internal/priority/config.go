package priority

import "time"

// Config controls scoring and the periodic recompute.
type Config struct {
	// UpdateInterval is how often all scores are recomputed.
	UpdateInterval time.Duration
	// MaxCalculationTime is the soft budget of a full recompute; slower
	// passes are logged and still completed.
	MaxCalculationTime time.Duration

	RecencyWeight    float64
	UserFacingWeight float64
	CriticalWeight   float64
	// RecencyHorizon is the age at which the recency score reaches 0.
	RecencyHorizon time.Duration
}

// DefaultConfig returns the stock weights 0.4/0.3/0.3, a 24h recency horizon,
// a 30s update interval and a 50ms calculation budget.
func DefaultConfig() Config {
	return Config{
		UpdateInterval:     30 * time.Second,
		MaxCalculationTime: 50 * time.Millisecond,
		RecencyWeight:      0.4,
		UserFacingWeight:   0.3,
		CriticalWeight:     0.3,
		RecencyHorizon:     24 * time.Hour,
	}
}
