package priority

import (
	"math"
	"time"

	"github.com/MKhiriev/go-sync-governor/models"
)

// Default rule names.
const (
	RuleRecency    = "recency"
	RuleUserFacing = "user-facing"
	RuleCritical   = "critical"
)

// Rule contributes a normalized 0..1 score to an item's priority.
type Rule struct {
	// Name is unique within a scheduler.
	Name string
	// Weight is the rule's share of the final score. Weights of the active
	// rule set are renormalized to sum to 1.
	Weight float64
	// Apply scores item at the given instant. Results outside 0..1 are
	// clamped.
	Apply func(item models.SyncItem, now time.Time) float64
}

// RecencyRule decays linearly from 1 for a fresh item to 0 at horizon.
func RecencyRule(weight float64, horizon time.Duration) Rule {
	if horizon <= 0 {
		horizon = 24 * time.Hour
	}

	return Rule{
		Name:   RuleRecency,
		Weight: weight,
		Apply: func(item models.SyncItem, now time.Time) float64 {
			age := now.Sub(item.Timestamp)
			if age < 0 {
				age = 0
			}
			return math.Max(0, 1-float64(age)/float64(horizon))
		},
	}
}

// UserFacingRule scores 1 for items the user is waiting on.
func UserFacingRule(weight float64) Rule {
	return Rule{
		Name:   RuleUserFacing,
		Weight: weight,
		Apply: func(item models.SyncItem, _ time.Time) float64 {
			return boolScore(item.IsUserFacing)
		},
	}
}

// CriticalRule scores 1 for critical items.
func CriticalRule(weight float64) Rule {
	return Rule{
		Name:   RuleCritical,
		Weight: weight,
		Apply: func(item models.SyncItem, _ time.Time) float64 {
			return boolScore(item.IsCritical)
		},
	}
}

// DefaultRules returns the recency, user-facing and critical rules with the
// weights from cfg.
func DefaultRules(cfg Config) []Rule {
	return []Rule{
		RecencyRule(cfg.RecencyWeight, cfg.RecencyHorizon),
		UserFacingRule(cfg.UserFacingWeight),
		CriticalRule(cfg.CriticalWeight),
	}
}

func boolScore(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// normalize rescales weights in place so they sum to 1. Negative and NaN
// weights count as zero; if nothing is left the weights become equal.
func normalize(rules []Rule) {
	if len(rules) == 0 {
		return
	}

	var sum float64
	for i := range rules {
		w := rules[i].Weight
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			w = 0
		}
		rules[i].Weight = w
		sum += w
	}

	if sum == 0 {
		equal := 1 / float64(len(rules))
		for i := range rules {
			rules[i].Weight = equal
		}
		return
	}

	for i := range rules {
		rules[i].Weight /= sum
	}
}

// score computes round(100 * Σ weight * apply(item)) bounded to 0..100.
func score(rules []Rule, item models.SyncItem, now time.Time) int {
	var total float64
	for _, r := range rules {
		total += r.Weight * clamp01(r.Apply(item, now))
	}

	p := int(math.Round(total * models.PriorityMax))
	switch {
	case p < 0:
		return 0
	case p > models.PriorityMax:
		return models.PriorityMax
	default:
		return p
	}
}
