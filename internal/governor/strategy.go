package governor

import (
	"context"
	"sort"

	"github.com/MKhiriev/go-sync-governor/models"
)

// Names of the default strategies.
const (
	StrategyClearCache      = "Clear Cache"
	StrategyArchiveOldData  = "Archive Old Data"
	StrategyCompressData    = "Compress Data"
	StrategyDeleteTempFiles = "Delete Temporary Files"
)

// CleanupStrategy is a conditional remediation step. A nil Condition always
// holds.
type CleanupStrategy struct {
	Name      string
	Priority  int
	Condition func() bool
	Execute   func(ctx context.Context) error
}

func (s CleanupStrategy) validate() error {
	if s.Name == "" || s.Execute == nil {
		return ErrInvalidStrategy
	}
	return nil
}

// sortStrategies orders by descending priority; equal priorities keep
// registration order.
func sortStrategies(s []CleanupStrategy) {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Priority > s[j].Priority
	})
}

// defaultStrategies builds the stock strategy set on top of keeper. The
// conditions read the band observed by the latest quota sample.
func (g *Governor) defaultStrategies(keeper Housekeeper) []CleanupStrategy {
	warning := func() bool { return g.Band() != models.StorageHealthy }
	critical := func() bool { return g.Band() == models.StorageCritical }

	return []CleanupStrategy{
		{
			Name:      StrategyClearCache,
			Priority:  4,
			Condition: warning,
			Execute:   keeper.ClearCache,
		},
		{
			Name:      StrategyArchiveOldData,
			Priority:  3,
			Condition: warning,
			Execute: func(ctx context.Context) error {
				_, err := g.archive(ctx)
				return err
			},
		},
		{
			Name:      StrategyCompressData,
			Priority:  2,
			Condition: critical,
			Execute:   keeper.CompressData,
		},
		{
			Name:      StrategyDeleteTempFiles,
			Priority:  1,
			Condition: critical,
			Execute:   keeper.DeleteTempFiles,
		},
	}
}
