// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package governor

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-sync-governor/internal/history"
	"github.com/MKhiriev/go-sync-governor/internal/logger"
	"github.com/MKhiriev/go-sync-governor/internal/workers"
	"github.com/MKhiriev/go-sync-governor/models"
)

// Governor monitors storage usage and reclaims space. It is safe for
// concurrent use.
type Governor struct {
	cfg       Config
	estimator QuotaEstimator
	keeper    Housekeeper
	logger    *logger.Logger
	now       func() time.Time

	mu         sync.Mutex
	lastUsed   float64
	lastQuota  float64
	band       models.StorageBand
	strategies []CleanupStrategy

	lastCleanup  *time.Time
	cleanupCount int
	lastArchive  *time.Time
	archiveCount int
	cleanups     *history.Ring[models.CleanupReport]
	archives     *history.Ring[models.ArchiveReport]

	isCleaning  atomic.Bool
	isArchiving atomic.Bool
	workers     *workers.Workers
}

// NewGovernor creates a governor. When keeper is not nil the default
// strategies are registered on top of it. Timers are idle until Start.
func NewGovernor(cfg Config, estimator QuotaEstimator, keeper Housekeeper, log *logger.Logger) *Governor {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("governor")

	g := &Governor{
		cfg:       cfg,
		estimator: estimator,
		keeper:    keeper,
		logger:    log,
		now:       time.Now,
		band:      models.StorageHealthy,
		cleanups:  history.New[models.CleanupReport](cfg.HistorySize),
		archives:  history.New[models.ArchiveReport](cfg.HistorySize),
	}
	if keeper != nil {
		g.strategies = g.defaultStrategies(keeper)
	}

	g.workers = workers.New(
		workers.NewPeriodic("storage-monitor", cfg.MonitorInterval, g.monitor, log),
		workers.NewPeriodic("storage-cleanup", cfg.CleanupInterval, func(ctx context.Context) error {
			g.performCleanup(ctx)
			return nil
		}, log),
		workers.NewPeriodic("storage-archive", cfg.ArchiveInterval, g.checkArchive, log),
	)

	return g
}

// Start implements workers.Worker by launching the monitor, cleanup and
// archive timers.
func (g *Governor) Start(ctx context.Context) {
	g.workers.Start(ctx)
}

// Stop implements workers.Worker. In-flight passes are allowed to finish.
func (g *Governor) Stop() {
	g.workers.Stop()
}

// GetQuota estimates the current usage. When the estimate is unavailable the
// last known usage and quota are reused.
func (g *Governor) GetQuota(ctx context.Context) models.StorageQuota {
	var (
		used, quota float64
		err         error
	)
	if g.estimator != nil {
		used, quota, err = g.estimator.Estimate(ctx)
	} else {
		err = ErrNoEstimator
	}

	g.mu.Lock()
	if err != nil {
		used, quota = g.lastUsed, g.lastQuota
	} else {
		g.lastUsed, g.lastQuota = used, quota
	}
	g.mu.Unlock()

	if err != nil {
		g.logger.Warn().Err(err).Msg("storage estimate unavailable, using last known values")
	}
	return ComputeQuota(g.cfg, used, quota)
}

// GetStorageStats returns the quota together with the cleanup and archive
// bookkeeping.
func (g *Governor) GetStorageStats(ctx context.Context) models.StorageStats {
	q := g.GetQuota(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()
	return models.StorageStats{
		Quota:        q,
		LastCleanup:  copyTime(g.lastCleanup),
		CleanupCount: g.cleanupCount,
		LastArchive:  copyTime(g.lastArchive),
		ArchiveCount: g.archiveCount,
	}
}

// RestoreStats reloads persisted bookkeeping.
func (g *Governor) RestoreStats(stats models.StorageStats) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.lastCleanup = copyTime(stats.LastCleanup)
	g.cleanupCount = stats.CleanupCount
	g.lastArchive = copyTime(stats.LastArchive)
	g.archiveCount = stats.ArchiveCount
	g.lastUsed = stats.Quota.Used
	g.lastQuota = stats.Quota.Quota
}

// Band returns the pressure level seen by the latest quota sample.
func (g *Governor) Band() models.StorageBand {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.band
}

// GetCleanupHistory returns the recorded cleanup passes, oldest first.
func (g *Governor) GetCleanupHistory() []models.CleanupReport {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cleanups.Items()
}

// GetArchiveHistory returns the recorded archival passes, oldest first.
func (g *Governor) GetArchiveHistory() []models.ArchiveReport {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.archives.Items()
}

// CanStore reports whether data, measured as its JSON encoding, fits in the
// available space. Data that cannot be encoded is rejected.
func (g *Governor) CanStore(ctx context.Context, data any) bool {
	raw, err := json.Marshal(data)
	if err != nil {
		g.logger.Warn().Err(err).Msg("cannot estimate size of candidate write")
		return false
	}
	size := float64(len(raw)) / bytesPerMB
	return size <= g.GetQuota(ctx).Available
}

// AddCleanupStrategy registers s, replacing a strategy with the same name.
func (g *Governor) AddCleanupStrategy(s CleanupStrategy) error {
	if err := s.validate(); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.strategies {
		if g.strategies[i].Name == s.Name {
			g.strategies[i] = s
			return nil
		}
	}
	g.strategies = append(g.strategies, s)
	return nil
}

// RemoveCleanupStrategy unregisters the named strategy. It reports whether
// one was removed.
func (g *Governor) RemoveCleanupStrategy(name string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.strategies {
		if g.strategies[i].Name == name {
			g.strategies = append(g.strategies[:i], g.strategies[i+1:]...)
			return true
		}
	}
	return false
}

// GetCleanupStrategies returns the registered strategies in execution order.
func (g *Governor) GetCleanupStrategies() []CleanupStrategy {
	g.mu.Lock()
	out := make([]CleanupStrategy, len(g.strategies))
	copy(out, g.strategies)
	g.mu.Unlock()

	sortStrategies(out)
	return out
}

// ForceCleanup runs a cleanup pass now. It returns false when a pass is
// already running.
func (g *Governor) ForceCleanup(ctx context.Context) (models.CleanupReport, bool) {
	return g.performCleanup(ctx)
}

// ForceArchive runs an archival pass regardless of usage.
func (g *Governor) ForceArchive(ctx context.Context) (models.ArchiveReport, error) {
	return g.archive(ctx)
}

// sample refreshes the quota and the band derived from it.
func (g *Governor) sample(ctx context.Context) models.StorageQuota {
	q := g.GetQuota(ctx)
	band := q.Band()

	g.mu.Lock()
	prev := g.band
	g.band = band
	g.mu.Unlock()

	if band != prev {
		g.logger.Info().
			Str("from", string(prev)).
			Str("to", string(band)).
			Float64("percentage", q.Percentage).
			Msg("storage band changed")
	}
	return q
}

func (g *Governor) monitor(ctx context.Context) error {
	if g.sample(ctx).Band() != models.StorageHealthy {
		g.performCleanup(ctx)
	}
	return nil
}

func (g *Governor) performCleanup(ctx context.Context) (models.CleanupReport, bool) {
	if !g.isCleaning.CompareAndSwap(false, true) {
		g.logger.Debug().Msg("cleanup already running, pass skipped")
		return models.CleanupReport{}, false
	}
	defer g.isCleaning.Store(false)

	report := models.CleanupReport{StartedAt: g.now()}
	report.Before = g.sample(ctx)

	for _, s := range g.GetCleanupStrategies() {
		ran, err := g.runStrategy(ctx, s)
		switch {
		case err != nil:
			report.Failed = append(report.Failed, s.Name)
			g.logger.Error().Err(err).Str("strategy", s.Name).Msg("cleanup strategy failed")
		case ran:
			report.Executed = append(report.Executed, s.Name)
		default:
			report.Skipped = append(report.Skipped, s.Name)
		}
	}

	report.After = g.sample(ctx)
	end := g.now()
	report.Duration = end.Sub(report.StartedAt)

	g.mu.Lock()
	g.lastCleanup = &end
	g.cleanupCount++
	g.cleanups.Push(report)
	g.mu.Unlock()

	g.logger.Info().
		Strs("executed", report.Executed).
		Strs("failed", report.Failed).
		Float64("before", report.Before.Percentage).
		Float64("after", report.After.Percentage).
		Dur("took", report.Duration).
		Msg("cleanup pass finished")

	return report, true
}

// runStrategy evaluates and executes one strategy, converting a panic in
// either step into an error.
func (g *Governor) runStrategy(ctx context.Context, s CleanupStrategy) (ran bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()

	if s.Condition != nil && !s.Condition() {
		return false, nil
	}
	return true, s.Execute(ctx)
}

func (g *Governor) checkArchive(ctx context.Context) error {
	q := g.GetQuota(ctx)
	if q.Percentage <= g.cfg.ArchiveThreshold {
		return nil
	}
	_, err := g.archive(ctx)
	return err
}

func (g *Governor) archive(ctx context.Context) (models.ArchiveReport, error) {
	if g.keeper == nil {
		return models.ArchiveReport{}, ErrNoHousekeeper
	}
	if !g.isArchiving.CompareAndSwap(false, true) {
		return models.ArchiveReport{}, ErrArchiveInProgress
	}
	defer g.isArchiving.Store(false)

	report, err := g.keeper.ArchiveOldData(ctx)
	if err != nil {
		return report, fmt.Errorf("archive old data: %w", err)
	}
	if report.At.IsZero() {
		report.At = g.now()
	}

	g.mu.Lock()
	at := report.At
	g.lastArchive = &at
	g.archiveCount++
	g.archives.Push(report)
	g.mu.Unlock()

	return report, nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
