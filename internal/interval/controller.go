// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package interval

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-sync-governor/internal/history"
	"github.com/MKhiriev/go-sync-governor/internal/logger"
	"github.com/MKhiriev/go-sync-governor/internal/notify"
	"github.com/MKhiriev/go-sync-governor/internal/workers"
	"github.com/MKhiriev/go-sync-governor/models"
)

//go:generate mockgen -source=controller.go -destination=../mock/network_reader_mock.go -package=mock

// NetworkReader reads the platform's connection information. A returned
// error means the reading is unavailable, not that the device is offline.
type NetworkReader interface {
	Read(ctx context.Context) (models.NetworkCondition, error)
}

// Controller derives the sync interval from sampled network conditions.
// It is safe for concurrent use.
type Controller struct {
	cfg    Config
	reader NetworkReader
	logger *logger.Logger
	now    func() time.Time

	mu         sync.Mutex
	current    time.Duration
	conditions *history.Ring[models.NetworkCondition]
	intervals  *history.Ring[models.SyncIntervalConfig]

	isAdapting atomic.Bool
	changes    notify.Registry[models.SyncIntervalConfig]
	worker     *workers.Periodic
}

// NewController creates a controller starting at the base interval. The
// periodic sampler is idle until Start is called.
func NewController(cfg Config, reader NetworkReader, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("interval")

	c := &Controller{
		cfg:        cfg,
		reader:     reader,
		logger:     log,
		now:        time.Now,
		conditions: history.New[models.NetworkCondition](cfg.HistorySize),
		intervals:  history.New[models.SyncIntervalConfig](cfg.HistorySize),
	}
	c.current = bound(cfg, cfg.BaseSyncInterval)

	c.changes.OnPanic = func(err error) {
		log.Error().Err(err).Msg("sync interval listener failed")
	}
	c.worker = workers.NewPeriodic("network-check", cfg.NetworkCheckInterval, func(ctx context.Context) error {
		c.ForceAdaptation(ctx)
		return nil
	}, log)

	return c
}

// Start implements workers.Worker by launching the periodic sampler.
func (c *Controller) Start(ctx context.Context) {
	c.worker.Start(ctx)
}

// Stop implements workers.Worker.
func (c *Controller) Stop() {
	c.worker.Stop()
}

// UpdateNetworkCondition samples the reader and appends the result to the
// history. It returns false when the reading is unavailable.
func (c *Controller) UpdateNetworkCondition(ctx context.Context) (models.NetworkCondition, bool) {
	if c.reader == nil {
		return models.NetworkCondition{}, false
	}

	cond, err := c.reader.Read(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("network condition unavailable")
		return models.NetworkCondition{}, false
	}
	if cond.Timestamp.IsZero() {
		cond.Timestamp = c.now()
	}

	c.mu.Lock()
	c.conditions.Push(cond)
	c.mu.Unlock()

	c.logger.Debug().
		Bool("online", cond.IsOnline).
		Str("effective_type", string(cond.EffectiveType)).
		Float64("downlink", cond.Downlink).
		Dur("rtt", cond.RTT).
		Msg("network condition sampled")

	return cond, true
}

// AdaptSyncInterval re-derives the interval from the latest sample and the
// one before it. The bool is true only when the interval changed; a call
// that overlaps a running adaptation is skipped and returns false.
func (c *Controller) AdaptSyncInterval() (models.SyncIntervalConfig, bool) {
	if !c.isAdapting.CompareAndSwap(false, true) {
		return models.SyncIntervalConfig{}, false
	}
	defer c.isAdapting.Store(false)

	c.mu.Lock()
	cur, ok := c.conditions.Last()
	if !ok {
		cur = models.DefaultNetworkCondition(c.now())
	}
	var prev *models.NetworkCondition
	if p, ok := c.conditions.Previous(); ok {
		prev = &p
	}

	next, reason := nextInterval(c.cfg, c.current, cur, prev)
	next = bound(c.cfg, next)
	if reason == "" || next == c.current {
		c.mu.Unlock()
		return models.SyncIntervalConfig{}, false
	}

	old := c.current
	c.current = next
	change := models.SyncIntervalConfig{
		Interval:         next,
		Reason:           reason,
		NetworkCondition: cur,
		Timestamp:        c.now(),
	}
	c.intervals.Push(change)
	c.mu.Unlock()

	c.logger.Info().
		Dur("from", old).
		Dur("to", next).
		Str("reason", reason).
		Msg("sync interval adapted")
	c.changes.Notify(change)

	return change, true
}

// ForceAdaptation samples the network and adapts in one call. A failed
// sample leaves the interval unchanged.
func (c *Controller) ForceAdaptation(ctx context.Context) (models.SyncIntervalConfig, bool) {
	if _, ok := c.UpdateNetworkCondition(ctx); !ok {
		return models.SyncIntervalConfig{}, false
	}
	return c.AdaptSyncInterval()
}

// OnSyncIntervalChange registers cb for interval changes.
func (c *Controller) OnSyncIntervalChange(cb func(models.SyncIntervalConfig)) notify.Subscription {
	return c.changes.Subscribe(cb)
}

// OffSyncIntervalChange cancels a subscription made with OnSyncIntervalChange.
func (c *Controller) OffSyncIntervalChange(sub notify.Subscription) {
	c.changes.Unsubscribe(sub)
}

// GetCurrentSyncInterval returns the interval in effect.
func (c *Controller) GetCurrentSyncInterval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// GetCurrentNetworkCondition returns the latest sample, or the default
// online 4g condition before the first successful sample.
func (c *Controller) GetCurrentNetworkCondition() models.NetworkCondition {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cond, ok := c.conditions.Last(); ok {
		return cond
	}
	return models.DefaultNetworkCondition(c.now())
}

// GetSyncIntervalHistory returns the recorded interval changes, oldest first.
func (c *Controller) GetSyncIntervalHistory() []models.SyncIntervalConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.intervals.Items()
}

// GetNetworkHistory returns the sampled conditions, oldest first.
func (c *Controller) GetNetworkHistory() []models.NetworkCondition {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conditions.Items()
}

// Restore reloads persisted state. The interval is clamped to the configured
// range; a zero interval keeps the current one. Subscribers are notified when
// the restored interval differs from the current one.
func (c *Controller) Restore(current time.Duration, conditions []models.NetworkCondition, intervals []models.SyncIntervalConfig) {
	c.mu.Lock()
	c.conditions.Replace(conditions)
	c.intervals.Replace(intervals)

	if current <= 0 {
		c.mu.Unlock()
		return
	}
	restored := bound(c.cfg, current)
	changed := restored != c.current
	c.current = restored
	cond, ok := c.conditions.Last()
	if !ok {
		cond = models.DefaultNetworkCondition(c.now())
	}
	c.mu.Unlock()

	if changed {
		c.changes.Notify(models.SyncIntervalConfig{
			Interval:         restored,
			Reason:           ReasonRestored,
			NetworkCondition: cond,
			Timestamp:        c.now(),
		})
	}
}
