// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package priority

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-sync-governor/internal/logger"
	"github.com/MKhiriev/go-sync-governor/internal/notify"
	"github.com/MKhiriev/go-sync-governor/internal/workers"
	"github.com/MKhiriev/go-sync-governor/models"
)

// Change is published when a recompute moves an item's score.
type Change struct {
	Item        models.SyncItem
	OldPriority int
}

// Scheduler holds the not-yet-synced items sorted by descending priority.
// It is safe for concurrent use.
type Scheduler struct {
	cfg    Config
	logger *logger.Logger
	now    func() time.Time

	mu    sync.Mutex
	queue []models.SyncItem
	rules []Rule

	isUpdating atomic.Bool
	changes    notify.Registry[Change]
	worker     *workers.Periodic
}

// NewScheduler creates a scheduler with the default rule set built from cfg.
// The periodic recompute is idle until Start is called.
func NewScheduler(cfg Config, log *logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("priority")

	s := &Scheduler{
		cfg:    cfg,
		logger: log,
		now:    time.Now,
		rules:  DefaultRules(cfg),
	}
	normalize(s.rules)

	s.changes.OnPanic = func(err error) {
		log.Error().Err(err).Msg("priority change listener failed")
	}
	s.worker = workers.NewPeriodic("priority-update", cfg.UpdateInterval, func(context.Context) error {
		s.UpdatePriorities()
		return nil
	}, log)

	return s
}

// Start implements workers.Worker by launching the periodic recompute.
func (s *Scheduler) Start(ctx context.Context) {
	s.worker.Start(ctx)
}

// Stop implements workers.Worker.
func (s *Scheduler) Stop() {
	s.worker.Stop()
}

// AddToQueue scores item with the current rules and inserts it.
func (s *Scheduler) AddToQueue(item models.NewSyncItem) models.SyncItem {
	return s.AddAllToQueue(item)[0]
}

// AddAllToQueue scores and inserts items with a single re-sort. The scored
// items are returned in argument order.
func (s *Scheduler) AddAllToQueue(items ...models.NewSyncItem) []models.SyncItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	added := make([]models.SyncItem, 0, len(items))
	for _, it := range items {
		scored := it.WithPriority(0)
		scored.Priority = score(s.rules, scored, now)
		added = append(added, scored)
	}

	s.queue = append(s.queue, added...)
	s.sortLocked()

	return added
}

// Score rates item with the current rules without queueing it.
func (s *Scheduler) Score(item models.NewSyncItem) models.SyncItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	scored := item.WithPriority(0)
	scored.Priority = score(s.rules, scored, s.now())
	return scored
}

// Insert queues items that already carry a priority, typically from Score.
func (s *Scheduler) Insert(items ...models.SyncItem) {
	if len(items) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.queue = append(s.queue, items...)
	s.sortLocked()
}

// RemoveFromQueue removes the first item with id. The bool is false when no
// such item is queued.
func (s *Scheduler) RemoveFromQueue(id string) (models.SyncItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, it := range s.queue {
		if it.ID == id {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return it, true
		}
	}

	return models.SyncItem{}, false
}

// MarkAsSynced removes every queued item whose id is in ids and returns them.
// Unknown ids are ignored.
func (s *Scheduler) MarkAsSynced(ids []string) []models.SyncItem {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := make([]models.SyncItem, 0)
	kept := s.queue[:0]
	for _, it := range s.queue {
		if _, ok := set[it.ID]; ok {
			removed = append(removed, it)
			continue
		}
		kept = append(kept, it)
	}
	// drop references held past the new length
	for i := len(kept); i < len(s.queue); i++ {
		s.queue[i] = models.SyncItem{}
	}
	s.queue = kept

	return removed
}

// GetNextItem returns the highest-priority item without removing it.
func (s *Scheduler) GetNextItem() (models.SyncItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return models.SyncItem{}, false
	}
	return s.queue[0], true
}

// GetNextBatch returns up to n items from the head of the queue.
func (s *Scheduler) GetNextBatch(n int) []models.SyncItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 {
		return []models.SyncItem{}
	}
	if n > len(s.queue) {
		n = len(s.queue)
	}

	batch := make([]models.SyncItem, n)
	copy(batch, s.queue[:n])
	return batch
}

// GetQueue returns a copy of the whole queue in priority order.
func (s *Scheduler) GetQueue() []models.SyncItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := make([]models.SyncItem, len(s.queue))
	copy(q, s.queue)
	return q
}

// Len returns the number of queued items.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// UpdatePriorities recomputes every score, publishes a [Change] for each
// item whose score moved and re-sorts the queue. It returns false when
// another recompute was already running and this call was skipped.
func (s *Scheduler) UpdatePriorities() bool {
	if !s.isUpdating.CompareAndSwap(false, true) {
		s.logger.Debug().Msg("priority update already in progress, skipping")
		return false
	}
	defer s.isUpdating.Store(false)

	start := time.Now()
	changes, size := s.recompute()
	elapsed := time.Since(start)

	if s.cfg.MaxCalculationTime > 0 && elapsed > s.cfg.MaxCalculationTime {
		s.logger.Warn().
			Dur("elapsed", elapsed).
			Dur("budget", s.cfg.MaxCalculationTime).
			Int("queue_size", size).
			Msg("priority calculation exceeded time budget")
	}

	s.publish(changes)
	return true
}

// OnPriorityChange registers cb for score changes.
func (s *Scheduler) OnPriorityChange(cb func(item models.SyncItem, oldPriority int)) notify.Subscription {
	if cb == nil {
		return notify.Subscription{}
	}
	return s.changes.Subscribe(func(c Change) { cb(c.Item, c.OldPriority) })
}

// OffPriorityChange cancels a subscription made with OnPriorityChange.
func (s *Scheduler) OffPriorityChange(sub notify.Subscription) {
	s.changes.Unsubscribe(sub)
}

// AddPriorityRule adds rule, replacing any rule with the same name, then
// renormalizes the weights and recomputes every score.
func (s *Scheduler) AddPriorityRule(rule Rule) error {
	if rule.Name == "" || rule.Apply == nil {
		return fmt.Errorf("%w: name=%q", ErrInvalidRule, rule.Name)
	}

	s.mu.Lock()
	replaced := false
	for i := range s.rules {
		if s.rules[i].Name == rule.Name {
			s.rules[i] = rule
			replaced = true
			break
		}
	}
	if !replaced {
		s.rules = append(s.rules, rule)
	}
	normalize(s.rules)
	s.mu.Unlock()

	s.logger.Debug().Str("rule", rule.Name).Bool("replaced", replaced).Msg("priority rule added")
	s.publish(s.mustRecompute())
	return nil
}

// RemovePriorityRule removes the rule called name, renormalizes the remaining
// weights and recomputes every score. It reports whether the rule existed.
func (s *Scheduler) RemovePriorityRule(name string) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.rules {
		if s.rules[i].Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.rules = append(s.rules[:idx], s.rules[idx+1:]...)
	normalize(s.rules)
	s.mu.Unlock()

	s.logger.Debug().Str("rule", name).Msg("priority rule removed")
	s.publish(s.mustRecompute())
	return true
}

// GetPriorityRules returns the active rules with their normalized weights.
func (s *Scheduler) GetPriorityRules() []Rule {
	s.mu.Lock()
	defer s.mu.Unlock()

	rules := make([]Rule, len(s.rules))
	copy(rules, s.rules)
	return rules
}

// GetPriorityStats counts queued items per band and averages their scores.
func (s *Scheduler) GetPriorityStats() models.PriorityStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := models.PriorityStats{Total: len(s.queue)}
	if stats.Total == 0 {
		return stats
	}

	var sum int
	for _, it := range s.queue {
		sum += it.Priority
		switch {
		case it.Priority >= models.PriorityHigh:
			stats.High++
		case it.Priority >= models.PriorityMedium:
			stats.Medium++
		default:
			stats.Low++
		}
	}
	stats.Average = float64(sum) / float64(stats.Total)

	return stats
}

func (s *Scheduler) recompute() ([]Change, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return nil, 0
	}

	now := s.now()
	var changes []Change
	for i := range s.queue {
		old := s.queue[i].Priority
		s.queue[i].Priority = score(s.rules, s.queue[i], now)
		if s.queue[i].Priority != old {
			changes = append(changes, Change{Item: s.queue[i], OldPriority: old})
		}
	}
	s.sortLocked()

	return changes, len(s.queue)
}

// mustRecompute refreshes scores after a rule change regardless of the
// periodic guard, so a rule mutation is never left unapplied.
func (s *Scheduler) mustRecompute() []Change {
	changes, _ := s.recompute()
	return changes
}

func (s *Scheduler) publish(changes []Change) {
	for _, c := range changes {
		s.changes.Notify(c)
	}
}

func (s *Scheduler) sortLocked() {
	sort.SliceStable(s.queue, func(i, j int) bool {
		return s.queue[i].Priority > s.queue[j].Priority
	})
}
