package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-sync-governor/internal/adapter"
	"github.com/MKhiriev/go-sync-governor/internal/logger"
	"github.com/MKhiriev/go-sync-governor/internal/notify"
	"github.com/MKhiriev/go-sync-governor/internal/store"
	"github.com/MKhiriev/go-sync-governor/internal/workers"
	"github.com/MKhiriev/go-sync-governor/models"
)

const (
	skipOffline    = "offline"
	skipEmptyQueue = "queue is empty"
)

type syncJob struct {
	outbox    store.OutboxRepository
	queue     Queue
	transport adapter.Transport
	network   IntervalSource
	batchSize int
	logger    *logger.Logger
	now       func() time.Time

	worker    *workers.Periodic
	isSyncing atomic.Bool

	mu  sync.Mutex
	sub notify.Subscription
}

// NewSyncJob creates a job that pushes up to batchSize items per tick. The
// tick period follows network's current sync interval. The job is idle until
// Start is called.
func NewSyncJob(batchSize int, outbox store.OutboxRepository, queue Queue, transport adapter.Transport, network IntervalSource, log *logger.Logger) SyncJob {
	if batchSize <= 0 {
		batchSize = 20
	}

	j := &syncJob{
		outbox:    outbox,
		queue:     queue,
		transport: transport,
		network:   network,
		batchSize: batchSize,
		logger:    log,
		now:       time.Now,
	}
	j.worker = workers.NewPeriodic("sync", network.GetCurrentSyncInterval(), j.tick, log)

	return j
}

// Start implements SyncJob. It subscribes to interval changes and launches
// the periodic push. The loop exits when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context) {
	j.mu.Lock()
	j.sub.Cancel()
	j.sub = j.network.OnSyncIntervalChange(func(change models.SyncIntervalConfig) {
		j.logger.Info().
			Dur("interval", change.Interval).
			Str("reason", change.Reason).
			Msg("sync interval changed")
		j.worker.Reset(change.Interval)
	})
	j.mu.Unlock()

	j.worker.Reset(j.network.GetCurrentSyncInterval())
	j.worker.Start(ctx)
}

// Stop implements SyncJob. It blocks until an in-flight pass has returned.
// Safe to call when the job is not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	j.sub.Cancel()
	j.sub = notify.Subscription{}
	j.mu.Unlock()

	j.worker.Stop()
}

func (j *syncJob) SyncNow(ctx context.Context) (models.SyncReport, error) {
	return j.sync(ctx)
}

func (j *syncJob) tick(ctx context.Context) error {
	_, err := j.sync(ctx)
	if errors.Is(err, ErrSyncInProgress) {
		return nil
	}
	return err
}

func (j *syncJob) sync(ctx context.Context) (models.SyncReport, error) {
	report := models.SyncReport{StartedAt: j.now()}
	finish := func() models.SyncReport {
		report.FinishedAt = j.now()
		return report
	}

	if !j.isSyncing.CompareAndSwap(false, true) {
		report.Skipped = true
		report.Reason = ErrSyncInProgress.Error()
		return finish(), ErrSyncInProgress
	}
	defer j.isSyncing.Store(false)

	if !j.network.GetCurrentNetworkCondition().IsOnline {
		report.Skipped = true
		report.Reason = skipOffline
		return finish(), nil
	}

	batch := j.queue.GetNextBatch(j.batchSize)
	if len(batch) == 0 {
		report.Skipped = true
		report.Reason = skipEmptyQueue
		return finish(), nil
	}
	report.Sent = len(batch)

	result, err := j.transport.Push(ctx, batch)
	if err != nil {
		j.logger.Warn().Err(err).Int("batch", len(batch)).Msg("push failed, items stay queued")
		return finish(), fmt.Errorf("%w: %w", ErrPushFailed, err)
	}

	synced := acknowledged(batch, result.Synced)
	report.Synced = synced
	report.Failed = result.Failed

	for id, reason := range result.Failed {
		j.logger.Warn().Str("id", id).Str("reason", reason).Msg("server rejected sync item")
	}

	if len(synced) == 0 {
		return finish(), nil
	}

	j.queue.MarkAsSynced(synced)
	if _, err = j.outbox.Delete(ctx, synced...); err != nil {
		// the rows are pushed again after a restart
		j.logger.Err(err).Int("synced", len(synced)).Msg("failed to delete synced items from outbox")
		return finish(), err
	}

	j.logger.Info().
		Int("sent", len(batch)).
		Int("synced", len(synced)).
		Int("failed", len(result.Failed)).
		Msg("sync pass finished")

	return finish(), nil
}

// acknowledged keeps the ids the server confirmed that were part of batch.
func acknowledged(batch []models.SyncItem, synced []string) []string {
	sent := make(map[string]struct{}, len(batch))
	for _, it := range batch {
		sent[it.ID] = struct{}{}
	}

	ids := make([]string, 0, len(synced))
	for _, id := range synced {
		if _, ok := sent[id]; ok {
			ids = append(ids, id)
			delete(sent, id)
		}
	}
	return ids
}
