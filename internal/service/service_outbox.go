package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-governor/internal/logger"
	"github.com/MKhiriev/go-sync-governor/internal/store"
	"github.com/MKhiriev/go-sync-governor/models"
)

type outboxService struct {
	repo   store.OutboxRepository
	queue  Queue
	guard  StorageGuard
	ids    IDGenerator
	logger *logger.Logger
	now    func() time.Time
}

// NewOutboxService persists items through repo and schedules them on queue.
// guard may be nil, in which case every item is admitted.
func NewOutboxService(repo store.OutboxRepository, queue Queue, guard StorageGuard, ids IDGenerator, log *logger.Logger) OutboxService {
	return &outboxService{
		repo:   repo,
		queue:  queue,
		guard:  guard,
		ids:    ids,
		logger: log,
		now:    time.Now,
	}
}

func (o *outboxService) Enqueue(ctx context.Context, item models.NewSyncItem) (models.SyncItem, error) {
	log := logger.FromContext(ctx)

	if item.ID == "" {
		item.ID = o.ids.Generate()
	}
	if item.Timestamp.IsZero() {
		item.Timestamp = o.now()
	}

	if o.guard != nil && !o.guard.CanStore(ctx, item) {
		log.Warn().
			Str("func", "outboxService.Enqueue").
			Str("id", item.ID).
			Msg("storage quota would be exceeded, item rejected")
		return models.SyncItem{}, ErrStorageFull
	}

	// score first so the stored row carries the real priority
	scored := o.queue.Score(item)

	// the primary key is the duplicate check, queued only once the row exists
	if err := o.repo.Create(ctx, scored); err != nil {
		if errors.Is(err, store.ErrItemExists) {
			return models.SyncItem{}, fmt.Errorf("%w: %s", ErrItemExists, scored.ID)
		}
		log.Err(err).
			Str("func", "outboxService.Enqueue").
			Str("id", scored.ID).
			Msg("failed to persist sync item")
		return models.SyncItem{}, err
	}
	o.queue.Insert(scored)

	log.Debug().
		Str("func", "outboxService.Enqueue").
		Str("id", scored.ID).
		Str("type", scored.Type).
		Int("priority", scored.Priority).
		Msg("sync item enqueued")

	return scored, nil
}

func (o *outboxService) Restore(ctx context.Context) (int, error) {
	items, err := o.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("restore outbox: %w", err)
	}
	if len(items) == 0 {
		return 0, nil
	}

	unscored := make([]models.NewSyncItem, 0, len(items))
	for _, it := range items {
		unscored = append(unscored, it.Unscored())
	}
	rescored := o.queue.AddAllToQueue(unscored...)

	// stored priorities are informational, a failed write-back is not fatal
	if err = o.repo.Save(ctx, rescored...); err != nil {
		o.logger.Warn().Err(err).
			Str("func", "outboxService.Restore").
			Msg("failed to write back restored priorities")
	}

	o.logger.Info().
		Str("func", "outboxService.Restore").
		Int("items", len(items)).
		Msg("outbox restored")

	return len(items), nil
}

func (o *outboxService) Discard(ctx context.Context, id string) (models.SyncItem, error) {
	deleted, err := o.repo.Delete(ctx, id)
	if err != nil {
		return models.SyncItem{}, err
	}

	item, queued := o.queue.RemoveFromQueue(id)
	if !queued && deleted == 0 {
		return models.SyncItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	if !queued {
		item.ID = id
	}

	return item, nil
}

func (o *outboxService) Pending(_ context.Context) []models.SyncItem {
	return o.queue.GetQueue()
}

func (o *outboxService) Stats(_ context.Context) models.PriorityStats {
	return o.queue.GetPriorityStats()
}
