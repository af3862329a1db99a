package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-governor/internal/logger"
	"github.com/MKhiriev/go-sync-governor/internal/store"
	"github.com/MKhiriev/go-sync-governor/internal/workers"
	"github.com/MKhiriev/go-sync-governor/models"
)

// State keys in the key-value table.
const (
	IntervalStateKey = "interval"
	StorageStateKey  = "storage"
)

type intervalSnapshot struct {
	Current    time.Duration               `json:"current"`
	Conditions []models.NetworkCondition   `json:"conditions"`
	Intervals  []models.SyncIntervalConfig `json:"intervals"`
}

type statePersister struct {
	repo     store.StateRepository
	interval IntervalState
	storage  StorageState
	logger   *logger.Logger

	worker *workers.Periodic
}

// NewStatePersister saves interval and storage state every period and on
// Stop.
func NewStatePersister(period time.Duration, repo store.StateRepository, interval IntervalState, storage StorageState, log *logger.Logger) StatePersister {
	p := &statePersister{
		repo:     repo,
		interval: interval,
		storage:  storage,
		logger:   log,
	}
	p.worker = workers.NewPeriodic("state-persister", period, p.Save, log)

	return p
}

func (p *statePersister) Start(ctx context.Context) {
	p.worker.Start(ctx)
}

// Stop halts the periodic save and writes a final snapshot.
func (p *statePersister) Stop() {
	p.worker.Stop()

	if err := p.Save(context.Background()); err != nil {
		p.logger.Err(err).Msg("failed to save state on shutdown")
	}
}

func (p *statePersister) Save(ctx context.Context) error {
	var errs []error

	if p.interval != nil {
		snapshot := intervalSnapshot{
			Current:    p.interval.GetCurrentSyncInterval(),
			Conditions: p.interval.GetNetworkHistory(),
			Intervals:  p.interval.GetSyncIntervalHistory(),
		}
		errs = append(errs, p.put(ctx, IntervalStateKey, snapshot))
	}

	if p.storage != nil {
		errs = append(errs, p.put(ctx, StorageStateKey, p.storage.GetStorageStats(ctx)))
	}

	return errors.Join(errs...)
}

// Restore applies the saved snapshots. Missing keys are not an error.
func (p *statePersister) Restore(ctx context.Context) error {
	var errs []error

	if p.interval != nil {
		var snapshot intervalSnapshot
		found, err := p.get(ctx, IntervalStateKey, &snapshot)
		if err != nil {
			errs = append(errs, err)
		} else if found {
			p.interval.Restore(snapshot.Current, snapshot.Conditions, snapshot.Intervals)
			p.logger.Info().Dur("interval", p.interval.GetCurrentSyncInterval()).Msg("interval state restored")
		}
	}

	if p.storage != nil {
		var stats models.StorageStats
		found, err := p.get(ctx, StorageStateKey, &stats)
		if err != nil {
			errs = append(errs, err)
		} else if found {
			p.storage.RestoreStats(stats)
			p.logger.Info().Int("cleanups", stats.CleanupCount).Int("archives", stats.ArchiveCount).Msg("storage state restored")
		}
	}

	return errors.Join(errs...)
}

func (p *statePersister) put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s state: %w", key, err)
	}
	if err = p.repo.Put(ctx, key, data); err != nil {
		return fmt.Errorf("save %s state: %w", key, err)
	}
	return nil
}

func (p *statePersister) get(ctx context.Context, key string, v any) (bool, error) {
	data, err := p.repo.Get(ctx, key)
	if errors.Is(err, store.ErrStateNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s state: %w", key, err)
	}
	if err = json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s state: %w", key, err)
	}
	return true, nil
}
