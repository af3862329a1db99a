package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sync-governor/internal/notify"
	"github.com/MKhiriev/go-sync-governor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// OutboxService admits local changes into the durable outbox and the
// priority queue.
type OutboxService interface {
	// Enqueue stores item and schedules it. An empty id is replaced by a
	// UUIDv7 and a zero timestamp by the current time.
	Enqueue(ctx context.Context, item models.NewSyncItem) (models.SyncItem, error)
	// Restore loads every persisted item into the queue and returns how many
	// were loaded.
	Restore(ctx context.Context) (int, error)
	// Discard drops a pending item from both the outbox and the queue.
	Discard(ctx context.Context, id string) (models.SyncItem, error)
	// Pending returns the queue in priority order.
	Pending(ctx context.Context) []models.SyncItem
	Stats(ctx context.Context) models.PriorityStats
}

// OutboxServiceWrapper defines middleware composition for OutboxService.
// Implementations wrap an existing OutboxService to add behavior such as
// validation.
type OutboxServiceWrapper interface {
	Wrap(OutboxService) OutboxService
}

// SyncJob pushes the queue to the server at the adaptive interval.
type SyncJob interface {
	Start(ctx context.Context)
	Stop()
	// SyncNow runs one pass immediately.
	SyncNow(ctx context.Context) (models.SyncReport, error)
}

// StatePersister keeps component state across restarts.
type StatePersister interface {
	Start(ctx context.Context)
	Stop()
	Save(ctx context.Context) error
	Restore(ctx context.Context) error
}

// NetworkService is the interval controller as seen by the status API.
type NetworkService interface {
	GetCurrentSyncInterval() time.Duration
	GetCurrentNetworkCondition() models.NetworkCondition
	GetSyncIntervalHistory() []models.SyncIntervalConfig
	GetNetworkHistory() []models.NetworkCondition
	ForceAdaptation(ctx context.Context) (models.SyncIntervalConfig, bool)
}

// StorageService is the storage governor as seen by the status API.
type StorageService interface {
	GetStorageStats(ctx context.Context) models.StorageStats
	GetCleanupHistory() []models.CleanupReport
	GetArchiveHistory() []models.ArchiveReport
	ForceCleanup(ctx context.Context) (models.CleanupReport, bool)
	ForceArchive(ctx context.Context) (models.ArchiveReport, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}

// Queue is the part of the priority scheduler the host drives.
type Queue interface {
	AddToQueue(item models.NewSyncItem) models.SyncItem
	AddAllToQueue(items ...models.NewSyncItem) []models.SyncItem
	Score(item models.NewSyncItem) models.SyncItem
	Insert(items ...models.SyncItem)
	RemoveFromQueue(id string) (models.SyncItem, bool)
	MarkAsSynced(ids []string) []models.SyncItem
	GetNextBatch(n int) []models.SyncItem
	GetQueue() []models.SyncItem
	GetPriorityStats() models.PriorityStats
}

// StorageGuard decides whether a new item fits into the storage quota.
type StorageGuard interface {
	CanStore(ctx context.Context, data any) bool
}

// IntervalSource supplies the sync cadence and the network state.
type IntervalSource interface {
	GetCurrentSyncInterval() time.Duration
	GetCurrentNetworkCondition() models.NetworkCondition
	OnSyncIntervalChange(cb func(models.SyncIntervalConfig)) notify.Subscription
}

// IntervalState is the interval controller state saved between runs.
type IntervalState interface {
	GetCurrentSyncInterval() time.Duration
	GetNetworkHistory() []models.NetworkCondition
	GetSyncIntervalHistory() []models.SyncIntervalConfig
	Restore(current time.Duration, conditions []models.NetworkCondition, intervals []models.SyncIntervalConfig)
}

// StorageState is the governor bookkeeping saved between runs.
type StorageState interface {
	GetStorageStats(ctx context.Context) models.StorageStats
	RestoreStats(stats models.StorageStats)
}

type IDGenerator interface {
	Generate() string
}
