package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sync-governor/internal/interval"
	"github.com/MKhiriev/go-sync-governor/internal/logger"
	"github.com/MKhiriev/go-sync-governor/internal/mock"
	"github.com/MKhiriev/go-sync-governor/internal/notify"
	"github.com/MKhiriev/go-sync-governor/internal/priority"
	"github.com/MKhiriev/go-sync-governor/models"
)

type syncJobFixture struct {
	job       *syncJob
	outbox    *mock.MockOutboxRepository
	transport *mock.MockTransport
	network   *mock.MockIntervalSource
	queue     *priority.Scheduler
}

func newSyncJobFixture(t *testing.T, batchSize int) syncJobFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := syncJobFixture{
		outbox:    mock.NewMockOutboxRepository(ctrl),
		transport: mock.NewMockTransport(ctrl),
		network:   mock.NewMockIntervalSource(ctrl),
		queue:     priority.NewScheduler(priority.DefaultConfig(), logger.Nop()),
	}
	f.network.EXPECT().GetCurrentSyncInterval().Return(time.Minute).AnyTimes()
	f.job = NewSyncJob(batchSize, f.outbox, f.queue, f.transport, f.network, logger.Nop()).(*syncJob)

	return f
}

func (f syncJobFixture) online(isOnline bool) {
	f.network.EXPECT().GetCurrentNetworkCondition().Return(models.NetworkCondition{IsOnline: isOnline}).AnyTimes()
}

func ids(items []models.SyncItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

// ─────────────────────────────────────────────
// SyncNow
// ─────────────────────────────────────────────

func TestSyncJob_SyncNow_Offline(t *testing.T) {
	f := newSyncJobFixture(t, 10)
	f.online(false)
	f.queue.AddToQueue(newItem("a"))

	report, err := f.job.SyncNow(context.Background())

	require.NoError(t, err)
	assert.True(t, report.Skipped)
	assert.Equal(t, "offline", report.Reason)
	assert.Equal(t, 1, f.queue.Len())
}

func TestSyncJob_SyncNow_EmptyQueue(t *testing.T) {
	f := newSyncJobFixture(t, 10)
	f.online(true)

	report, err := f.job.SyncNow(context.Background())

	require.NoError(t, err)
	assert.True(t, report.Skipped)
	assert.Equal(t, "queue is empty", report.Reason)
	assert.False(t, report.FinishedAt.Before(report.StartedAt))
}

func TestSyncJob_SyncNow_PushesHighestPriorityBatch(t *testing.T) {
	f := newSyncJobFixture(t, 2)
	f.online(true)
	ctx := context.Background()

	critical := newItem("critical")
	critical.IsCritical = true
	facing := newItem("facing")
	facing.IsUserFacing = true
	facing.IsCritical = true
	f.queue.AddAllToQueue(newItem("plain"), critical, facing)

	f.transport.EXPECT().Push(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, batch []models.SyncItem) (models.PushResult, error) {
		assert.Equal(t, []string{"facing", "critical"}, ids(batch))
		return models.PushResult{Synced: []string{"facing", "critical"}}, nil
	})
	f.outbox.EXPECT().Delete(ctx, "facing", "critical").Return(int64(2), nil)

	report, err := f.job.SyncNow(ctx)

	require.NoError(t, err)
	assert.False(t, report.Skipped)
	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, []string{"facing", "critical"}, report.Synced)
	assert.Equal(t, []string{"plain"}, ids(f.queue.GetQueue()))
}

func TestSyncJob_SyncNow_KeepsRejectedAndIgnoresForeignAcks(t *testing.T) {
	f := newSyncJobFixture(t, 10)
	f.online(true)
	ctx := context.Background()
	f.queue.AddAllToQueue(newItem("a"), newItem("b"))

	f.transport.EXPECT().Push(ctx, gomock.Any()).Return(models.PushResult{
		Synced: []string{"a", "unknown", "a"},
		Failed: map[string]string{"b": "conflict"},
	}, nil)
	f.outbox.EXPECT().Delete(ctx, "a").Return(int64(1), nil)

	report, err := f.job.SyncNow(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, []string{"a"}, report.Synced)
	assert.Equal(t, map[string]string{"b": "conflict"}, report.Failed)
	assert.Equal(t, []string{"b"}, ids(f.queue.GetQueue()))
}

func TestSyncJob_SyncNow_NothingAcknowledged(t *testing.T) {
	f := newSyncJobFixture(t, 10)
	f.online(true)
	ctx := context.Background()
	f.queue.AddToQueue(newItem("a"))

	f.transport.EXPECT().Push(ctx, gomock.Any()).Return(models.PushResult{}, nil)

	report, err := f.job.SyncNow(ctx)

	require.NoError(t, err)
	assert.Empty(t, report.Synced)
	assert.Equal(t, 1, f.queue.Len())
}

func TestSyncJob_SyncNow_PushFailure(t *testing.T) {
	f := newSyncJobFixture(t, 10)
	f.online(true)
	ctx := context.Background()
	f.queue.AddToQueue(newItem("a"))
	pushErr := errors.New("connection reset")

	f.transport.EXPECT().Push(ctx, gomock.Any()).Return(models.PushResult{}, pushErr)

	report, err := f.job.SyncNow(ctx)

	require.ErrorIs(t, err, ErrPushFailed)
	require.ErrorIs(t, err, pushErr)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 1, f.queue.Len())
}

func TestSyncJob_SyncNow_DeleteFailure(t *testing.T) {
	f := newSyncJobFixture(t, 10)
	f.online(true)
	ctx := context.Background()
	f.queue.AddToQueue(newItem("a"))
	dbErr := errors.New("db down")

	f.transport.EXPECT().Push(ctx, gomock.Any()).Return(models.PushResult{Synced: []string{"a"}}, nil)
	f.outbox.EXPECT().Delete(ctx, "a").Return(int64(0), dbErr)

	_, err := f.job.SyncNow(ctx)

	require.ErrorIs(t, err, dbErr)
	assert.Zero(t, f.queue.Len())
}

func TestSyncJob_SyncNow_InProgress(t *testing.T) {
	f := newSyncJobFixture(t, 10)
	f.online(true)
	ctx := context.Background()
	f.queue.AddToQueue(newItem("a"))

	started := make(chan struct{})
	release := make(chan struct{})
	f.transport.EXPECT().Push(ctx, gomock.Any()).DoAndReturn(func(context.Context, []models.SyncItem) (models.PushResult, error) {
		close(started)
		<-release
		return models.PushResult{}, nil
	})

	done := make(chan error, 1)
	go func() {
		_, err := f.job.SyncNow(ctx)
		done <- err
	}()
	<-started

	report, err := f.job.SyncNow(ctx)
	require.ErrorIs(t, err, ErrSyncInProgress)
	assert.True(t, report.Skipped)

	close(release)
	require.NoError(t, <-done)
}

func TestSyncJob_Tick_IgnoresInProgress(t *testing.T) {
	f := newSyncJobFixture(t, 10)
	f.job.isSyncing.Store(true)

	assert.NoError(t, f.job.tick(context.Background()))
}

// ─────────────────────────────────────────────
// Start / Stop
// ─────────────────────────────────────────────

func TestSyncJob_Start_PushesPeriodically(t *testing.T) {
	ctrl := gomock.NewController(t)
	outbox := mock.NewMockOutboxRepository(ctrl)
	transport := mock.NewMockTransport(ctrl)
	network := mock.NewMockIntervalSource(ctrl)
	queue := priority.NewScheduler(priority.DefaultConfig(), logger.Nop())
	queue.AddToQueue(newItem("a"))

	network.EXPECT().GetCurrentSyncInterval().Return(10 * time.Millisecond).AnyTimes()
	network.EXPECT().GetCurrentNetworkCondition().Return(models.NetworkCondition{IsOnline: true}).AnyTimes()
	network.EXPECT().OnSyncIntervalChange(gomock.Any()).Return(notify.Subscription{})

	pushed := make(chan struct{})
	transport.EXPECT().Push(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, []models.SyncItem) (models.PushResult, error) {
		close(pushed)
		return models.PushResult{Synced: []string{"a"}}, nil
	})
	outbox.EXPECT().Delete(gomock.Any(), "a").Return(int64(1), nil)

	job := NewSyncJob(10, outbox, queue, transport, network, logger.Nop())
	job.Start(context.Background())

	select {
	case <-pushed:
	case <-time.After(2 * time.Second):
		t.Fatal("sync job did not push")
	}
	job.Stop()

	assert.Zero(t, queue.Len())
}

func TestSyncJob_FollowsIntervalChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mock.NewMockNetworkReader(ctrl)

	cfg := interval.DefaultConfig()
	controller := interval.NewController(cfg, reader, logger.Nop())

	job := NewSyncJob(10, mock.NewMockOutboxRepository(ctrl), priority.NewScheduler(priority.DefaultConfig(), logger.Nop()),
		mock.NewMockTransport(ctrl), controller, logger.Nop()).(*syncJob)
	require.Equal(t, cfg.BaseSyncInterval, job.worker.Interval())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	job.Start(ctx)

	controller.Restore(cfg.MaxSyncInterval, nil, nil)
	assert.Equal(t, cfg.MaxSyncInterval, job.worker.Interval())

	job.Stop()

	// no longer subscribed
	controller.Restore(cfg.MinSyncInterval, nil, nil)
	assert.Equal(t, cfg.MaxSyncInterval, job.worker.Interval())
}

func TestSyncJob_Stop_WithoutStart(t *testing.T) {
	f := newSyncJobFixture(t, 10)

	assert.NotPanics(t, f.job.Stop)
}

func TestNewSyncJob_DefaultBatchSize(t *testing.T) {
	f := newSyncJobFixture(t, 0)

	assert.Equal(t, 20, f.job.batchSize)
}

func TestAcknowledged(t *testing.T) {
	batch := []models.SyncItem{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	assert.Equal(t, []string{"c", "a"}, acknowledged(batch, []string{"c", "x", "a", "c"}))
	assert.Empty(t, acknowledged(batch, nil))
}
