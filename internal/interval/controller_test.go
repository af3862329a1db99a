// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package interval

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-sync-governor/internal/logger"
	"github.com/MKhiriev/go-sync-governor/internal/mock"
	"github.com/MKhiriev/go-sync-governor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubReader returns queued readings in order and then repeats the last one.
type stubReader struct {
	mu       sync.Mutex
	readings []models.NetworkCondition
	err      error
}

func (s *stubReader) Read(context.Context) (models.NetworkCondition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return models.NetworkCondition{}, s.err
	}
	if len(s.readings) == 0 {
		return models.NetworkCondition{}, errors.New("no readings")
	}
	r := s.readings[0]
	if len(s.readings) > 1 {
		s.readings = s.readings[1:]
	}
	return r, nil
}

func online(downlink float64, rtt time.Duration) models.NetworkCondition {
	return models.NetworkCondition{IsOnline: true, EffectiveType: models.EffectiveType4G, Downlink: downlink, RTT: rtt}
}

func newTestController(t *testing.T, readings ...models.NetworkCondition) (*Controller, *stubReader) {
	t.Helper()
	r := &stubReader{readings: readings}
	return NewController(DefaultConfig(), r, logger.Nop()), r
}

// sample feeds one reading through the controller and adapts.
func sample(t *testing.T, c *Controller, r *stubReader, cond models.NetworkCondition) (models.SyncIntervalConfig, bool) {
	t.Helper()
	r.mu.Lock()
	r.readings = []models.NetworkCondition{cond}
	r.mu.Unlock()
	return c.ForceAdaptation(context.Background())
}

// ── threshold rules ──────────────────────────────────────────────────────────

func TestAdaptSyncInterval_ThresholdRules(t *testing.T) {
	tests := []struct {
		name       string
		cond       models.NetworkCondition
		wantChange bool
		want       time.Duration
		reason     string
	}{
		{"offline goes to max", models.NetworkCondition{IsOnline: false, Downlink: 50}, true, 600 * time.Second, ReasonOffline},
		{"save data goes to max", models.NetworkCondition{IsOnline: true, SaveData: true, Downlink: 50, RTT: 10 * time.Millisecond}, true, 600 * time.Second, ReasonSaveData},
		{"slow downlink grows by half", online(0.5, 100*time.Millisecond), true, 450 * time.Second, ReasonSlow},
		{"high latency grows by a fifth", online(5, 1500*time.Millisecond), true, 360 * time.Second, ReasonHighRTT},
		{"fast network shrinks", online(20, 100*time.Millisecond), true, 240 * time.Second, ReasonFast},
		{"fast downlink with mediocre latency is not fast", online(20, 600*time.Millisecond), false, 300 * time.Second, ""},
		{"average network keeps interval", online(5, 200*time.Millisecond), false, 300 * time.Second, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, r := newTestController(t)

			got, changed := sample(t, c, r, tt.cond)

			assert.Equal(t, tt.wantChange, changed)
			assert.Equal(t, tt.want, c.GetCurrentSyncInterval())
			if tt.wantChange {
				assert.Equal(t, tt.want, got.Interval)
				assert.Equal(t, tt.reason, got.Reason)
				assert.Equal(t, tt.cond.Downlink, got.NetworkCondition.Downlink)
			}
		})
	}
}

func TestAdaptSyncInterval_OfflineScenario(t *testing.T) {
	c, r := newTestController(t)

	got, changed := sample(t, c, r, models.NetworkCondition{IsOnline: false})

	require.True(t, changed)
	assert.Equal(t, DefaultConfig().MaxSyncInterval, got.Interval)
	assert.Equal(t, "offline", got.Reason)
	assert.False(t, got.Timestamp.IsZero())
}

func TestAdaptSyncInterval_SlowNetworkScenario(t *testing.T) {
	c, r := newTestController(t)

	got, changed := sample(t, c, r, online(0.5, 100*time.Millisecond))

	require.True(t, changed)
	assert.Equal(t, min(450*time.Second, DefaultConfig().MaxSyncInterval), got.Interval)
}

func TestAdaptSyncInterval_RepeatedSlowSamplesStopAtMax(t *testing.T) {
	c, r := newTestController(t)

	sample(t, c, r, online(0.5, 100*time.Millisecond)) // 450
	sample(t, c, r, online(0.5, 100*time.Millisecond)) // 675 -> 600
	_, changed := sample(t, c, r, online(0.5, 100*time.Millisecond))

	assert.False(t, changed, "already at max, no change expected")
	assert.Equal(t, 600*time.Second, c.GetCurrentSyncInterval())
}

func TestAdaptSyncInterval_RepeatedFastSamplesStopAtMin(t *testing.T) {
	c, r := newTestController(t)

	for i := 0; i < 10; i++ {
		sample(t, c, r, online(50, 20*time.Millisecond))
	}

	assert.Equal(t, 60*time.Second, c.GetCurrentSyncInterval())
}

// ── trend rule ───────────────────────────────────────────────────────────────

func TestAdaptSyncInterval_TrendImproving(t *testing.T) {
	c, r := newTestController(t)
	sample(t, c, r, online(5, 400*time.Millisecond))

	got, changed := sample(t, c, r, online(6.5, 300*time.Millisecond))

	require.True(t, changed)
	assert.Equal(t, 270*time.Second, got.Interval)
	assert.Equal(t, ReasonImproving, got.Reason)
}

func TestAdaptSyncInterval_TrendNeedsBothSignalsToImprove(t *testing.T) {
	c, r := newTestController(t)
	sample(t, c, r, online(5, 400*time.Millisecond))

	_, changed := sample(t, c, r, online(6.5, 390*time.Millisecond))

	assert.False(t, changed)
	assert.Equal(t, 300*time.Second, c.GetCurrentSyncInterval())
}

func TestAdaptSyncInterval_TrendDegrading(t *testing.T) {
	tests := []struct {
		name string
		next models.NetworkCondition
	}{
		{"downlink dropped", online(3.9, 200*time.Millisecond)},
		{"latency rose", online(5, 250*time.Millisecond)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, r := newTestController(t)
			sample(t, c, r, online(5, 200*time.Millisecond))

			got, changed := sample(t, c, r, tt.next)

			require.True(t, changed)
			assert.Equal(t, 330*time.Second, got.Interval)
			assert.Equal(t, ReasonDegrading, got.Reason)
		})
	}
}

func TestAdaptSyncInterval_NoTrendAfterOfflineSample(t *testing.T) {
	c, r := newTestController(t)
	sample(t, c, r, models.NetworkCondition{IsOnline: false})

	// back online with an average network: hard rules do not match and the
	// offline sample is not a valid trend baseline.
	_, changed := sample(t, c, r, online(5, 200*time.Millisecond))

	assert.False(t, changed)
	assert.Equal(t, 600*time.Second, c.GetCurrentSyncInterval())
}

func TestAdaptSyncInterval_RoundsToWholeSeconds(t *testing.T) {
	c, r := newTestController(t)
	c.Restore(333*time.Second, nil, nil)
	sample(t, c, r, online(5, 200*time.Millisecond))

	got, changed := sample(t, c, r, online(5, 300*time.Millisecond))

	require.True(t, changed)
	assert.Equal(t, 366*time.Second, got.Interval)
}

// ── invariants ───────────────────────────────────────────────────────────────

func TestAdaptSyncInterval_AlwaysWithinBounds(t *testing.T) {
	c, r := newTestController(t)
	cfg := DefaultConfig()
	rnd := rand.New(rand.NewSource(3))

	for i := 0; i < 500; i++ {
		cond := models.NetworkCondition{
			IsOnline: rnd.Intn(8) != 0,
			SaveData: rnd.Intn(20) == 0,
			Downlink: rnd.Float64() * 30,
			RTT:      time.Duration(rnd.Int63n(int64(3 * time.Second))),
		}
		sample(t, c, r, cond)

		cur := c.GetCurrentSyncInterval()
		require.GreaterOrEqual(t, cur, cfg.MinSyncInterval)
		require.LessOrEqual(t, cur, cfg.MaxSyncInterval)
		require.Zero(t, cur%time.Second)

		if !cond.IsOnline {
			require.Equal(t, cfg.MaxSyncInterval, cur, "offline must dominate")
		}
	}
}

func TestAdaptSyncInterval_SkippedWhileAdapting(t *testing.T) {
	c, r := newTestController(t)
	c.UpdateNetworkCondition(context.Background())
	r.readings = []models.NetworkCondition{{IsOnline: false}}
	c.UpdateNetworkCondition(context.Background())

	c.isAdapting.Store(true)
	_, changed := c.AdaptSyncInterval()
	assert.False(t, changed)

	c.isAdapting.Store(false)
	_, changed = c.AdaptSyncInterval()
	assert.True(t, changed)
}

func TestAdaptSyncInterval_WithoutSamplesUsesDefaultCondition(t *testing.T) {
	c, _ := newTestController(t)

	_, changed := c.AdaptSyncInterval()

	assert.False(t, changed)
	assert.Equal(t, 300*time.Second, c.GetCurrentSyncInterval())
}

// ── notifications ────────────────────────────────────────────────────────────

func TestOnSyncIntervalChange_NotifiedOnlyOnChange(t *testing.T) {
	c, r := newTestController(t)

	var got []models.SyncIntervalConfig
	sub := c.OnSyncIntervalChange(func(cfg models.SyncIntervalConfig) { got = append(got, cfg) })

	sample(t, c, r, models.NetworkCondition{IsOnline: false})
	sample(t, c, r, models.NetworkCondition{IsOnline: false})

	require.Len(t, got, 1)
	assert.Equal(t, ReasonOffline, got[0].Reason)
	assert.Len(t, c.GetSyncIntervalHistory(), 1)
	assert.Len(t, c.GetNetworkHistory(), 2)

	c.OffSyncIntervalChange(sub)
	sample(t, c, r, online(50, 10*time.Millisecond))
	assert.Len(t, got, 1)
	assert.Len(t, c.GetSyncIntervalHistory(), 2)
}

// ── sampling ─────────────────────────────────────────────────────────────────

func TestUpdateNetworkCondition_ReadFailure(t *testing.T) {
	c, r := newTestController(t)
	r.err = errors.New("connection api unavailable")

	_, ok := c.UpdateNetworkCondition(context.Background())

	assert.False(t, ok)
	assert.Empty(t, c.GetNetworkHistory())
	assert.True(t, c.GetCurrentNetworkCondition().IsOnline, "falls back to the default condition")
	assert.Equal(t, models.EffectiveType4G, c.GetCurrentNetworkCondition().EffectiveType)
}

func TestUpdateNetworkCondition_NilReader(t *testing.T) {
	c := NewController(DefaultConfig(), nil, nil)

	_, ok := c.UpdateNetworkCondition(context.Background())
	assert.False(t, ok)
}

func TestUpdateNetworkCondition_StampsTimestamp(t *testing.T) {
	c, _ := newTestController(t, online(5, 100*time.Millisecond))
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return at }

	got, ok := c.UpdateNetworkCondition(context.Background())

	require.True(t, ok)
	assert.Equal(t, at, got.Timestamp)
}

func TestUpdateNetworkCondition_HistoryIsBounded(t *testing.T) {
	c, _ := newTestController(t, online(5, 100*time.Millisecond))

	for i := 0; i < 30; i++ {
		c.UpdateNetworkCondition(context.Background())
	}

	assert.Len(t, c.GetNetworkHistory(), 20)
}

func TestForceAdaptation_WithMockReader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := mock.NewMockNetworkReader(ctrl)
	ctx := context.Background()
	reader.EXPECT().Read(ctx).Return(models.NetworkCondition{IsOnline: true, SaveData: true}, nil)

	c := NewController(DefaultConfig(), reader, logger.Nop())
	got, changed := c.ForceAdaptation(ctx)

	require.True(t, changed)
	assert.Equal(t, ReasonSaveData, got.Reason)
}

func TestForceAdaptation_FailedSamplesKeepInterval(t *testing.T) {
	c, r := newTestController(t)
	sample(t, c, r, online(5, 400*time.Millisecond))
	_, changed := sample(t, c, r, online(7, 200*time.Millisecond))
	require.True(t, changed)
	require.Equal(t, 270*time.Second, c.GetCurrentSyncInterval())

	var notified int
	c.OnSyncIntervalChange(func(models.SyncIntervalConfig) { notified++ })

	r.mu.Lock()
	r.err = errors.New("connection api unavailable")
	r.mu.Unlock()

	for i := 0; i < 5; i++ {
		_, changed = c.ForceAdaptation(context.Background())
		assert.False(t, changed)
	}

	assert.Equal(t, 270*time.Second, c.GetCurrentSyncInterval())
	assert.Zero(t, notified)
	assert.Len(t, c.GetSyncIntervalHistory(), 1)
	assert.Len(t, c.GetNetworkHistory(), 2)
}

func TestForceAdaptation_MockReaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mock.NewMockNetworkReader(ctrl)
	ctx := context.Background()
	reader.EXPECT().Read(ctx).Return(models.NetworkCondition{}, errors.New("unavailable")).Times(3)

	c := NewController(DefaultConfig(), reader, logger.Nop())
	for i := 0; i < 3; i++ {
		_, changed := c.ForceAdaptation(ctx)
		assert.False(t, changed)
	}

	assert.Equal(t, 300*time.Second, c.GetCurrentSyncInterval())
	assert.Empty(t, c.GetSyncIntervalHistory())
}

// ── restore ──────────────────────────────────────────────────────────────────

func TestRestore_ClampsAndNotifies(t *testing.T) {
	c, _ := newTestController(t)
	var got []models.SyncIntervalConfig
	c.OnSyncIntervalChange(func(cfg models.SyncIntervalConfig) { got = append(got, cfg) })

	history := []models.SyncIntervalConfig{{Interval: 450 * time.Second, Reason: ReasonSlow}}
	conds := []models.NetworkCondition{online(0.5, 100*time.Millisecond)}
	c.Restore(2*time.Hour, conds, history)

	assert.Equal(t, 600*time.Second, c.GetCurrentSyncInterval())
	assert.Equal(t, history, c.GetSyncIntervalHistory())
	assert.Equal(t, conds, c.GetNetworkHistory())
	require.Len(t, got, 1)
	assert.Equal(t, ReasonRestored, got[0].Reason)
}

func TestRestore_ZeroIntervalKeepsCurrent(t *testing.T) {
	c, _ := newTestController(t)
	c.Restore(0, nil, nil)
	assert.Equal(t, 300*time.Second, c.GetCurrentSyncInterval())
}

// ── lifecycle ────────────────────────────────────────────────────────────────

func TestController_StartSamplesPeriodically(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NetworkCheckInterval = 10 * time.Millisecond
	r := &stubReader{readings: []models.NetworkCondition{online(5, 100*time.Millisecond)}}
	c := NewController(cfg, r, logger.Nop())

	c.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	c.Stop()

	assert.GreaterOrEqual(t, len(c.GetNetworkHistory()), 3)
}
