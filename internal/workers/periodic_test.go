package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingTask(calls *atomic.Int64, err error) Task {
	return func(context.Context) error {
		calls.Add(1)
		return err
	}
}

func TestNewPeriodic_DefaultInterval(t *testing.T) {
	p := NewPeriodic("test", 0, countingTask(&atomic.Int64{}, nil), nil)
	assert.Equal(t, time.Minute, p.Interval())

	p = NewPeriodic("test", -time.Second, countingTask(&atomic.Int64{}, nil), nil)
	assert.Equal(t, time.Minute, p.Interval())
}

func TestPeriodic_Start_RunsTask(t *testing.T) {
	var calls atomic.Int64
	p := NewPeriodic("test", 10*time.Millisecond, countingTask(&calls, nil), nil)

	p.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	p.Stop()

	assert.GreaterOrEqual(t, calls.Load(), int64(3), "task should run several times, ran: %d", calls.Load())
}

func TestPeriodic_Stop_StopsGoroutine(t *testing.T) {
	var calls atomic.Int64
	p := NewPeriodic("test", 10*time.Millisecond, countingTask(&calls, nil), nil)

	p.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	p.Stop()

	afterStop := calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, afterStop, calls.Load(), "no ticks are expected after Stop")
}

func TestPeriodic_Stop_BeforeStart_NoPanic(t *testing.T) {
	p := NewPeriodic("test", time.Second, countingTask(&atomic.Int64{}, nil), nil)
	assert.NotPanics(t, p.Stop)
}

func TestPeriodic_DoubleStop_NoPanic(t *testing.T) {
	p := NewPeriodic("test", 10*time.Millisecond, countingTask(&atomic.Int64{}, nil), nil)
	p.Start(context.Background())
	p.Stop()
	assert.NotPanics(t, p.Stop)
}

func TestPeriodic_TaskError_DoesNotStopLoop(t *testing.T) {
	var calls atomic.Int64
	p := NewPeriodic("test", 10*time.Millisecond, countingTask(&calls, errors.New("boom")), nil)

	p.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	p.Stop()

	assert.GreaterOrEqual(t, calls.Load(), int64(3))
}

func TestPeriodic_TaskPanic_DoesNotStopLoop(t *testing.T) {
	var calls atomic.Int64
	p := NewPeriodic("test", 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		panic("boom")
	}, nil)

	p.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	p.Stop()

	assert.GreaterOrEqual(t, calls.Load(), int64(3))
}

func TestPeriodic_ContextCancel_StopsLoop(t *testing.T) {
	p := NewPeriodic("test", 10*time.Millisecond, countingTask(&atomic.Int64{}, nil), nil)
	ctx, cancel := context.WithCancel(context.Background())

	p.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		p.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}

func TestPeriodic_Reset_ShortensPeriod(t *testing.T) {
	var calls atomic.Int64
	p := NewPeriodic("test", time.Hour, countingTask(&calls, nil), nil)

	p.Start(context.Background())
	p.Reset(10 * time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	p.Stop()

	assert.Equal(t, 10*time.Millisecond, p.Interval())
	assert.GreaterOrEqual(t, calls.Load(), int64(3))
}

func TestPeriodic_Reset_WhileStopped(t *testing.T) {
	p := NewPeriodic("test", time.Hour, countingTask(&atomic.Int64{}, nil), nil)

	p.Reset(5 * time.Second)
	assert.Equal(t, 5*time.Second, p.Interval())

	p.Reset(0)
	assert.Equal(t, 5*time.Second, p.Interval(), "non-positive periods are ignored")
}

func TestPeriodic_SlowTask_TicksAreDropped(t *testing.T) {
	var calls atomic.Int64
	p := NewPeriodic("test", 5*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		time.Sleep(40 * time.Millisecond)
		return nil
	}, nil)

	p.Start(context.Background())
	time.Sleep(60 * time.Millisecond)
	p.Stop()

	require.LessOrEqual(t, calls.Load(), int64(3), "overlapping ticks must not pile up")
}
