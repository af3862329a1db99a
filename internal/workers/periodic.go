// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-sync-governor/internal/logger"
)

// Periodic runs a [Task] on a ticker until it is stopped. A tick that fires
// while the previous task is still running is dropped, never queued.
type Periodic struct {
	name   string
	task   Task
	logger *logger.Logger

	mu       sync.Mutex
	interval time.Duration
	cancel   context.CancelFunc
	reset    chan time.Duration
	wg       sync.WaitGroup
}

// NewPeriodic creates a Periodic that calls task every interval. The worker
// is idle until Start is called. If interval is zero or negative it
// defaults to one minute.
func NewPeriodic(name string, interval time.Duration, task Task, log *logger.Logger) *Periodic {
	if interval <= 0 {
		interval = time.Minute
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Periodic{
		name:     name,
		task:     task,
		interval: interval,
		logger:   log,
	}
}

// Interval returns the current tick period.
func (p *Periodic) Interval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.interval
}

// Start implements Worker. It stops any previously running loop, then
// launches a goroutine that runs the task every interval. The goroutine exits
// when ctx is cancelled or Stop is called.
func (p *Periodic) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.reset = make(chan time.Duration, 1)
	interval := p.interval
	reset := p.reset
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case d := <-reset:
				t.Reset(d)
			case <-t.C:
				p.runOnce(jobCtx)
			}
		}
	}()
}

// Reset changes the tick period. A running loop picks the new period up
// immediately; a stopped worker uses it on the next Start.
func (p *Periodic) Reset(interval time.Duration) {
	if interval <= 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.interval = interval
	if p.reset == nil {
		return
	}

	// keep only the latest pending period
	select {
	case <-p.reset:
	default:
	}
	p.reset <- interval
}

// Stop implements Worker. It cancels the loop and blocks until an in-flight
// task has returned. Safe to call when the worker is not running.
func (p *Periodic) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.reset = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

func (p *Periodic) runOnce(ctx context.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			p.logger.Error().
				Err(fmt.Errorf("%v", rec)).
				Str("worker", p.name).
				Msg("periodic task panicked")
		}
	}()

	if err := p.task(ctx); err != nil {
		p.logger.Warn().
			Err(err).
			Str("worker", p.name).
			Msg("periodic task failed")
	}
}
