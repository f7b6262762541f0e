// Package scheduler drives the two refresh loops: the even-hour :30
// re-fetch timer and the once-per-second countdown tick.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/okian/podium/pkg/logger"
)

// Scheduling constants.
const (
	refreshMinute     = 30 // fires at even UTC hours plus this minute
	countdownInterval = time.Second
)

// Refresher runs one full fetch/rank/persist cycle to completion. The
// scheduler never overlaps cycles: the next timer is armed only after
// RefreshNow returns.
type Refresher interface {
	RefreshNow(ctx context.Context)
}

// CountdownTicker advances the reset-target state for a wall-clock
// instant.
type CountdownTicker interface {
	TickCountdown(now time.Time)
}

// NextRefresh returns the next occurrence of an even UTC hour plus 30
// minutes, strictly after now. Within an even hour before :30 the next
// fire is that hour's :30 mark; otherwise it is the :30 mark of the
// next even hour, one or two hours ahead.
func NextRefresh(now time.Time) time.Time {
	u := now.UTC()
	sameHour := time.Date(u.Year(), u.Month(), u.Day(), u.Hour(), refreshMinute, 0, 0, time.UTC)
	if u.Hour()%2 == 0 && u.Before(sameHour) {
		return sameHour
	}
	next := u.Hour() + 1
	if u.Hour()%2 == 0 {
		next = u.Hour() + 2
	}
	// time.Date normalizes hour 24/25 into the next day.
	return time.Date(u.Year(), u.Month(), u.Day(), next, refreshMinute, 0, 0, time.UTC)
}

// Scheduler owns the refresh timer and the countdown ticker.
type Scheduler struct {
	refresher Refresher
	countdown CountdownTicker
	clock     clockwork.Clock
	logger    logger.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// New creates a scheduler with configuration options.
func New(refresher Refresher, countdown CountdownTicker, opts ...Option) *Scheduler {
	s := &Scheduler{
		refresher: refresher,
		countdown: countdown,
		clock:     clockwork.NewRealClock(),
		stopCh:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("scheduler")
	}
	return s
}

// Start launches both loops. They run until ctx is canceled or Stop is
// called.
func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(2)
	go s.refreshLoop(ctx)
	go s.countdownLoop(ctx)
}

// Stop tears the loops down, cancelling any pending timer, and waits
// for them to exit.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

// refreshLoop arms a one-shot timer for the next even-hour :30 mark,
// runs a refresh cycle when it fires, and re-arms. The stop channel is
// checked before every re-arm so teardown never leaks a timer.
func (s *Scheduler) refreshLoop(ctx context.Context) {
	defer s.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		default:
		}

		now := s.clock.Now()
		next := NextRefresh(now)
		timer := s.clock.NewTimer(next.Sub(now))
		s.logger.Debug(ctx, "armed refresh timer", logger.Time("next", next))

		select {
		case <-ctx.Done():
			stopTimer(timer)
			return
		case <-s.stopCh:
			stopTimer(timer)
			return
		case <-timer.Chan():
			s.refresher.RefreshNow(ctx)
		}
	}
}

// countdownLoop ticks once per second for the scheduler's lifetime.
func (s *Scheduler) countdownLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := s.clock.NewTicker(countdownInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.Chan():
			s.countdown.TickCountdown(s.clock.Now())
		}
	}
}

// stopTimer stops a pending timer and drains it if it already fired.
func stopTimer(t clockwork.Timer) {
	if !t.Stop() {
		select {
		case <-t.Chan():
		default:
		}
	}
}
