// Package service implements the refresh pipeline behind the HTTP API:
// fetch a snapshot, derive ranks, compare against the persisted
// previous generation, and publish an immutable view.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/okian/podium/internal/adapters/feed"
	"github.com/okian/podium/internal/adapters/statestore"
	"github.com/okian/podium/internal/domain/countdown"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/rank"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultDisplayLimit = 30
)

// defaultPrizes labels the podium ranks. Zero-based keys.
var defaultPrizes = map[int]string{
	0: "1st place funded account",
	1: "2nd place funded account",
	2: "3rd place funded account",
}

// CountdownStatus is the read shape for the contest reset countdown.
type CountdownStatus struct {
	Target    time.Time
	Remaining time.Duration
	Display   string
}

// Service owns the published leaderboard state. The scheduler is its
// only writer; HTTP handlers only read, always seeing one consistent
// snapshot reference.
type Service struct {
	mu sync.RWMutex

	fetcher      feed.Fetcher
	store        statestore.Store
	clock        clockwork.Clock
	displayLimit int
	prizes       map[int]string
	logger       logger.Logger

	// published state, replaced wholesale at the end of each cycle
	state *view

	target  *countdown.Target
	started bool
}

// view is one immutable published generation.
type view struct {
	standings []model.Standing
	prevRanks model.RankMap
	curRanks  model.RankMap
	refreshed time.Time
	lastError string
}

// New constructs a Service with default configuration.
func New(fetcher feed.Fetcher, store statestore.Store, opts ...Option) *Service {
	s := &Service{
		fetcher:      fetcher,
		store:        store,
		clock:        clockwork.NewRealClock(),
		displayLimit: defaultDisplayLimit,
		prizes:       defaultPrizes,
		state:        &view{prevRanks: model.RankMap{}, curRanks: model.RankMap{}},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start seeds the reset target and runs the first refresh cycle so the
// leaderboard is populated before the first scheduled fire.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	s.target = countdown.NewTarget(s.clock.Now())
	s.started = true
	s.mu.Unlock()

	s.logger.Info(ctx, "starting leaderboard service",
		logger.Int("displayLimit", s.displayLimit),
		logger.Time("resetTarget", s.target.At()))

	s.RefreshNow(ctx)
	return nil
}

// Stop is a lifecycle hook kept symmetric with Start; the service has
// no background work of its own to tear down.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = false
}

// RefreshNow runs one full refresh cycle: load the previous rank map,
// fetch, sort, rebuild standings with movement against the previous
// generation, persist the new map, publish. Any fetch failure replaces
// the published snapshot with an empty one; the next scheduled cycle
// is the only retry.
func (s *Service) RefreshNow(ctx context.Context) {
	cycle := uuid.NewString()
	metrics.RecordRefreshCycle()

	// The previous generation is read before the network call resolves;
	// exposing it alongside the new snapshot is what makes movement
	// indicators compare two distinct cycles.
	prev, err := s.store.Load(ctx)
	if err != nil {
		metrics.RecordStateLoadError()
		s.logger.Warn(ctx, "rank state load degraded to empty map",
			logger.String("cycle", cycle), logger.Error(err))
		prev = model.RankMap{}
	}

	fetchStart := s.clock.Now()
	entrants, fetchErr := s.fetcher.Fetch(ctx)
	metrics.RecordFetchLatency(float64(s.clock.Since(fetchStart).Milliseconds()))

	lastError := ""
	if fetchErr != nil {
		entrants = nil
		lastError = fetchErr.Error()
		kind := "transport"
		if errors.Is(fetchErr, feed.ErrMissingConfig) {
			kind = "config"
		}
		metrics.RecordRefreshError(kind)
		s.logger.Error(ctx, "snapshot fetch failed; resetting to empty list",
			logger.String("cycle", cycle), logger.String("kind", kind), logger.Error(fetchErr))
	}

	cur := rank.BuildRankMap(entrants)
	standings := s.buildStandings(entrants, prev, cur)

	// The new map overwrites the persisted value only after a successful
	// parse, and only after prev was captured above.
	if fetchErr == nil {
		if err := s.store.Save(ctx, cur); err != nil {
			metrics.RecordStateSaveError()
			s.logger.Warn(ctx, "rank state write skipped",
				logger.String("cycle", cycle), logger.Error(err))
		}
	}

	now := s.clock.Now()
	s.mu.Lock()
	s.state = &view{
		standings: standings,
		prevRanks: prev,
		curRanks:  cur,
		refreshed: now,
		lastError: lastError,
	}
	s.mu.Unlock()

	metrics.UpdateSnapshotSize(len(standings))
	metrics.UpdateLastRefresh(now)
	s.logger.Info(ctx, "refresh cycle complete",
		logger.String("cycle", cycle),
		logger.Int("entrants", len(standings)),
		logger.Duration("fetch", s.clock.Since(fetchStart)))
}

// buildStandings decorates the ordered snapshot with ranks, movement
// against the previous generation, and prize labels.
func (s *Service) buildStandings(entrants []model.Entrant, prev, cur model.RankMap) []model.Standing {
	standings := make([]model.Standing, 0, len(entrants))
	for _, e := range entrants {
		r, ok := cur[e.AccountID]
		if !ok || r != len(standings) {
			continue // empty or duplicate id, carries no rank of its own
		}
		mv, old := rank.Movement(prev, e.AccountID, r)
		metrics.RecordRankMovement(string(mv))
		standings = append(standings, model.Standing{
			Entrant:  e,
			Rank:     r,
			PrevRank: old,
			Movement: mv,
			Prize:    s.prizes[r],
		})
	}
	return standings
}

// TickCountdown advances the reset target when now has reached it.
// Called once per second by the scheduler.
func (s *Service) TickCountdown(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.target == nil {
		return
	}
	if _, rolled := s.target.Tick(now); rolled {
		metrics.RecordCountdownReset()
		s.logger.Info(context.Background(), "contest reset; countdown target advanced",
			logger.Time("target", s.target.At()))
	}
}

// Countdown reports the reset target and the clamped remaining time.
func (s *Service) Countdown() (CountdownStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.target == nil {
		return CountdownStatus{}, ErrNotStarted
	}
	remaining := s.target.At().Sub(s.clock.Now())
	if remaining < 0 {
		remaining = 0
	}
	return CountdownStatus{
		Target:    s.target.At(),
		Remaining: remaining,
		Display:   countdown.FormatClock(remaining),
	}, nil
}

// TopN returns the first n standings of the current snapshot, capped
// at the configured display limit.
func (s *Service) TopN(_ context.Context, n int) ([]model.Standing, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, n)
	}
	if n > s.displayLimit {
		n = s.displayLimit
	}
	v := s.current()
	if n > len(v.standings) {
		n = len(v.standings)
	}
	return v.standings[:n], nil
}

// Standing returns one entrant's current row.
func (s *Service) Standing(_ context.Context, accountID string) (model.Standing, error) {
	v := s.current()
	r, ok := v.curRanks[accountID]
	if !ok || r >= len(v.standings) {
		return model.Standing{}, fmt.Errorf("%w: %s", ErrNotFound, accountID)
	}
	return v.standings[r], nil
}

// PreviousRanks exposes the rank map captured from the cycle before
// the current one.
func (s *Service) PreviousRanks() model.RankMap {
	return s.current().prevRanks
}

// GetStats returns service statistics for the stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	v := s.current()
	stats := map[string]interface{}{
		"totalEntrants": len(v.standings),
		"displayLimit":  s.displayLimit,
		"lastRefresh":   v.refreshed,
	}
	if v.lastError != "" {
		stats["lastError"] = v.lastError
	}
	s.mu.RLock()
	if s.target != nil {
		stats["resetTarget"] = s.target.At()
	}
	s.mu.RUnlock()
	return stats
}

// current snapshots the published view reference.
func (s *Service) current() *view {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
