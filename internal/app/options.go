package service

import (
	"github.com/jonboulle/clockwork"

	"github.com/okian/podium/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDisplayLimit caps the number of standings exposed to readers.
func WithDisplayLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.displayLimit = limit
		}
	}
}

// WithPrizes replaces the rank-to-prize-label table. Keys are
// zero-based ranks.
func WithPrizes(prizes map[int]string) Option {
	return func(s *Service) {
		if prizes != nil {
			s.prizes = prizes
		}
	}
}

// WithClock replaces the wall clock, mainly for tests.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
