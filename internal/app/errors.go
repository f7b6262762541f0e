package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNotFound     = errors.New("account not found")
	ErrInvalidLimit = errors.New("invalid leaderboard limit")
	ErrNotStarted   = errors.New("service not started")
)
