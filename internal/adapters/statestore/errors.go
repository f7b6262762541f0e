package statestore

import "errors"

// Sentinel kinds for persistence errors. Callers treat both as a
// degraded state, never as fatal.
var (
	ErrLoad = errors.New("rank state load failed")
	ErrSave = errors.New("rank state save failed")
)
