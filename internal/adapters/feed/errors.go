package feed

import "errors"

// Sentinel kinds for fetch errors. ErrMissingConfig marks a
// configuration problem; everything else on the fetch path wraps
// ErrFetch so callers can treat transport and decode failures alike.
var (
	ErrMissingConfig = errors.New("feed endpoint or credential not configured")
	ErrFetch         = errors.New("snapshot fetch failed")
)
