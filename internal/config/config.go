// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load() layers file and env.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// APIBaseURL is the read endpoint base, e.g. "https://xyz.supabase.co".
	// Required at fetch time; an empty value fails the fetch, not startup.
	APIBaseURL string `koanf:"api_base_url"`

	// APIKey is the static read credential sent as the apikey header and
	// bearer token. Never logged.
	APIKey string `koanf:"api_key"`

	// Table names the source table on the read endpoint.
	Table string `koanf:"table"`

	// FetchLimit caps rows requested per refresh cycle.
	FetchLimit int `koanf:"fetch_limit"`

	// DisplayLimit caps rows exposed on the leaderboard surface.
	DisplayLimit int `koanf:"display_limit"`

	// StatePath locates the persisted rank-map file.
	StatePath string `koanf:"state_path"`

	// FetchTimeoutMS bounds one fetch round trip.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		Table:          "contest_live",
		FetchLimit:     500,
		DisplayLimit:   30,
		StatePath:      "podium-ranks.json",
		FetchTimeoutMS: 30_000,
	}
}
