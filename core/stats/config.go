package stats

import "time"

// Config holds configuration for the remote stats API.
type Config struct {
	// BaseURL is the root of the stats endpoints.
	BaseURL string `mapstructure:"base_url" default:"https://stats.nba.com/stats"`
	// Season is the default season identifier (e.g. 2025-26).
	Season string `mapstructure:"season" default:"2025-26"`
	// LeagueID selects the league on the stats API.
	LeagueID string `mapstructure:"league_id" default:"00"`
	// TimeoutSeconds bounds a single request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
	// MaxRetries is the number of retries after a transient failure.
	MaxRetries int `mapstructure:"max_retries" default:"3"`
	// RetryWaitMillis is the initial backoff interval.
	RetryWaitMillis int `mapstructure:"retry_wait_millis" default:"500"`
	// UserAgent is sent with every request; the API rejects unknown clients.
	UserAgent string `mapstructure:"user_agent" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"`
}

func (c Config) timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c Config) retryWait() time.Duration {
	if c.RetryWaitMillis <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(c.RetryWaitMillis) * time.Millisecond
}
