package config

import "time"

// StatsAPIConfig controls how we talk to the MLB StatsAPI.
type StatsAPIConfig struct {
	BaseURL string
	SportID int
	Timeout time.Duration
}

// UpstreamConfig toggles the optional wrappers around the upstream provider.
// Both are off by default; neither retries.
type UpstreamConfig struct {
	RateLimit      float64 // requests per second, 0 disables
	RateBurst      int
	BreakerEnabled bool
	BreakerTimeout time.Duration
}

func loadStatsAPI() StatsAPIConfig {
	return StatsAPIConfig{
		BaseURL: envOrDefault(envStatsBaseURL, defaultStatsBaseURL),
		SportID: intEnvOrDefault(envStatsSportID, defaultStatsSportID),
		Timeout: durationEnvOrDefault(envStatsTimeout, defaultStatsTimeout),
	}
}

func loadUpstream() UpstreamConfig {
	return UpstreamConfig{
		RateLimit:      floatEnvOrDefault(envRateLimit, 0),
		RateBurst:      intEnvOrDefault(envRateBurst, defaultRateBurst),
		BreakerEnabled: boolEnvOrDefault(envBreakerOn, false),
		BreakerTimeout: durationEnvOrDefault(envBreakerTimeout, defaultBreakerTimeout),
	}
}
