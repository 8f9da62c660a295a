package config

// Config holds runtime configuration for the server.
type Config struct {
	Port     string
	Provider string
	Team     TeamConfig
	StatsAPI StatsAPIConfig
	Upstream UpstreamConfig
	Metrics  MetricsConfig
}

// TeamConfig identifies the single team the service reports on.
type TeamConfig struct {
	ID       int64
	Name     string
	Timezone string // zone used to decide what "today" is for the schedule window
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Provider: envOrDefault(envProvider, defaultProvider),
		Team:     loadTeam(),
		StatsAPI: loadStatsAPI(),
		Upstream: loadUpstream(),
		Metrics:  loadMetrics(),
	}
}

func loadTeam() TeamConfig {
	return TeamConfig{
		ID:       int64(intEnvOrDefault(envTeamID, defaultTeamID)),
		Name:     envOrDefault(envTeamName, defaultTeamName),
		Timezone: envOrDefault(envScheduleTimezone, defaultScheduleTimezone),
	}
}
