package config

import "time"

const (
	envPort             = "PORT"
	envProvider         = "PROVIDER"
	envTeamID           = "TEAM_ID"
	envTeamName         = "TEAM_NAME"
	envScheduleTimezone = "SCHEDULE_TIMEZONE"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"
	envStatsBaseURL     = "STATSAPI_BASE_URL"
	envStatsSportID     = "STATSAPI_SPORT_ID"
	envStatsTimeout     = "STATSAPI_TIMEOUT"
	envRateLimit        = "UPSTREAM_RATE_LIMIT"
	envRateBurst        = "UPSTREAM_RATE_BURST"
	envBreakerOn        = "UPSTREAM_BREAKER_ENABLED"
	envBreakerTimeout   = "UPSTREAM_BREAKER_TIMEOUT"

	defaultPort             = "3000"
	defaultProvider         = "statsapi"
	defaultTeamID           = 119
	defaultTeamName         = "Dodgers"
	defaultScheduleTimezone = "UTC"
	defaultMetricsPort      = "9090"
	defaultServiceName      = "mlb-live-service"
	defaultStatsBaseURL     = "https://statsapi.mlb.com/api"
	defaultStatsSportID     = 1
	defaultStatsTimeout     = 10 * Duration(time.Second)
	defaultRateBurst        = 1
	defaultBreakerTimeout   = 30 * Duration(time.Second)
)
