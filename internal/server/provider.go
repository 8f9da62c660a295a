package server

import (
	"log/slog"

	"github.com/preston-bernstein/mlb-live-service/internal/config"
	"github.com/preston-bernstein/mlb-live-service/internal/providers"
	"github.com/preston-bernstein/mlb-live-service/internal/providers/fixture"
	"github.com/preston-bernstein/mlb-live-service/internal/providers/statsapi"
)

const (
	providerStatsAPI = "statsapi"
	providerFixture  = "fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.FeedProvider {
	switch normalizeProviderName(cfg.Provider) {
	case providerFixture:
		return fixture.New()
	case providerStatsAPI, "":
		return newStatsAPI(cfg)
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to statsapi", slog.String("provider", cfg.Provider))
		}
		return newStatsAPI(cfg)
	}
}

func newStatsAPI(cfg config.Config) *statsapi.Client {
	return statsapi.NewClient(statsapi.Config{
		BaseURL: cfg.StatsAPI.BaseURL,
		SportID: cfg.StatsAPI.SportID,
		Timeout: cfg.StatsAPI.Timeout,
	})
}
