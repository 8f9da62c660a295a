package server

import (
	"log/slog"

	"github.com/preston-bernstein/mlb-live-service/internal/config"
	"github.com/preston-bernstein/mlb-live-service/internal/metrics"
	"github.com/preston-bernstein/mlb-live-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers. Instrumentation
// is innermost so every real upstream attempt is counted; the breaker and the
// rate limit are only added when configured.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.FeedProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

func (f providerFactory) wrap(cfg config.Config, base providers.FeedProvider) providers.FeedProvider {
	name := providerLabel(cfg.Provider)
	provider := providers.NewInstrumentedProvider(base, f.metrics, f.logger, name)
	if cfg.Upstream.BreakerEnabled {
		provider = providers.NewBreakerProvider(provider, name, cfg.Upstream.BreakerTimeout, f.logger)
	}
	if cfg.Upstream.RateLimit > 0 {
		provider = providers.NewRateLimitedProvider(provider, cfg.Upstream.RateLimit, cfg.Upstream.RateBurst, f.logger)
	}
	return provider
}
