package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/mlb-live-service/internal/domain/feeds"
	"github.com/preston-bernstein/mlb-live-service/internal/logging"
	"github.com/preston-bernstein/mlb-live-service/internal/metrics"
	"github.com/preston-bernstein/mlb-live-service/internal/timeutil"
)

// instrumentedProvider records per-endpoint attempts, latency and rate limit
// hits, and logs failed calls with the request-scoped logger.
type instrumentedProvider struct {
	next     FeedProvider
	recorder *metrics.Recorder
	logger   *slog.Logger
	name     string
}

// NewInstrumentedProvider wraps next with metrics and failure logging.
func NewInstrumentedProvider(next FeedProvider, recorder *metrics.Recorder, logger *slog.Logger, name string) FeedProvider {
	return &instrumentedProvider{
		next:     next,
		recorder: recorder,
		logger:   logger,
		name:     name,
	}
}

func (p *instrumentedProvider) FetchSchedule(ctx context.Context, teamID int64, window timeutil.Window) (*feeds.Schedule, error) {
	if p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return observe(ctx, p, EndpointSchedule, func() (*feeds.Schedule, error) {
		return p.next.FetchSchedule(ctx, teamID, window)
	})
}

func (p *instrumentedProvider) FetchLiveFeed(ctx context.Context, gamePk int64) (*feeds.LiveFeed, error) {
	if p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return observe(ctx, p, EndpointLive, func() (*feeds.LiveFeed, error) {
		return p.next.FetchLiveFeed(ctx, gamePk)
	})
}

func (p *instrumentedProvider) FetchBoxscore(ctx context.Context, gamePk int64) (*feeds.Boxscore, error) {
	if p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return observe(ctx, p, EndpointBoxscore, func() (*feeds.Boxscore, error) {
		return p.next.FetchBoxscore(ctx, gamePk)
	})
}

func observe[T any](ctx context.Context, p *instrumentedProvider, endpoint string, fn func() (T, error)) (T, error) {
	start := time.Now()
	out, err := fn()
	duration := time.Since(start)

	p.recorder.RecordUpstreamAttempt(endpoint, duration, err)
	if rl, ok := AsRateLimitError(err); ok {
		p.recorder.RecordRateLimit(endpoint, rl.RetryAfter)
	}

	logger := logging.FromContext(ctx, p.logger)
	if err != nil {
		logWithProvider(ctx, logger, slog.LevelWarn, p.name, "upstream fetch failed",
			slog.String(logging.FieldEndpoint, endpoint),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
			slog.Any("err", err),
		)
		return out, err
	}
	logWithProvider(ctx, logger, slog.LevelDebug, p.name, "upstream fetch complete",
		slog.String(logging.FieldEndpoint, endpoint),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	return out, nil
}
