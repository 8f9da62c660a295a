package providers

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/mlb-live-service/internal/domain/feeds"
	"github.com/preston-bernstein/mlb-live-service/internal/timeutil"
)

// rateLimitedProvider paces outbound upstream calls with a token bucket.
type rateLimitedProvider struct {
	next    FeedProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a FeedProvider that allows perSecond upstream
// calls with the given burst. Calls block until a token is available or ctx ends.
// A non-positive perSecond means no limit.
func NewRateLimitedProvider(next FeedProvider, perSecond float64, burst int, logger *slog.Logger) FeedProvider {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst <= 0 {
		burst = 1
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) FetchSchedule(ctx context.Context, teamID int64, window timeutil.Window) (*feeds.Schedule, error) {
	if err := p.wait(ctx, EndpointSchedule); err != nil {
		return nil, err
	}
	return p.next.FetchSchedule(ctx, teamID, window)
}

func (p *rateLimitedProvider) FetchLiveFeed(ctx context.Context, gamePk int64) (*feeds.LiveFeed, error) {
	if err := p.wait(ctx, EndpointLive); err != nil {
		return nil, err
	}
	return p.next.FetchLiveFeed(ctx, gamePk)
}

func (p *rateLimitedProvider) FetchBoxscore(ctx context.Context, gamePk int64) (*feeds.Boxscore, error) {
	if err := p.wait(ctx, EndpointBoxscore); err != nil {
		return nil, err
	}
	return p.next.FetchBoxscore(ctx, gamePk)
}

func (p *rateLimitedProvider) wait(ctx context.Context, endpoint string) error {
	if p == nil || p.next == nil {
		if p != nil && p.logger != nil {
			p.logger.Warn("provider unavailable", slog.String("provider", "rate-limited"))
		}
		return ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled",
			slog.String("endpoint", endpoint),
			slog.Any("err", err),
		)
		return err
	}
	return nil
}
