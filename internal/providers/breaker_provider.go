package providers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/preston-bernstein/mlb-live-service/internal/domain/feeds"
	"github.com/preston-bernstein/mlb-live-service/internal/timeutil"
)

const (
	defaultBreakerTimeout = 30 * time.Second
	breakerFailureStreak  = 5
	breakerHalfOpenProbes = 1
)

// breakerProvider fails fast while the upstream keeps erroring. It never retries.
type breakerProvider struct {
	next FeedProvider
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps next in a circuit breaker that opens after a streak
// of consecutive failures and stays open for timeout.
func NewBreakerProvider(next FeedProvider, name string, timeout time.Duration, logger *slog.Logger) FeedProvider {
	if timeout <= 0 {
		timeout = defaultBreakerTimeout
	}
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: breakerHalfOpenProbes,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureStreak
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if logger != nil {
				logger.Warn("circuit breaker state changed",
					slog.String("provider", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()),
				)
			}
		},
	}
	return &breakerProvider{next: next, cb: gobreaker.NewCircuitBreaker(settings)}
}

func (p *breakerProvider) FetchSchedule(ctx context.Context, teamID int64, window timeutil.Window) (*feeds.Schedule, error) {
	if p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return guarded(p.cb, func() (*feeds.Schedule, error) {
		return p.next.FetchSchedule(ctx, teamID, window)
	})
}

func (p *breakerProvider) FetchLiveFeed(ctx context.Context, gamePk int64) (*feeds.LiveFeed, error) {
	if p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return guarded(p.cb, func() (*feeds.LiveFeed, error) {
		return p.next.FetchLiveFeed(ctx, gamePk)
	})
}

func (p *breakerProvider) FetchBoxscore(ctx context.Context, gamePk int64) (*feeds.Boxscore, error) {
	if p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return guarded(p.cb, func() (*feeds.Boxscore, error) {
		return p.next.FetchBoxscore(ctx, gamePk)
	})
}

// State exposes the breaker state for tests and diagnostics.
func (p *breakerProvider) State() gobreaker.State {
	return p.cb.State()
}

func guarded[T any](cb *gobreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var zero T
	out, err := cb.Execute(func() (interface{}, error) {
		v, err := fn()
		return v, err
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
		}
		return zero, err
	}
	v, ok := out.(T)
	if !ok {
		return zero, nil
	}
	return v, nil
}
