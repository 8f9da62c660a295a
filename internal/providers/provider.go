package providers

import (
	"context"

	"github.com/preston-bernstein/mlb-live-service/internal/domain/feeds"
	"github.com/preston-bernstein/mlb-live-service/internal/timeutil"
)

// Upstream endpoint names used in errors, logs and metrics.
const (
	EndpointSchedule = "schedule"
	EndpointLive     = "live"
	EndpointBoxscore = "boxscore"
)

// FeedProvider fetches the upstream documents the live pipeline reads.
// Implementations must tolerate sparse payloads and only fail on transport,
// status or decode errors.
type FeedProvider interface {
	FetchSchedule(ctx context.Context, teamID int64, window timeutil.Window) (*feeds.Schedule, error)
	FetchLiveFeed(ctx context.Context, gamePk int64) (*feeds.LiveFeed, error)
	FetchBoxscore(ctx context.Context, gamePk int64) (*feeds.Boxscore, error)
}
