package games

import (
	"context"
	"time"

	domaingames "github.com/preston-bernstein/mlb-live-service/internal/domain/games"
	"github.com/preston-bernstein/mlb-live-service/internal/providers"
	"github.com/preston-bernstein/mlb-live-service/internal/timeutil"
)

// Target identifies the single team the service reports on.
type Target struct {
	ID   int64
	Name string
}

// Service runs the live-status pipeline against a FeedProvider. It holds no
// per-request state, so one Service serves concurrent requests.
type Service struct {
	provider providers.FeedProvider
	target   Target
	loc      *time.Location
	now      func() time.Time
}

// NewService constructs a Service. loc is the zone "today" is computed in (UTC when nil).
func NewService(provider providers.FeedProvider, target Target, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		provider: provider,
		target:   target,
		loc:      loc,
		now:      time.Now,
	}
}

// Live resolves the target team's current game into exactly one of the
// message, nextGame or liveGame shapes. Only upstream failures are returned
// as errors; missing fields degrade to defaults.
func (s *Service) Live(ctx context.Context) (domaingames.Response, error) {
	if s == nil || s.provider == nil {
		return domaingames.Response{}, providers.ErrProviderUnavailable
	}

	window := timeutil.ScheduleWindow(s.now(), s.loc)
	sched, err := s.provider.FetchSchedule(ctx, s.target.ID, window)
	if err != nil {
		return domaingames.Response{}, err
	}

	game, resp, done := resolveSchedule(sched, s.target)
	if done {
		return resp, nil
	}

	live, box, err := s.fetchGame(ctx, game.GamePk)
	if err != nil {
		return domaingames.Response{}, err
	}
	return domaingames.Response{LiveGame: normalize(aggregate(live, box))}, nil
}
