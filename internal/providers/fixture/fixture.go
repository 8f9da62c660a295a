package fixture

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/preston-bernstein/mlb-live-service/internal/domain/feeds"
	"github.com/preston-bernstein/mlb-live-service/internal/providers"
	"github.com/preston-bernstein/mlb-live-service/internal/timeutil"
)

// GamePk is the id of the single game the fixture serves.
const GamePk int64 = 745123

//go:embed data/*.json
var documents embed.FS

// Provider serves a canned in-progress game, useful for local runs without network access.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchSchedule returns the fixture game dated on the first day of the window.
func (p *Provider) FetchSchedule(ctx context.Context, teamID int64, window timeutil.Window) (*feeds.Schedule, error) {
	var out feeds.Schedule
	if err := load("data/schedule.json", providers.EndpointSchedule, &out); err != nil {
		return nil, err
	}
	date := window.Start
	if date == "" {
		date = timeutil.FormatDate(p.now().UTC())
	}
	for i := range out.Dates {
		out.Dates[i].Date = date
	}
	return &out, nil
}

// FetchLiveFeed returns the fixture live feed, or a 404 upstream error for any other game.
func (p *Provider) FetchLiveFeed(ctx context.Context, gamePk int64) (*feeds.LiveFeed, error) {
	if gamePk != GamePk {
		return nil, notFound(providers.EndpointLive, gamePk)
	}
	var out feeds.LiveFeed
	if err := load("data/live.json", providers.EndpointLive, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchBoxscore returns the fixture boxscore, or a 404 upstream error for any other game.
func (p *Provider) FetchBoxscore(ctx context.Context, gamePk int64) (*feeds.Boxscore, error) {
	if gamePk != GamePk {
		return nil, notFound(providers.EndpointBoxscore, gamePk)
	}
	var out feeds.Boxscore
	if err := load("data/boxscore.json", providers.EndpointBoxscore, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// load decodes a fresh copy on every call so requests never share documents.
func load(name, endpoint string, out any) error {
	raw, err := documents.ReadFile(name)
	if err != nil {
		return &providers.UpstreamError{Endpoint: endpoint, Err: err}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &providers.UpstreamError{Endpoint: endpoint, Err: fmt.Errorf("decode fixture: %w", err)}
	}
	return nil
}

func notFound(endpoint string, gamePk int64) error {
	return &providers.UpstreamError{
		Endpoint:   endpoint,
		StatusCode: http.StatusNotFound,
		Err:        fmt.Errorf("fixture has no game %d", gamePk),
	}
}
