package statsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/mlb-live-service/internal/domain/feeds"
	"github.com/preston-bernstein/mlb-live-service/internal/providers"
	"github.com/preston-bernstein/mlb-live-service/internal/timeutil"
)

// Config controls how the client reaches the MLB StatsAPI.
type Config struct {
	BaseURL    string
	SportID    int
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches schedule, live feed and boxscore documents from the StatsAPI.
type Client struct {
	baseURL    string
	sportID    int
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a StatsAPI client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		sportID:    resolveSportID(cfg.SportID),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// FetchSchedule lists the team's games between window.Start and window.End inclusive.
func (c *Client) FetchSchedule(ctx context.Context, teamID int64, window timeutil.Window) (*feeds.Schedule, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+schedulePath, nil)
	if err != nil {
		return nil, &providers.UpstreamError{Endpoint: providers.EndpointSchedule, Err: err}
	}
	q := req.URL.Query()
	q.Set("sportId", strconv.Itoa(c.sportID))
	q.Set("teamId", strconv.FormatInt(teamID, 10))
	q.Set("startDate", window.Start)
	q.Set("endDate", window.End)
	req.URL.RawQuery = q.Encode()

	var out feeds.Schedule
	if err := c.do(req, providers.EndpointSchedule, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchLiveFeed retrieves the live game feed for gamePk.
func (c *Client) FetchLiveFeed(ctx context.Context, gamePk int64) (*feeds.LiveFeed, error) {
	var out feeds.LiveFeed
	if err := c.get(ctx, fmt.Sprintf(liveFeedPath, gamePk), providers.EndpointLive, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchBoxscore retrieves the boxscore for gamePk.
func (c *Client) FetchBoxscore(ctx context.Context, gamePk int64) (*feeds.Boxscore, error) {
	var out feeds.Boxscore
	if err := c.get(ctx, fmt.Sprintf(boxscorePath, gamePk), providers.EndpointBoxscore, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &providers.UpstreamError{Endpoint: endpoint, Err: err}
	}
	return c.do(req, endpoint, out)
}

func (c *Client) do(req *http.Request, endpoint string, out any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &providers.UpstreamError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.UpstreamError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Err: &providers.RateLimitError{
				Provider:   providerName,
				StatusCode: resp.StatusCode,
				RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
				Message:    "statsapi rate limited",
			},
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &providers.UpstreamError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Err:        errors.New(strings.TrimSpace(string(body))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &providers.UpstreamError{Endpoint: endpoint, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
