package statsapi

import "time"

const (
	providerName       = "statsapi"
	defaultBaseURL     = "https://statsapi.mlb.com/api"
	defaultSportID     = 1
	defaultHTTPTimeout = 10 * time.Second
	errorBodyLimit     = 512

	schedulePath = "/v1/schedule"
	liveFeedPath = "/v1.1/game/%d/feed/live"
	boxscorePath = "/v1/game/%d/boxscore"
)
