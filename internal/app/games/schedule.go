package games

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/mlb-live-service/internal/domain/feeds"
	domaingames "github.com/preston-bernstein/mlb-live-service/internal/domain/games"
)

const (
	messageNoGames = "No games scheduled"
	defaultStatus  = "Scheduled"
)

// Status substrings that mean the game has not started. Matching is case-sensitive.
var upcomingMarkers = []string{"Scheduled", "Pre-Game", "Warmup"}

// resolveSchedule picks the candidate game. When done is true the response is
// terminal and game is unset; otherwise game must go through the aggregator.
func resolveSchedule(sched *feeds.Schedule, target Target) (game feeds.ScheduleGame, resp domaingames.Response, done bool) {
	if sched == nil || len(sched.Dates) == 0 {
		return game, domaingames.MessageResponse(messageNoGames), true
	}

	game, ok := pickGame(sched.Dates, target.ID)
	if !ok {
		return game, domaingames.MessageResponse(noGameMessage(target.Name)), true
	}

	if isUpcoming(gameStatus(game)) {
		return game, domaingames.Response{NextGame: nextGame(game, target.ID)}, true
	}
	return game, domaingames.Response{}, false
}

func noGameMessage(teamName string) string {
	return fmt.Sprintf("No %s game found in window", teamName)
}

// pickGame takes the first date that has games, preferring one the team plays in.
func pickGame(dates []feeds.ScheduleDate, teamID int64) (feeds.ScheduleGame, bool) {
	for _, date := range dates {
		if len(date.Games) == 0 {
			continue
		}
		for _, g := range date.Games {
			if g.Involves(teamID) {
				return g, true
			}
		}
		return date.Games[0], true
	}
	return feeds.ScheduleGame{}, false
}

func gameStatus(g feeds.ScheduleGame) string {
	if g.Status != nil {
		if g.Status.DetailedState != "" {
			return g.Status.DetailedState
		}
		if g.Status.AbstractGameState != "" {
			return g.Status.AbstractGameState
		}
	}
	return defaultStatus
}

func isUpcoming(status string) bool {
	for _, marker := range upcomingMarkers {
		if strings.Contains(status, marker) {
			return true
		}
	}
	return false
}

// nextGame names the side that is not the target team as the opponent.
func nextGame(g feeds.ScheduleGame, teamID int64) *domaingames.NextGame {
	opponent := g.HomeTeam()
	if opponent != nil && opponent.ID == teamID {
		opponent = g.AwayTeam()
	}

	out := &domaingames.NextGame{Date: g.GameDate}
	if opponent != nil {
		out.Opponent = opponent.Name
	}
	if g.Venue != nil {
		out.Venue = g.Venue.Name
	}
	return out
}
