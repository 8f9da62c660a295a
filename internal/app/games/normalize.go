package games

import (
	"strconv"

	domaingames "github.com/preston-bernstein/mlb-live-service/internal/domain/games"
)

// normalize folds the aggregated state into the liveGame shape. Every field
// is present; unresolved values become null.
func normalize(state gameState) *domaingames.LiveGame {
	starters := make(map[string]*string, 2)
	starters[state.away.abbr] = optional(state.awayStarter)
	starters[state.home.abbr] = optional(state.homeStarter)

	var runners []string
	if len(state.runners) > 0 {
		runners = state.runners
	}

	return &domaingames.LiveGame{
		Away:            domaingames.TeamLine{Team: optional(state.away.name), Score: state.away.runs},
		Home:            domaingames.TeamLine{Team: optional(state.home.name), Score: state.home.runs},
		Inning:          state.inning,
		Starters:        starters,
		CurrentPitcher:  currentPitcher(state.atBat),
		CurrentBatter:   currentBatter(state.atBat),
		Runners:         runners,
		LastPlay:        optional(state.lastPlay),
		StarterMismatch: state.starterMismatch,
	}
}

// currentPitcher renders "ABBR: Name (H)", dropping the prefix when the defense is unknown.
func currentPitcher(ab atBat) *string {
	if ab.pitcher == "" {
		return nil
	}
	line := labelled(ab.defense, ab.pitcher+ab.pitcherHand)
	return &line
}

// currentBatter renders the batter like currentPitcher, followed by the count and outs.
func currentBatter(ab atBat) *string {
	if ab.batter == "" {
		return nil
	}
	line := labelled(ab.offense, ab.batter+ab.batterHand) +
		" — Count " + itoa(ab.balls) + "-" + itoa(ab.strikes) + ", " + outsLabel(ab.outs)
	return &line
}

func outsLabel(outs int) string {
	if outs == 1 {
		return "1 out"
	}
	return itoa(outs) + " outs"
}

func labelled(abbr, text string) string {
	if abbr == "" {
		return text
	}
	return abbr + ": " + text
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
