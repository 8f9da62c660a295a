package games

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/mlb-live-service/internal/domain/feeds"
)

const (
	defaultHomeAbbr = "HOME"
	defaultAwayAbbr = "AWAY"
)

// gameState is everything the aggregator derives from one live feed and
// boxscore pair. Unresolved strings are empty.
type gameState struct {
	home, away teamSide
	inning     string

	homeStarter, awayStarter string
	starterMismatch          bool

	atBat    atBat
	runners  []string
	lastPlay string
}

type teamSide struct {
	id   int64
	name string
	abbr string
	runs int
}

type atBat struct {
	pitcher, pitcherHand string
	batter, batterHand   string
	balls, strikes, outs int
	defense, offense     string
}

type base struct {
	label string
	ref   func(*feeds.LinescoreFielding) *feeds.RunnerRef
}

var bases = []base{
	{label: "1B", ref: func(f *feeds.LinescoreFielding) *feeds.RunnerRef { return f.First }},
	{label: "2B", ref: func(f *feeds.LinescoreFielding) *feeds.RunnerRef { return f.Second }},
	{label: "3B", ref: func(f *feeds.LinescoreFielding) *feeds.RunnerRef { return f.Third }},
}

// fetchGame issues the live feed and boxscore calls in parallel and waits for
// both. Either failure fails the pair; nothing partial is returned.
func (s *Service) fetchGame(ctx context.Context, gamePk int64) (*feeds.LiveFeed, *feeds.Boxscore, error) {
	var (
		g    errgroup.Group
		live *feeds.LiveFeed
		box  *feeds.Boxscore
	)
	g.Go(func() error {
		var err error
		live, err = s.provider.FetchLiveFeed(ctx, gamePk)
		return err
	})
	g.Go(func() error {
		var err error
		box, err = s.provider.FetchBoxscore(ctx, gamePk)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return live, box, nil
}

// aggregate reconciles the two documents. Either may be nil or sparse.
func aggregate(live *feeds.LiveFeed, box *feeds.Boxscore) gameState {
	if live == nil {
		live = &feeds.LiveFeed{}
	}
	gameData := live.GameData
	if gameData == nil {
		gameData = &feeds.GameData{}
	}
	liveData := live.LiveData
	if liveData == nil {
		liveData = &feeds.LiveData{}
	}
	linescore := liveData.Linescore
	if linescore == nil {
		linescore = &feeds.Linescore{}
	}
	var play *feeds.Play
	if liveData.Plays != nil {
		play = liveData.Plays.CurrentPlay
	}
	if play == nil {
		play = &feeds.Play{}
	}

	dir := feeds.NewDirectory(gameData.Players)

	var state gameState
	state.home, state.away = teamSides(gameData.Teams, linescore.Teams)
	state.inning = inningLabel(linescore, gameData.Status)

	probable := gameData.ProbablePitchers
	if probable == nil {
		probable = &feeds.ProbablePitchers{}
	}
	state.homeStarter = starterFor(box.Side(true), probable.Home, dir)
	state.awayStarter = starterFor(box.Side(false), probable.Away, dir)
	state.starterMismatch = mismatched(box.Side(true).StarterID(), probable.Home) ||
		mismatched(box.Side(false).StarterID(), probable.Away)

	state.atBat = currentAtBat(play, linescore, dir, state.home, state.away)
	state.runners = runners(linescore.Offense, dir)
	if play.Result != nil {
		state.lastPlay = play.Result.Description
	}
	return state
}

func teamSides(teams *feeds.GameTeams, runs *feeds.LinescoreTeams) (home, away teamSide) {
	home.abbr, away.abbr = defaultHomeAbbr, defaultAwayAbbr
	if teams != nil {
		fillSide(&home, teams.Home)
		fillSide(&away, teams.Away)
	}
	if runs != nil {
		if runs.Home != nil {
			home.runs = runs.Home.Runs
		}
		if runs.Away != nil {
			away.runs = runs.Away.Runs
		}
	}
	return home, away
}

func fillSide(side *teamSide, team *feeds.Team) {
	if team == nil {
		return
	}
	side.id = team.ID
	side.name = team.Name
	if team.Abbreviation != "" {
		side.abbr = team.Abbreviation
	}
}

// inningLabel is "<state> <inning>" when both are known, else the game's detailed status.
func inningLabel(linescore *feeds.Linescore, status *feeds.GameStatus) string {
	if linescore.InningState != "" && linescore.CurrentInning != 0 {
		return linescore.InningState + " " + itoa(linescore.CurrentInning)
	}
	if status != nil {
		return status.DetailedState
	}
	return ""
}

// mismatched is true only when both the confirmed and probable ids are known and differ.
func mismatched(confirmedID int64, probable *feeds.Person) bool {
	if confirmedID == 0 || probable == nil || probable.ID == 0 {
		return false
	}
	return confirmedID != probable.ID
}

func currentAtBat(play *feeds.Play, linescore *feeds.Linescore, dir feeds.Directory, home, away teamSide) atBat {
	var ab atBat
	if play.Count != nil {
		ab.balls = play.Count.Balls
		ab.strikes = play.Count.Strikes
	}
	switch {
	case linescore.Outs != nil:
		ab.outs = *linescore.Outs
	case play.Count != nil && play.Count.Outs != nil:
		ab.outs = *play.Count.Outs
	}

	if linescore.Defense != nil {
		ab.defense = abbrFor(linescore.Defense.Team, home, away)
	}
	if linescore.Offense != nil {
		ab.offense = abbrFor(linescore.Offense.Team, home, away)
	}

	if m := play.Matchup; m != nil {
		if ab.pitcher = personName(m.Pitcher, dir); ab.pitcher != "" {
			ab.pitcherHand = pitchHand(dir, m.Pitcher.ID)
		}
		if ab.batter = personName(m.Batter, dir); ab.batter != "" {
			ab.batterHand = batSide(dir, m.Batter.ID)
		}
	}
	return ab
}

// runners lists occupied bases in 1B, 2B, 3B order, skipping unresolved names.
func runners(offense *feeds.LinescoreFielding, dir feeds.Directory) []string {
	if offense == nil {
		return nil
	}
	var out []string
	for _, b := range bases {
		if name := runnerName(b.ref(offense), dir); name != "" {
			out = append(out, b.label+": "+name)
		}
	}
	return out
}
