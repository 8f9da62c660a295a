package games

import (
	"strings"

	"github.com/preston-bernstein/mlb-live-service/internal/domain/feeds"
)

// Name and hand resolvers. Each takes an id (0 meaning unknown) or a partial
// record and returns "" when nothing resolves.

// handSuffix renders a hand or side code as " (X)".
func handSuffix(code *feeds.Code) string {
	if code == nil || code.Code == "" {
		return ""
	}
	return " (" + strings.ToUpper(code.Code) + ")"
}

// directoryName looks a player up in the live feed directory.
func directoryName(dir feeds.Directory, id int64) string {
	p, ok := dir.Lookup(id)
	if !ok {
		return ""
	}
	return p.FullName
}

// personName prefers the record's own name, then the directory entry for its id.
func personName(ref *feeds.Person, dir feeds.Directory) string {
	if ref == nil {
		return ""
	}
	if ref.FullName != "" {
		return ref.FullName
	}
	return directoryName(dir, ref.ID)
}

// pitchHand and batSide read hand codes from the directory only.
func pitchHand(dir feeds.Directory, id int64) string {
	p, _ := dir.Lookup(id)
	return handSuffix(p.PitchHand)
}

func batSide(dir feeds.Directory, id int64) string {
	p, _ := dir.Lookup(id)
	return handSuffix(p.BatSide)
}

// boxStarter resolves the confirmed starter from the boxscore player table.
func boxStarter(box feeds.BoxDirectory, id int64) (name, hand string) {
	p, ok := box.Lookup(id)
	if !ok {
		return "", ""
	}
	name = p.Name()
	if name == "" {
		return "", ""
	}
	return name, handSuffix(p.PitchHand)
}

// probableStarter resolves an announced starter through the directory, falling
// back to the probable-pitcher record's own fields.
func probableStarter(probable *feeds.Person, dir feeds.Directory) (name, hand string) {
	if probable == nil {
		return "", ""
	}
	p, ok := dir.Lookup(probable.ID)
	name = p.FullName
	if name == "" {
		name = probable.FullName
	}
	if name == "" {
		return "", ""
	}
	code := p.PitchHand
	if !ok || code == nil {
		code = probable.PitchHand
	}
	return name, handSuffix(code)
}

// starterFor prefers the boxscore's first listed pitcher and falls back to the
// probable pitcher when the boxscore yields no name.
func starterFor(side *feeds.BoxscoreTeam, probable *feeds.Person, dir feeds.Directory) string {
	var players map[string]feeds.BoxPlayer
	if side != nil {
		players = side.Players
	}
	name, hand := boxStarter(feeds.NewBoxDirectory(players), side.StarterID())
	if name == "" {
		name, hand = probableStarter(probable, dir)
	}
	if name == "" {
		return ""
	}
	return name + hand
}

// runnerName resolves a baserunner reference through the directory.
func runnerName(ref *feeds.RunnerRef, dir feeds.Directory) string {
	return directoryName(dir, ref.PlayerID())
}

// abbrFor maps a linescore team reference onto the home or away abbreviation.
func abbrFor(ref *feeds.TeamRef, home, away teamSide) string {
	if ref == nil || ref.ID == 0 {
		return ""
	}
	switch ref.ID {
	case home.id:
		return home.abbr
	case away.id:
		return away.abbr
	default:
		return ""
	}
}
