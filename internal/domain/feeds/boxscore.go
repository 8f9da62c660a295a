package feeds

// Boxscore is the boxscore-by-game-id document.
type Boxscore struct {
	Teams *BoxscoreTeams `json:"teams"`
}

type BoxscoreTeams struct {
	Home *BoxscoreTeam `json:"home"`
	Away *BoxscoreTeam `json:"away"`
}

// BoxscoreTeam lists pitchers in order of appearance and player records keyed "ID<id>".
type BoxscoreTeam struct {
	Pitchers []int64              `json:"pitchers"`
	Players  map[string]BoxPlayer `json:"players"`
}

type BoxPlayer struct {
	Person    *Person `json:"person"`
	FullName  string  `json:"fullName"`
	PitchHand *Code   `json:"pitchHand"`
}

// Name prefers the nested person name over the record's own.
func (p BoxPlayer) Name() string {
	if p.Person != nil && p.Person.FullName != "" {
		return p.Person.FullName
	}
	return p.FullName
}

// Side picks the home or away team block.
func (b *Boxscore) Side(home bool) *BoxscoreTeam {
	if b == nil || b.Teams == nil {
		return nil
	}
	if home {
		return b.Teams.Home
	}
	return b.Teams.Away
}

// StarterID returns the first listed pitcher, or 0 when none is listed.
func (t *BoxscoreTeam) StarterID() int64 {
	if t == nil || len(t.Pitchers) == 0 {
		return 0
	}
	return t.Pitchers[0]
}
