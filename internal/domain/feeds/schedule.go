// Package feeds holds the upstream StatsAPI documents the service consumes.
// Every optional subtree is a pointer, map or slice so absent data decodes to nil.
package feeds

// Schedule is the schedule-by-team-and-date-range document.
type Schedule struct {
	Dates []ScheduleDate `json:"dates"`
}

type ScheduleDate struct {
	Date  string         `json:"date"`
	Games []ScheduleGame `json:"games"`
}

type ScheduleGame struct {
	GamePk   int64       `json:"gamePk"`
	GameDate string      `json:"gameDate"`
	Status   *GameStatus `json:"status"`
	Teams    *Matchup    `json:"teams"`
	Venue    *Venue      `json:"venue"`
}

type GameStatus struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
}

// Matchup is the home/away pairing of a scheduled game.
type Matchup struct {
	Home *MatchupSide `json:"home"`
	Away *MatchupSide `json:"away"`
}

type MatchupSide struct {
	Team *TeamRef `json:"team"`
}

type TeamRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Venue struct {
	Name string `json:"name"`
}

// HomeTeam returns the home team reference, or nil.
func (g ScheduleGame) HomeTeam() *TeamRef {
	if g.Teams == nil || g.Teams.Home == nil {
		return nil
	}
	return g.Teams.Home.Team
}

// AwayTeam returns the away team reference, or nil.
func (g ScheduleGame) AwayTeam() *TeamRef {
	if g.Teams == nil || g.Teams.Away == nil {
		return nil
	}
	return g.Teams.Away.Team
}

// Involves reports whether either side of the game is the given team.
func (g ScheduleGame) Involves(teamID int64) bool {
	if home := g.HomeTeam(); home != nil && home.ID == teamID {
		return true
	}
	if away := g.AwayTeam(); away != nil && away.ID == teamID {
		return true
	}
	return false
}
