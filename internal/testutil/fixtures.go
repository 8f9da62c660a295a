package testutil

import "github.com/preston-bernstein/mlb-live-service/internal/domain/feeds"

// Team ids and player ids used across test payloads.
const (
	DodgersID   int64 = 119
	GiantsID    int64 = 137
	PadresID    int64 = 135
	HomeStarter int64 = 543037
	AwayStarter int64 = 657277
	BatterID    int64 = 660271
	RunnerOneID int64 = 605141
	RunnerTwoID int64 = 571970
)

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }

// ScheduleWith wraps games into a single-date schedule.
func ScheduleWith(date string, games ...feeds.ScheduleGame) *feeds.Schedule {
	return &feeds.Schedule{Dates: []feeds.ScheduleDate{{Date: date, Games: games}}}
}

// ScheduledGame builds a schedule entry between two teams with the given detailed status.
func ScheduledGame(gamePk, homeID int64, homeName string, awayID int64, awayName, status string) feeds.ScheduleGame {
	return feeds.ScheduleGame{
		GamePk:   gamePk,
		GameDate: "2024-09-28T02:10:00Z",
		Status:   &feeds.GameStatus{DetailedState: status},
		Teams: &feeds.Matchup{
			Home: &feeds.MatchupSide{Team: &feeds.TeamRef{ID: homeID, Name: homeName}},
			Away: &feeds.MatchupSide{Team: &feeds.TeamRef{ID: awayID, Name: awayName}},
		},
		Venue: &feeds.Venue{Name: "Dodger Stadium"},
	}
}

// InProgressLiveFeed is a well-formed live feed: Dodgers home vs Giants, top 5,
// Giants batting with runners on first and third, probable pitchers announced.
func InProgressLiveFeed() *feeds.LiveFeed {
	return &feeds.LiveFeed{
		GameData: &feeds.GameData{
			Teams: &feeds.GameTeams{
				Home: &feeds.Team{ID: DodgersID, Name: "Los Angeles Dodgers", Abbreviation: "LAD"},
				Away: &feeds.Team{ID: GiantsID, Name: "San Francisco Giants", Abbreviation: "SF"},
			},
			Players: map[string]feeds.Person{
				feeds.PlayerKey(HomeStarter): {ID: HomeStarter, FullName: "Walker Buehler", PitchHand: &feeds.Code{Code: "R"}, BatSide: &feeds.Code{Code: "R"}},
				feeds.PlayerKey(AwayStarter): {ID: AwayStarter, FullName: "Logan Webb", PitchHand: &feeds.Code{Code: "R"}, BatSide: &feeds.Code{Code: "R"}},
				feeds.PlayerKey(BatterID):    {ID: BatterID, FullName: "Shohei Ohtani", PitchHand: &feeds.Code{Code: "R"}, BatSide: &feeds.Code{Code: "l"}},
				feeds.PlayerKey(RunnerOneID): {ID: RunnerOneID, FullName: "Mookie Betts"},
				feeds.PlayerKey(RunnerTwoID): {ID: RunnerTwoID, FullName: "Freddie Freeman"},
			},
			ProbablePitchers: &feeds.ProbablePitchers{
				Home: &feeds.Person{ID: HomeStarter, FullName: "Walker Buehler"},
				Away: &feeds.Person{ID: AwayStarter, FullName: "Logan Webb"},
			},
			Status: &feeds.GameStatus{AbstractGameState: "Live", DetailedState: "In Progress"},
		},
		LiveData: &feeds.LiveData{
			Linescore: &feeds.Linescore{
				CurrentInning: 5,
				InningState:   "Top",
				Outs:          IntPtr(1),
				Teams: &feeds.LinescoreTeams{
					Home: &feeds.Runs{Runs: 3},
					Away: &feeds.Runs{Runs: 2},
				},
				Defense: &feeds.LinescoreFielding{Team: &feeds.TeamRef{ID: DodgersID}},
				Offense: &feeds.LinescoreFielding{
					Team:  &feeds.TeamRef{ID: GiantsID},
					First: &feeds.RunnerRef{ID: RunnerOneID},
					Third: &feeds.RunnerRef{Person: &feeds.IDRef{ID: RunnerTwoID}},
				},
			},
			Plays: &feeds.Plays{CurrentPlay: &feeds.Play{
				Count: &feeds.Count{Balls: 2, Strikes: 1, Outs: IntPtr(1)},
				Matchup: &feeds.PlayMatchup{
					Pitcher: &feeds.Person{ID: HomeStarter, FullName: "Walker Buehler"},
					Batter:  &feeds.Person{ID: BatterID},
				},
				Result: &feeds.PlayResult{Description: "Mookie Betts singles on a line drive to left fielder."},
			}},
		},
	}
}

// BoxscoreWithStarters lists one pitcher per side with box player records.
func BoxscoreWithStarters(homeStarter, awayStarter int64) *feeds.Boxscore {
	return &feeds.Boxscore{Teams: &feeds.BoxscoreTeams{
		Home: &feeds.BoxscoreTeam{
			Pitchers: []int64{homeStarter},
			Players: map[string]feeds.BoxPlayer{
				feeds.PlayerKey(homeStarter): {Person: &feeds.Person{ID: homeStarter, FullName: "Walker Buehler"}, PitchHand: &feeds.Code{Code: "r"}},
			},
		},
		Away: &feeds.BoxscoreTeam{
			Pitchers: []int64{awayStarter},
			Players: map[string]feeds.BoxPlayer{
				feeds.PlayerKey(awayStarter): {Person: &feeds.Person{ID: awayStarter, FullName: "Logan Webb"}, PitchHand: &feeds.Code{Code: "R"}},
			},
		},
	}}
}
