package feeds

// LiveFeed is the live-feed-by-game-id document.
type LiveFeed struct {
	GameData *GameData `json:"gameData"`
	LiveData *LiveData `json:"liveData"`
}

type GameData struct {
	Teams            *GameTeams        `json:"teams"`
	Players          map[string]Person `json:"players"`
	ProbablePitchers *ProbablePitchers `json:"probablePitchers"`
	Status           *GameStatus       `json:"status"`
}

type GameTeams struct {
	Home *Team `json:"home"`
	Away *Team `json:"away"`
}

type Team struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type ProbablePitchers struct {
	Home *Person `json:"home"`
	Away *Person `json:"away"`
}

// Person is a player record from the live feed player directory. Probable
// pitchers and matchup participants use the same shape with fewer fields set.
type Person struct {
	ID        int64  `json:"id"`
	FullName  string `json:"fullName"`
	PitchHand *Code  `json:"pitchHand"`
	BatSide   *Code  `json:"batSide"`
}

type Code struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type LiveData struct {
	Linescore *Linescore `json:"linescore"`
	Plays     *Plays     `json:"plays"`
}

type Linescore struct {
	CurrentInning int                `json:"currentInning"`
	InningState   string             `json:"inningState"`
	Outs          *int               `json:"outs"`
	Teams         *LinescoreTeams    `json:"teams"`
	Defense       *LinescoreFielding `json:"defense"`
	Offense       *LinescoreFielding `json:"offense"`
}

type LinescoreTeams struct {
	Home *Runs `json:"home"`
	Away *Runs `json:"away"`
}

type Runs struct {
	Runs int `json:"runs"`
}

// LinescoreFielding is the defense or offense block; only offense carries runners.
type LinescoreFielding struct {
	Team   *TeamRef   `json:"team"`
	First  *RunnerRef `json:"first"`
	Second *RunnerRef `json:"second"`
	Third  *RunnerRef `json:"third"`
}

// RunnerRef points at a baserunner by a direct id or a nested player/person id.
type RunnerRef struct {
	ID     int64  `json:"id"`
	Player *IDRef `json:"player"`
	Person *IDRef `json:"person"`
}

type IDRef struct {
	ID int64 `json:"id"`
}

// PlayerID returns the first non-zero id the reference carries.
func (r *RunnerRef) PlayerID() int64 {
	switch {
	case r == nil:
		return 0
	case r.ID != 0:
		return r.ID
	case r.Player != nil && r.Player.ID != 0:
		return r.Player.ID
	case r.Person != nil:
		return r.Person.ID
	default:
		return 0
	}
}

type Plays struct {
	CurrentPlay *Play `json:"currentPlay"`
}

type Play struct {
	Count   *Count       `json:"count"`
	Matchup *PlayMatchup `json:"matchup"`
	Result  *PlayResult  `json:"result"`
}

type Count struct {
	Balls   int  `json:"balls"`
	Strikes int  `json:"strikes"`
	Outs    *int `json:"outs"`
}

type PlayMatchup struct {
	Pitcher *Person `json:"pitcher"`
	Batter  *Person `json:"batter"`
}

type PlayResult struct {
	Description string `json:"description"`
}
