package games

// Response is the /api/live payload. Exactly one field is set.
type Response struct {
	Message  string    `json:"message,omitempty"`
	NextGame *NextGame `json:"nextGame,omitempty"`
	LiveGame *LiveGame `json:"liveGame,omitempty"`
}

// NextGame describes an upcoming game for the target team.
type NextGame struct {
	Opponent string `json:"opponent"`
	Date     string `json:"date"`
	Venue    string `json:"venue"`
}

// LiveGame is the normalized in-progress or final game state. Nullable fields
// are pointers and are always serialized.
type LiveGame struct {
	Away            TeamLine           `json:"away"`
	Home            TeamLine           `json:"home"`
	Inning          string             `json:"inning"`
	Starters        map[string]*string `json:"starters"`
	CurrentPitcher  *string            `json:"currentPitcher"`
	CurrentBatter   *string            `json:"currentBatter"`
	Runners         []string           `json:"runners"`
	LastPlay        *string            `json:"lastPlay"`
	StarterMismatch bool               `json:"starterMismatch"`
}

// TeamLine is one side's name and run total.
type TeamLine struct {
	Team  *string `json:"team"`
	Score int     `json:"score"`
}

// Outcome names the response shape for logs and metrics.
func (r Response) Outcome() string {
	switch {
	case r.LiveGame != nil:
		return OutcomeLiveGame
	case r.NextGame != nil:
		return OutcomeNextGame
	default:
		return OutcomeMessage
	}
}

const (
	OutcomeMessage  = "message"
	OutcomeNextGame = "next_game"
	OutcomeLiveGame = "live_game"
	OutcomeError    = "error"
)

// MessageResponse builds the terminal {message} shape.
func MessageResponse(msg string) Response {
	return Response{Message: msg}
}
