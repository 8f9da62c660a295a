package feeds

import (
	"encoding/json"
	"testing"
)

func TestPlayerKeyRoundTrip(t *testing.T) {
	if got := PlayerKey(543037); got != "ID543037" {
		t.Fatalf("unexpected key %s", got)
	}
	id, ok := ParsePlayerKey("ID543037")
	if !ok || id != 543037 {
		t.Fatalf("expected 543037, got %d (%v)", id, ok)
	}
	for _, bad := range []string{"", "543037", "IDabc", "ID0", "id543037"} {
		if _, ok := ParsePlayerKey(bad); ok {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestNewDirectorySkipsMalformedKeys(t *testing.T) {
	dir := NewDirectory(map[string]Person{
		"ID1":  {FullName: "One"},
		"oops": {FullName: "Bad"},
	})
	if len(dir) != 1 {
		t.Fatalf("expected one entry, got %d", len(dir))
	}
	if p, ok := dir.Lookup(1); !ok || p.FullName != "One" {
		t.Fatalf("expected lookup of id 1, got %+v %v", p, ok)
	}
	if _, ok := dir.Lookup(0); ok {
		t.Fatalf("expected zero id to never resolve")
	}
	var nilDir Directory
	if _, ok := nilDir.Lookup(1); ok {
		t.Fatalf("expected nil directory lookup to miss")
	}
}

func TestBoxPlayerNamePrefersPerson(t *testing.T) {
	p := BoxPlayer{Person: &Person{FullName: "Nested"}, FullName: "Flat"}
	if p.Name() != "Nested" {
		t.Fatalf("expected nested name, got %s", p.Name())
	}
	p.Person = &Person{}
	if p.Name() != "Flat" {
		t.Fatalf("expected flat name fallback, got %s", p.Name())
	}
}

func TestBoxscoreStarterIDToleratesMissingData(t *testing.T) {
	var box *Boxscore
	if side := box.Side(true); side != nil {
		t.Fatalf("expected nil side from nil boxscore")
	}
	var team *BoxscoreTeam
	if team.StarterID() != 0 {
		t.Fatalf("expected zero starter from nil team")
	}
	team = &BoxscoreTeam{Pitchers: []int64{543037, 1}}
	if team.StarterID() != 543037 {
		t.Fatalf("expected first listed pitcher")
	}
}

func TestRunnerRefPlayerID(t *testing.T) {
	cases := []struct {
		ref  *RunnerRef
		want int64
	}{
		{nil, 0},
		{&RunnerRef{ID: 5}, 5},
		{&RunnerRef{Player: &IDRef{ID: 6}}, 6},
		{&RunnerRef{Person: &IDRef{ID: 7}}, 7},
		{&RunnerRef{Player: &IDRef{}, Person: &IDRef{ID: 8}}, 8},
		{&RunnerRef{}, 0},
	}
	for _, tc := range cases {
		if got := tc.ref.PlayerID(); got != tc.want {
			t.Fatalf("expected %d, got %d", tc.want, got)
		}
	}
}

func TestLiveFeedDecodesSparsePayload(t *testing.T) {
	var feed LiveFeed
	if err := json.Unmarshal([]byte(`{"gameData":{"teams":null},"liveData":{"linescore":{"outs":null}}}`), &feed); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if feed.GameData == nil || feed.GameData.Teams != nil {
		t.Fatalf("expected nil teams, got %+v", feed.GameData)
	}
	if feed.LiveData.Linescore.Outs != nil {
		t.Fatalf("expected nil outs")
	}
}

func TestScheduleGameInvolves(t *testing.T) {
	g := ScheduleGame{Teams: &Matchup{
		Home: &MatchupSide{Team: &TeamRef{ID: 119}},
		Away: &MatchupSide{Team: &TeamRef{ID: 137}},
	}}
	if !g.Involves(119) || !g.Involves(137) || g.Involves(1) {
		t.Fatalf("unexpected involvement result")
	}
	if (ScheduleGame{}).Involves(119) {
		t.Fatalf("expected empty game to involve nobody")
	}
}
