package games

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/mlb-live-service/internal/domain/feeds"
	"github.com/preston-bernstein/mlb-live-service/internal/providers"
	"github.com/preston-bernstein/mlb-live-service/internal/testutil"
	"github.com/preston-bernstein/mlb-live-service/internal/timeutil"
)

var dodgers = Target{ID: testutil.DodgersID, Name: "Dodgers"}

func newTestService(p providers.FeedProvider) *Service {
	svc := NewService(p, dodgers, time.UTC)
	svc.now = testutil.NowAt(time.Date(2024, 9, 28, 3, 0, 0, 0, time.UTC))
	return svc
}

func liveProvider() *testutil.StubProvider {
	return &testutil.StubProvider{
		Schedule: testutil.ScheduleWith("2024-09-28",
			testutil.ScheduledGame(745001, testutil.DodgersID, "Los Angeles Dodgers", testutil.GiantsID, "San Francisco Giants", "In Progress")),
		Live: testutil.InProgressLiveFeed(),
		Box:  testutil.BoxscoreWithStarters(testutil.HomeStarter, testutil.AwayStarter),
	}
}

func TestLiveEmptyScheduleReturnsNoGamesMessage(t *testing.T) {
	svc := newTestService(&testutil.StubProvider{Schedule: &feeds.Schedule{}})

	resp, err := svc.Live(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Message != "No games scheduled" || resp.NextGame != nil || resp.LiveGame != nil {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestLiveNilScheduleReturnsNoGamesMessage(t *testing.T) {
	svc := newTestService(&testutil.StubProvider{})

	resp, err := svc.Live(context.Background())
	if err != nil || resp.Message != "No games scheduled" {
		t.Fatalf("expected no games message, got %+v err=%v", resp, err)
	}
}

func TestLiveDatesWithoutGamesReturnsNotFoundMessage(t *testing.T) {
	svc := newTestService(&testutil.StubProvider{Schedule: testutil.ScheduleWith("2024-09-28")})

	resp, err := svc.Live(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Message != "No Dodgers game found in window" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestLiveQueriesSevenDayWindowForTarget(t *testing.T) {
	p := &testutil.StubProvider{Schedule: &feeds.Schedule{}}
	svc := newTestService(p)
	svc.loc = time.FixedZone("PDT", -7*60*60)

	if _, err := svc.Live(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	teamID, window := p.LastScheduleQuery()
	if teamID != testutil.DodgersID {
		t.Fatalf("expected team %d, got %d", testutil.DodgersID, teamID)
	}
	want := timeutil.Window{Start: "2024-09-27", End: "2024-10-03"}
	if window != want {
		t.Fatalf("expected window %+v, got %+v", want, window)
	}
}

func TestLiveUpcomingGameReturnsNextGame(t *testing.T) {
	for _, status := range []string{"Scheduled", "Pre-Game", "Warmup", "Delayed Start: Scheduled"} {
		p := &testutil.StubProvider{Schedule: testutil.ScheduleWith("2024-09-28",
			testutil.ScheduledGame(745001, testutil.GiantsID, "San Francisco Giants", testutil.DodgersID, "Los Angeles Dodgers", status))}
		svc := newTestService(p)

		resp, err := svc.Live(context.Background())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", status, err)
		}
		if resp.NextGame == nil {
			t.Fatalf("%s: expected nextGame, got %+v", status, resp)
		}
		if resp.NextGame.Opponent != "San Francisco Giants" {
			t.Fatalf("%s: unexpected opponent %q", status, resp.NextGame.Opponent)
		}
		if resp.NextGame.Date != "2024-09-28T02:10:00Z" || resp.NextGame.Venue != "Dodger Stadium" {
			t.Fatalf("%s: unexpected next game %+v", status, resp.NextGame)
		}
		if p.LiveCalls.Load() != 0 || p.BoxCalls.Load() != 0 {
			t.Fatalf("%s: upcoming game must not fetch live data", status)
		}
	}
}

func TestLiveInProgressScenario(t *testing.T) {
	p := liveProvider()
	svc := newTestService(p)

	resp, err := svc.Live(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.LastGamePk() != 745001 {
		t.Fatalf("expected live data for game 745001, got %d", p.LastGamePk())
	}
	lg := resp.LiveGame
	if lg == nil || resp.Message != "" || resp.NextGame != nil {
		t.Fatalf("expected liveGame only, got %+v", resp)
	}
	if *lg.Home.Team != "Los Angeles Dodgers" || lg.Home.Score != 3 {
		t.Fatalf("unexpected home line %+v", lg.Home)
	}
	if *lg.Away.Team != "San Francisco Giants" || lg.Away.Score != 2 {
		t.Fatalf("unexpected away line %+v", lg.Away)
	}
	if lg.Inning != "Top 5" {
		t.Fatalf("expected Top 5, got %q", lg.Inning)
	}
	if got := lg.Starters["LAD"]; got == nil || *got != "Walker Buehler (R)" {
		t.Fatalf("unexpected home starter %v", got)
	}
	if got := lg.Starters["SF"]; got == nil || *got != "Logan Webb (R)" {
		t.Fatalf("unexpected away starter %v", got)
	}
	if lg.StarterMismatch {
		t.Fatalf("expected no starter mismatch")
	}
	if lg.CurrentPitcher == nil || *lg.CurrentPitcher != "LAD: Walker Buehler (R)" {
		t.Fatalf("unexpected current pitcher %v", lg.CurrentPitcher)
	}
	if lg.CurrentBatter == nil || *lg.CurrentBatter != "SF: Shohei Ohtani (L) — Count 2-1, 1 out" {
		t.Fatalf("unexpected current batter %v", lg.CurrentBatter)
	}
	if strings.Join(lg.Runners, "|") != "1B: Mookie Betts|3B: Freddie Freeman" {
		t.Fatalf("unexpected runners %v", lg.Runners)
	}
	if lg.LastPlay == nil || !strings.HasPrefix(*lg.LastPlay, "Mookie Betts singles") {
		t.Fatalf("unexpected last play %v", lg.LastPlay)
	}
}

func TestLiveFinalGameIsAggregated(t *testing.T) {
	p := liveProvider()
	p.Schedule.Dates[0].Games[0].Status = &feeds.GameStatus{AbstractGameState: "Final"}
	svc := newTestService(p)

	resp, err := svc.Live(context.Background())
	if err != nil || resp.LiveGame == nil {
		t.Fatalf("expected liveGame for final game, got %+v err=%v", resp, err)
	}
}

func TestLiveIsIdempotent(t *testing.T) {
	svc := newTestService(liveProvider())

	first, err := svc.Live(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Live(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if !bytes.Equal(a, b) {
		t.Fatalf("expected identical payloads:\n%s\n%s", a, b)
	}
}

func TestLiveScheduleErrorPropagates(t *testing.T) {
	upstream := &providers.UpstreamError{Endpoint: providers.EndpointSchedule, StatusCode: 503, Err: errors.New("unavailable")}
	svc := newTestService(&testutil.StubProvider{ScheduleErr: upstream})

	_, err := svc.Live(context.Background())
	if !errors.Is(err, upstream) {
		t.Fatalf("expected schedule error, got %v", err)
	}
}

func TestLiveEitherFetchFailureFailsThePair(t *testing.T) {
	boom := errors.New("boom")

	p := liveProvider()
	p.LiveErr = boom
	if _, err := newTestService(p).Live(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected live feed error, got %v", err)
	}

	p = liveProvider()
	p.BoxErr = boom
	resp, err := newTestService(p).Live(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected boxscore error, got %v", err)
	}
	if resp.LiveGame != nil || resp.Message != "" {
		t.Fatalf("expected no partial response, got %+v", resp)
	}
	if p.LiveCalls.Load() != 1 || p.BoxCalls.Load() != 1 {
		t.Fatalf("expected both fetches to be issued")
	}
}

func TestLiveFetchesLiveAndBoxscoreConcurrently(t *testing.T) {
	stub := liveProvider()
	p := &testutil.BlockingProvider{Release: make(chan struct{})}
	p.Schedule, p.Live, p.Box = stub.Schedule, stub.Live, stub.Box
	svc := newTestService(p)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Live(context.Background())
		done <- err
	}()

	deadline := time.After(2 * time.Second)
	for p.InFlight.Load() < 2 {
		select {
		case <-deadline:
			close(p.Release)
			t.Fatalf("expected both fetches in flight, saw %d", p.InFlight.Load())
		case <-time.After(time.Millisecond):
		}
	}
	close(p.Release)

	if err := <-done; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.MaxSeen.Load() != 2 {
		t.Fatalf("expected max 2 in flight, got %d", p.MaxSeen.Load())
	}
}

func TestLiveWithoutProviderFails(t *testing.T) {
	svc := NewService(nil, dodgers, nil)
	if _, err := svc.Live(context.Background()); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable, got %v", err)
	}
}

func TestLiveToleratesEmptyDocuments(t *testing.T) {
	p := liveProvider()
	p.Live = &feeds.LiveFeed{}
	p.Box = nil
	svc := newTestService(p)

	resp, err := svc.Live(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, _ := json.Marshal(resp)
	want := `{"liveGame":{"away":{"team":null,"score":0},"home":{"team":null,"score":0},"inning":"","starters":{"AWAY":null,"HOME":null},"currentPitcher":null,"currentBatter":null,"runners":null,"lastPlay":null,"starterMismatch":false}}`
	if string(raw) != want {
		t.Fatalf("unexpected payload\n got %s\nwant %s", raw, want)
	}
}
