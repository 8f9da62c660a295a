package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/mlb-live-service/internal/domain/feeds"
	"github.com/preston-bernstein/mlb-live-service/internal/timeutil"
)

// StubProvider serves canned upstream documents and counts calls per endpoint.
// Errors take precedence over documents.
type StubProvider struct {
	Schedule    *feeds.Schedule
	Live        *feeds.LiveFeed
	Box         *feeds.Boxscore
	ScheduleErr error
	LiveErr     error
	BoxErr      error

	ScheduleCalls atomic.Int32
	LiveCalls     atomic.Int32
	BoxCalls      atomic.Int32

	mu         sync.Mutex
	lastTeamID int64
	lastWindow timeutil.Window
	lastGamePk int64
}

func (p *StubProvider) FetchSchedule(ctx context.Context, teamID int64, window timeutil.Window) (*feeds.Schedule, error) {
	p.ScheduleCalls.Add(1)
	p.mu.Lock()
	p.lastTeamID = teamID
	p.lastWindow = window
	p.mu.Unlock()
	if p.ScheduleErr != nil {
		return nil, p.ScheduleErr
	}
	return p.Schedule, nil
}

func (p *StubProvider) FetchLiveFeed(ctx context.Context, gamePk int64) (*feeds.LiveFeed, error) {
	p.LiveCalls.Add(1)
	p.recordGame(gamePk)
	if p.LiveErr != nil {
		return nil, p.LiveErr
	}
	return p.Live, nil
}

func (p *StubProvider) FetchBoxscore(ctx context.Context, gamePk int64) (*feeds.Boxscore, error) {
	p.BoxCalls.Add(1)
	p.recordGame(gamePk)
	if p.BoxErr != nil {
		return nil, p.BoxErr
	}
	return p.Box, nil
}

// LastScheduleQuery returns the team id and window of the most recent schedule call.
func (p *StubProvider) LastScheduleQuery() (int64, timeutil.Window) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastTeamID, p.lastWindow
}

// LastGamePk returns the game id of the most recent live or boxscore call.
func (p *StubProvider) LastGamePk() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastGamePk
}

func (p *StubProvider) recordGame(gamePk int64) {
	p.mu.Lock()
	p.lastGamePk = gamePk
	p.mu.Unlock()
}

// BlockingProvider parks live and boxscore calls until Release is closed, so
// tests can observe that both were in flight at the same time.
type BlockingProvider struct {
	StubProvider
	Release  chan struct{}
	InFlight atomic.Int32
	MaxSeen  atomic.Int32
}

func (p *BlockingProvider) FetchLiveFeed(ctx context.Context, gamePk int64) (*feeds.LiveFeed, error) {
	p.enter()
	defer p.InFlight.Add(-1)
	<-p.Release
	return p.StubProvider.FetchLiveFeed(ctx, gamePk)
}

func (p *BlockingProvider) FetchBoxscore(ctx context.Context, gamePk int64) (*feeds.Boxscore, error) {
	p.enter()
	defer p.InFlight.Add(-1)
	<-p.Release
	return p.StubProvider.FetchBoxscore(ctx, gamePk)
}

func (p *BlockingProvider) enter() {
	n := p.InFlight.Add(1)
	for {
		seen := p.MaxSeen.Load()
		if n <= seen || p.MaxSeen.CompareAndSwap(seen, n) {
			return
		}
	}
}
