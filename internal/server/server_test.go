package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/mlb-live-service/internal/config"
	domaingames "github.com/preston-bernstein/mlb-live-service/internal/domain/games"
	"github.com/preston-bernstein/mlb-live-service/internal/metrics"
	"github.com/preston-bernstein/mlb-live-service/internal/providers"
	"github.com/preston-bernstein/mlb-live-service/internal/providers/fixture"
	"github.com/preston-bernstein/mlb-live-service/internal/providers/statsapi"
	"github.com/preston-bernstein/mlb-live-service/internal/testutil"
)

func testConfig() config.Config {
	return config.Config{
		Port:     "0",
		Provider: "fixture",
		Team:     config.TeamConfig{ID: testutil.DodgersID, Name: "Dodgers", Timezone: "UTC"},
		Metrics:  config.MetricsConfig{Enabled: false},
	}
}

func TestServerServesLiveGameFromInjectedProvider(t *testing.T) {
	provider := &testutil.StubProvider{
		Schedule: testutil.ScheduleWith("2024-09-28",
			testutil.ScheduledGame(745001, testutil.DodgersID, "Los Angeles Dodgers", testutil.GiantsID, "San Francisco Giants", "In Progress")),
		Live: testutil.InProgressLiveFeed(),
		Box:  testutil.BoxscoreWithStarters(testutil.HomeStarter, testutil.AwayStarter),
	}
	rec := metrics.NewRecorder()
	logger, _ := testutil.NewBufferLogger()
	srv := newServerWithMetrics(testConfig(), logger, provider, rec)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/api/live", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domaingames.Response
	testutil.DecodeJSON(t, rr, &resp)
	if resp.LiveGame == nil || resp.LiveGame.Inning != "Top 5" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if rec.UpstreamCalls(providers.EndpointSchedule) != 1 ||
		rec.UpstreamCalls(providers.EndpointLive) != 1 ||
		rec.UpstreamCalls(providers.EndpointBoxscore) != 1 {
		t.Fatalf("expected one instrumented call per endpoint")
	}
	if rec.Outcomes(domaingames.OutcomeLiveGame) != 1 {
		t.Fatalf("expected live outcome recorded")
	}
}

func TestServerServesHealthAndRoot(t *testing.T) {
	srv := newServerWithProvider(testConfig(), nil, &testutil.StubProvider{})
	router := srv.Handler()

	healthRec := testutil.Serve(router, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, healthRec, http.StatusOK)

	rootRec := testutil.Serve(router, http.MethodGet, "/", nil)
	testutil.AssertStatus(t, rootRec, http.StatusOK)
	if rootRec.Body.String() != "Dodgers Live API. Use /api/live" {
		t.Fatalf("unexpected root body %q", rootRec.Body.String())
	}
	if rootRec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("expected CORS on every response")
	}
}

func TestServerWithFixtureProvider(t *testing.T) {
	srv := New(testConfig(), nil)
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/api/live", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domaingames.Response
	testutil.DecodeJSON(t, rr, &resp)
	lg := resp.LiveGame
	if lg == nil || lg.Inning != "Bottom 6" || lg.Home.Score != 4 || lg.Away.Score != 2 {
		t.Fatalf("unexpected fixture response %+v", lg)
	}
	if lg.Starters["LAD"] == nil || *lg.Starters["LAD"] != "Walker Buehler (R)" {
		t.Fatalf("unexpected home starter %v", lg.Starters["LAD"])
	}
	if lg.CurrentBatter == nil || *lg.CurrentBatter != "LAD: Shohei Ohtani (L) — Count 1-2, 1 out" {
		t.Fatalf("unexpected batter %v", lg.CurrentBatter)
	}
	if strings.Join(lg.Runners, "|") != "1B: Mookie Betts|2B: Freddie Freeman" {
		t.Fatalf("unexpected runners %v", lg.Runners)
	}
}

func TestServerAgainstStatsAPIUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/v1/schedule":
			sched := testutil.ScheduleWith("2024-09-28",
				testutil.ScheduledGame(745001, testutil.DodgersID, "Los Angeles Dodgers", testutil.GiantsID, "San Francisco Giants", "In Progress"))
			_ = json.NewEncoder(w).Encode(sched)
		case strings.HasSuffix(r.URL.Path, "/feed/live"):
			_ = json.NewEncoder(w).Encode(testutil.InProgressLiveFeed())
		default:
			http.Error(w, "upstream down", http.StatusServiceUnavailable)
		}
	}))
	defer upstream.Close()

	cfg := testConfig()
	cfg.Provider = "statsapi"
	cfg.StatsAPI = config.StatsAPIConfig{BaseURL: upstream.URL, SportID: 1, Timeout: time.Second}
	logger, buf := testutil.NewBufferLogger()
	srv := newServerWithMetrics(cfg, logger, nil, metrics.NewRecorder())

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/api/live", nil)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)

	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "Failed to fetch game data" {
		t.Fatalf("unexpected error %q", body["error"])
	}
	if !strings.Contains(body["detail"], "boxscore: unexpected status 503") {
		t.Fatalf("unexpected detail %q", body["detail"])
	}
	if !strings.Contains(buf.String(), "live status failed") {
		t.Fatalf("expected failure to be logged")
	}
}

func TestSelectProvider(t *testing.T) {
	if _, ok := selectProvider(config.Config{Provider: "fixture"}, nil).(*fixture.Provider); !ok {
		t.Fatalf("expected fixture provider")
	}
	if _, ok := selectProvider(config.Config{Provider: "StatsAPI"}, nil).(*statsapi.Client); !ok {
		t.Fatalf("expected statsapi provider")
	}
	logger, buf := testutil.NewBufferLogger()
	if _, ok := selectProvider(config.Config{Provider: "unknown"}, logger).(*statsapi.Client); !ok {
		t.Fatalf("expected statsapi fallback")
	}
	if !strings.Contains(buf.String(), "unknown provider") {
		t.Fatalf("expected fallback warning")
	}
}

func TestBuildServiceWarnsOnInvalidTimezone(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	cfg := testConfig()
	cfg.Team.Timezone = "Mars/Olympus"

	if svc := buildService(cfg, &testutil.StubProvider{}, logger); svc == nil {
		t.Fatalf("expected service")
	}
	if !strings.Contains(buf.String(), "invalid schedule timezone") {
		t.Fatalf("expected timezone warning, got %s", buf.String())
	}
}

func TestGracefulShutdownCallsShutdown(t *testing.T) {
	httpSrv := &testutil.StubHTTPServer{}
	metricsSrv := &testutil.StubHTTPServer{}
	stopCalls := 0

	srv := newServerWithDeps(config.Config{}, nil, nil, httpSrv)
	srv.metricsServer = metricsSrv
	srv.metricsStop = func(context.Context) error {
		stopCalls++
		return errors.New("flush failed")
	}
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls != 1 || metricsSrv.ShutdownCalls != 1 {
		t.Fatalf("expected both servers shut down, got %d and %d", httpSrv.ShutdownCalls, metricsSrv.ShutdownCalls)
	}
	if stopCalls != 1 {
		t.Fatalf("expected metrics stop called once, got %d", stopCalls)
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	blocking := &testutil.BlockingHTTPServer{
		AddrVal:    ":0",
		HandlerVal: http.NewServeMux(),
		Unblock:    make(chan struct{}),
	}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	logger, buf := testutil.NewBufferLogger()
	srv := newServerWithDeps(config.Config{}, logger, nil, blocking)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
	if !strings.Contains(buf.String(), "graceful shutdown failed") {
		t.Fatalf("expected shutdown failure logged")
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	srv := newServerWithDeps(config.Config{}, nil, nil, &testutil.ErrHTTPServer{})

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	httpSrv := &testutil.CloseableHTTPServer{}
	srv := newServerWithDeps(config.Config{}, nil, nil, httpSrv)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.ShutdownCalls)
	}
}
