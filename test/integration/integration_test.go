package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aromadata/aromadata/internal/config"
	"github.com/aromadata/aromadata/internal/price"
	"github.com/aromadata/aromadata/internal/price/pricetest"
	"github.com/aromadata/aromadata/internal/server"
	"github.com/aromadata/aromadata/internal/yield"
	"github.com/aromadata/aromadata/pkg/mathutil"
	"go.uber.org/zap"
)

var start = time.Date(2024, 8, 1, 9, 0, 0, 0, time.UTC)

const tickInterval = 5 * time.Second

type dashboard struct {
	sim     *price.Simulator
	clock   *pricetest.ManualClock
	ticks   chan price.Snapshot
	handler http.Handler
}

// newDashboard wires the example configuration, a simulator on a manual clock
// and the HTTP handler the same way `aromadata serve` does.
func newDashboard(t *testing.T, deltas ...float64) *dashboard {
	t.Helper()

	conf, err := config.LoadConfiguration("../../config.yaml.example")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) > 0 {
		t.Fatalf("unexpected configuration warnings: %v", warnings)
	}

	tc := conf.Ticker
	d := &dashboard{
		clock: pricetest.NewManualClock(start),
		ticks: make(chan price.Snapshot, 16),
	}
	cell := price.NewCell(tc.InitialPrice, tc.Floor, tc.HistorySize)
	d.sim = price.NewSimulator(cell,
		price.WithLogger(zap.NewNop()),
		price.WithClock(d.clock),
		price.WithSource(pricetest.NewSequenceSource(deltas...)),
		price.WithInterval(tc.Interval),
		price.WithInitial(tc.InitialPrice, tc.InitialDelta),
		price.WithObserver(func(s price.Snapshot) { d.ticks <- s }),
	)
	d.handler = server.NewHandler(zap.NewNop(), cell, 0, "integration")

	if err := d.sim.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	t.Cleanup(d.sim.Stop)
	return d
}

// tick delivers one tick and waits until it is committed.
func (d *dashboard) tick(t *testing.T) price.Snapshot {
	t.Helper()

	d.clock.Advance(tickInterval)
	select {
	case s := <-d.ticks:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("tick was not committed")
	}
	return price.Snapshot{}
}

func (d *dashboard) get(t *testing.T, path string, out interface{}) {
	t.Helper()

	rr := httptest.NewRecorder()
	d.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("GET %s status = %d: %s", path, rr.Code, rr.Body.String())
	}
	if err := json.Unmarshal(rr.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode %s: %v", path, err)
	}
}

func TestPriceWalkVisibleThroughAPI(t *testing.T) {
	d := newDashboard(t, 0.75, -0.25, -0.5)

	var snap struct {
		Price     float64 `json:"price"`
		Direction string  `json:"direction"`
		Ticker    string  `json:"ticker"`
	}
	d.get(t, "/api/price", &snap)
	if snap.Price != 189.5 || snap.Ticker != "↗ 2.3%" {
		t.Fatalf("expected initial 189.5 / ↗ 2.3%%, got %v / %s", snap.Price, snap.Ticker)
	}

	expected := []struct {
		price     float64
		direction string
	}{
		{190.25, "up"},
		{190.0, "down"},
		{189.5, "down"},
	}
	for i, want := range expected {
		committed := d.tick(t)
		d.get(t, "/api/price", &snap)
		if !mathutil.ApproxEqual(snap.Price, want.price) || snap.Direction != want.direction {
			t.Fatalf("tick %d: got %v %s, expected %v %s", i+1, snap.Price, snap.Direction, want.price, want.direction)
		}
		if !mathutil.ApproxEqual(committed.Price, snap.Price) {
			t.Fatalf("tick %d: observer saw %v, API returned %v", i+1, committed.Price, snap.Price)
		}
	}

	var history []price.Sample
	d.get(t, "/api/price/history", &history)
	if len(history) != 4 {
		t.Fatalf("expected reset sample plus 3 ticks, got %d", len(history))
	}
	if !history[3].At.Equal(start.Add(3 * tickInterval)) {
		t.Fatalf("expected last sample at %v, got %v", start.Add(3*tickInterval), history[3].At)
	}
}

func TestPriceFloorHoldsEndToEnd(t *testing.T) {
	d := newDashboard(t, -50)

	snap := d.tick(t)
	if snap.Price != 150 {
		t.Fatalf("expected price clamped to 150, got %v", snap.Price)
	}
	if snap.Delta != -50 || snap.Direction != "down" {
		t.Fatalf("expected raw delta -50 down, got %v %s", snap.Delta, snap.Direction)
	}

	// The floor keeps holding on further drops.
	if snap = d.tick(t); snap.Price != 150 {
		t.Fatalf("expected price to stay at 150, got %v", snap.Price)
	}
}

func TestYieldPricedAtLiveValue(t *testing.T) {
	d := newDashboard(t, 1)
	d.tick(t)

	body := `{"area":"5.5","variety":"Castillo","climate":"Óptimo","altitude":"1800"}`
	req := httptest.NewRequest(http.MethodPost, "/api/yield", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	d.handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("POST /api/yield status = %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Result yield.Result `json:"result"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Result.PriceUSDPerPound != 190.5 {
		t.Fatalf("expected estimate priced at 190.5, got %v", resp.Result.PriceUSDPerPound)
	}
	if want := resp.Result.TotalYieldSacks * 190.5 * 125; !mathutil.ApproxEqual(resp.Result.EstimatedRevenueUSD, want) {
		t.Fatalf("expected revenue %v, got %v", want, resp.Result.EstimatedRevenueUSD)
	}
}

func TestRestartResetsPrice(t *testing.T) {
	d := newDashboard(t, 0.5)
	d.tick(t)
	d.sim.Stop()

	if err := d.sim.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	var snap price.Snapshot
	d.get(t, "/api/price", &snap)
	if snap.Price != 189.5 || snap.Delta != 2.3 {
		t.Fatalf("expected restart to restore 189.5 / 2.3, got %v / %v", snap.Price, snap.Delta)
	}
}

func TestConcurrentReadersDuringTicks(t *testing.T) {
	d := newDashboard(t, 0.1, -0.2, 0.3, -0.4, 0.5)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				rr := httptest.NewRecorder()
				d.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
				if rr.Code != http.StatusOK {
					t.Errorf("GET /api/dashboard status = %d", rr.Code)
					return
				}
			}
		}()
	}

	for i := 0; i < 5; i++ {
		if snap := d.tick(t); snap.Price < 150 {
			t.Errorf("price fell below the floor: %v", snap.Price)
		}
	}
	close(stop)
	wg.Wait()
}
