// Package pricetest provides a manual clock and scripted delta source for
// driving a price.Simulator deterministically in tests.
package pricetest

import (
	"sync"
	"time"

	"github.com/aromadata/aromadata/internal/price"
)

// ManualTicker is a ticker whose ticks are sent by the test.
type ManualTicker struct {
	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

// C returns the tick channel.
func (t *ManualTicker) C() <-chan time.Time { return t.ch }

// Stop marks the ticker stopped. The channel is left open, as with time.Ticker.
func (t *ManualTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

// Stopped reports whether Stop was called.
func (t *ManualTicker) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// ManualClock is a clock frozen at a fixed instant that hands out ManualTickers.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*ManualTicker
}

// NewManualClock returns a clock reading now.
func NewManualClock(now time.Time) *ManualClock {
	return &ManualClock{now: now}
}

// Now returns the frozen time.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// NewTicker returns a new ManualTicker; the interval is ignored.
func (c *ManualClock) NewTicker(time.Duration) price.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &ManualTicker{ch: make(chan time.Time)}
	c.tickers = append(c.tickers, t)
	return t
}

// Ticker returns the most recently created ticker, or nil.
func (c *ManualClock) Ticker() *ManualTicker {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.tickers) == 0 {
		return nil
	}
	return c.tickers[len(c.tickers)-1]
}

// Advance moves the clock by d and delivers one tick at the new time on the
// latest ticker. It blocks until the tick is received.
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now := c.now
	var t *ManualTicker
	if len(c.tickers) > 0 {
		t = c.tickers[len(c.tickers)-1]
	}
	c.mu.Unlock()

	if t != nil {
		t.ch <- now
	}
	return now
}

// SequenceSource returns fixed deltas in order and repeats the last one once
// exhausted. An empty sequence yields zero.
type SequenceSource struct {
	mu     sync.Mutex
	deltas []float64
	next   int
}

// NewSequenceSource returns a source yielding deltas.
func NewSequenceSource(deltas ...float64) *SequenceSource {
	return &SequenceSource{deltas: deltas}
}

// Delta returns the next delta.
func (s *SequenceSource) Delta() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.deltas) == 0 {
		return 0
	}
	if s.next >= len(s.deltas) {
		return s.deltas[len(s.deltas)-1]
	}
	d := s.deltas[s.next]
	s.next++
	return d
}
