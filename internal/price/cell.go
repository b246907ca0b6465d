// Package price simulates the live coffee price shown on the dashboard: a
// single value nudged by a bounded random delta on a fixed interval.
package price

import (
	"sync"
	"time"

	"github.com/aromadata/aromadata/pkg/mathutil"
)

// Snapshot is a consistent view of the price cell.
type Snapshot struct {
	Price     float64   `json:"price"`
	Delta     float64   `json:"delta"`
	Direction string    `json:"direction"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Sample is one committed tick kept in the history.
type Sample struct {
	At    time.Time `json:"at"`
	Price float64   `json:"price"`
	Delta float64   `json:"delta"`
}

// Direction labels a price change. Zero counts as up.
func Direction(delta float64) string {
	if delta < 0 {
		return "down"
	}
	return "up"
}

// Cell owns the current price. The simulator is its only writer; any number of
// readers may call Price, Snapshot and History concurrently.
type Cell struct {
	mu          sync.RWMutex
	price       float64
	delta       float64
	updatedAt   time.Time
	floor       float64
	history     []Sample
	historySize int
}

// NewCell returns a cell holding initial, clamped below by floor, that keeps at
// most historySize samples.
func NewCell(initial, floor float64, historySize int) *Cell {
	if historySize < 0 {
		historySize = 0
	}
	return &Cell{
		price:       mathutil.Floor(initial, floor),
		floor:       floor,
		historySize: historySize,
		history:     make([]Sample, 0, historySize),
	}
}

// Price returns the current price in USD/lb.
func (c *Cell) Price() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.price
}

// Floor returns the lowest price the cell will hold.
func (c *Cell) Floor() float64 {
	return c.floor
}

// Snapshot returns the price, the last delta and when they were written.
func (c *Cell) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

// History returns a copy of the recorded samples, oldest first.
func (c *Cell) History() []Sample {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Sample, 0, len(c.history))
	return append(out, c.history...)
}

// Reset discards the history and sets the price and displayed delta.
func (c *Cell) Reset(price, delta float64, at time.Time) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.price = mathutil.Floor(price, c.floor)
	c.delta = delta
	c.updatedAt = at
	c.history = c.history[:0]
	c.record(at)
	return c.snapshotLocked()
}

// Apply moves the price by delta, never below the floor. The raw delta is
// stored even when the floor absorbs part of it.
func (c *Cell) Apply(delta float64, at time.Time) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.price = mathutil.Floor(c.price+delta, c.floor)
	c.delta = delta
	c.updatedAt = at
	c.record(at)
	return c.snapshotLocked()
}

func (c *Cell) record(at time.Time) {
	if c.historySize == 0 {
		return
	}
	if len(c.history) == c.historySize {
		copy(c.history, c.history[1:])
		c.history = c.history[:len(c.history)-1]
	}
	c.history = append(c.history, Sample{At: at, Price: c.price, Delta: c.delta})
}

func (c *Cell) snapshotLocked() Snapshot {
	return Snapshot{
		Price:     c.price,
		Delta:     c.delta,
		Direction: Direction(c.delta),
		UpdatedAt: c.updatedAt,
	}
}
