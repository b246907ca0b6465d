package price

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aromadata/aromadata/pkg/constants"
	"go.uber.org/zap"
)

// ErrRunning is returned by Start when the simulator is already running.
var ErrRunning = errors.New("price simulator already running")

// Simulator moves a Cell's price on every tick of its clock.
type Simulator struct {
	cell         *Cell
	logger       *zap.Logger
	clock        Clock
	source       DeltaSource
	interval     time.Duration
	initialPrice float64
	initialDelta float64
	observers    []func(Snapshot)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Simulator) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock replaces the wall clock.
func WithClock(clock Clock) Option {
	return func(s *Simulator) { s.clock = clock }
}

// WithSource replaces the random delta source.
func WithSource(source DeltaSource) Option {
	return func(s *Simulator) { s.source = source }
}

// WithInterval sets the time between ticks.
func WithInterval(d time.Duration) Option {
	return func(s *Simulator) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithInitial sets the price and displayed delta restored on every Start.
func WithInitial(price, delta float64) Option {
	return func(s *Simulator) {
		s.initialPrice = price
		s.initialDelta = delta
	}
}

// WithObserver registers fn to receive every committed tick. Observers run on
// the ticking goroutine and must not block.
func WithObserver(fn func(Snapshot)) Option {
	return func(s *Simulator) {
		if fn != nil {
			s.observers = append(s.observers, fn)
		}
	}
}

// NewSimulator returns an idle simulator writing to cell.
func NewSimulator(cell *Cell, opts ...Option) *Simulator {
	s := &Simulator{
		cell:         cell,
		logger:       zap.NewNop(),
		clock:        SystemClock{},
		interval:     constants.DefaultTickInterval,
		initialPrice: constants.InitialPrice,
		initialDelta: constants.InitialDelta,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.source == nil {
		s.source = NewUniformSource(0, constants.MaxTickDelta)
	}
	return s
}

// Cell returns the cell the simulator writes to.
func (s *Simulator) Cell() *Cell {
	return s.cell
}

// Start resets the cell to the initial price and begins ticking. The loop ends
// when ctx is cancelled or Stop is called.
func (s *Simulator) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.runningLocked() {
		return ErrRunning
	}

	s.cell.Reset(s.initialPrice, s.initialDelta, s.clock.Now())

	loopCtx, cancel := context.WithCancel(ctx)
	ticker := s.clock.NewTicker(s.interval)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	s.logger.Info("price simulator started",
		zap.String("op", "price.Start"),
		zap.Float64("price", s.initialPrice),
		zap.Duration("interval", s.interval),
	)

	go s.run(loopCtx, ticker, done)
	return nil
}

// Stop cancels the ticker and waits for the loop to exit. No tick is applied
// after Stop returns. Stopping an idle simulator is a no-op.
func (s *Simulator) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done

	s.logger.Info("price simulator stopped",
		zap.String("op", "price.Stop"),
		zap.Float64("price", s.cell.Price()),
	)
}

// Running reports whether the tick loop is active.
func (s *Simulator) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runningLocked()
}

func (s *Simulator) runningLocked() bool {
	if s.done == nil {
		return false
	}
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

// Tick draws one delta and commits it.
func (s *Simulator) Tick(at time.Time) Snapshot {
	delta := s.source.Delta()
	snap := s.cell.Apply(delta, at)

	s.logger.Debug("price tick",
		zap.String("op", "price.Tick"),
		zap.Float64("delta", delta),
		zap.Float64("price", snap.Price),
	)

	for _, fn := range s.observers {
		fn(snap)
	}
	return snap
}

func (s *Simulator) run(ctx context.Context, ticker Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case at := <-ticker.C():
			if ctx.Err() != nil {
				return
			}
			s.Tick(at)
		}
	}
}
