package price

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Ticker delivers tick times until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock is the time source of a Simulator.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// NewTicker wraps time.NewTicker.
func (SystemClock) NewTicker(d time.Duration) Ticker {
	return systemTicker{t: time.NewTicker(d)}
}

type systemTicker struct {
	t *time.Ticker
}

func (s systemTicker) C() <-chan time.Time { return s.t.C }
func (s systemTicker) Stop()               { s.t.Stop() }

// DeltaSource draws the next price movement.
type DeltaSource interface {
	Delta() float64
}

// UniformSource draws deltas uniformly from [-max, +max).
type UniformSource struct {
	mu  sync.Mutex
	rng *rand.Rand
	max float64
}

// NewUniformSource returns a reproducible source for a given seed. A zero seed
// picks one from the clock.
func NewUniformSource(seed uint64, max float64) *UniformSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &UniformSource{
		rng: rand.New(rand.NewPCG(seed, seed>>1|1)),
		max: max,
	}
}

// Delta returns the next random movement.
func (u *UniformSource) Delta() float64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	return (u.rng.Float64() - 0.5) * 2 * u.max
}
