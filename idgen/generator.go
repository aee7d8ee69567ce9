package idgen

import (
	"math/rand"
	"sync"
	"time"
)

// Generator produces the random identifiers used for trace and span
// identity.  A Generator is shared by all concurrent span starts in a
// process, so implementations must be safe for concurrent use without
// external locking.
type Generator interface {
	// Next draws a single uniformly random 64-bit value.
	Next() uint64

	// NextTraceID draws the identifier for a new trace.  When use128 is
	// set, the high and low halves are independent draws.  Otherwise only
	// the low half is drawn and high is zero.
	NextTraceID(use128 bool) (high, low uint64)
}

type Option func(*generator)

// Seed fixes the seed of the underlying source, making the draw sequence
// reproducible.  Primarily useful in tests.
func Seed(seed int64) Option {
	return func(g *generator) {
		g.source = rand.NewSource(seed).(rand.Source64)
	}
}

// New constructs a Generator backed by a single random source guarded by a
// mutex.  By default the source is seeded from the wall clock.
func New(o ...Option) Generator {
	g := &generator{
		source: rand.NewSource(time.Now().UnixNano()).(rand.Source64),
	}

	for _, option := range o {
		option(g)
	}

	return g
}

// generator is the internal Generator implementation
type generator struct {
	lock   sync.Mutex
	source rand.Source64
}

func (g *generator) Next() uint64 {
	g.lock.Lock()
	v := g.source.Uint64()
	g.lock.Unlock()

	return v
}

func (g *generator) NextTraceID(use128 bool) (high, low uint64) {
	g.lock.Lock()
	if use128 {
		high = g.source.Uint64()
	}

	low = g.source.Uint64()
	g.lock.Unlock()

	return
}
