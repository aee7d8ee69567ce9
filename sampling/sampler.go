package sampling

import "math"

// Sampler decides whether a new trace should be recorded.  Implementations
// must be safe to call concurrently.
type Sampler interface {
	// Decide reports whether the trace identified by traceID should be
	// sampled.  Only the low 64 bits of a trace identifier participate in
	// the decision.
	Decide(traceID uint64, operationName string) bool
}

// Const returns a Sampler that makes the same decision for every trace.
func Const(decision bool) Sampler {
	return constSampler(decision)
}

type constSampler bool

func (s constSampler) Decide(uint64, string) bool {
	return bool(s)
}

// Probabilistic returns a Sampler that samples the given fraction of
// traces.  The rate is clamped to [0.0, 1.0].  The decision is a pure
// function of the trace identifier, so every process observing the same
// trace at the same rate agrees on the outcome.
func Probabilistic(rate float64) Sampler {
	switch {
	case rate <= 0.0:
		return Const(false)

	case rate >= 1.0:
		return Const(true)
	}

	return probabilisticSampler{
		boundary: uint64(rate * float64(math.MaxUint64)),
	}
}

type probabilisticSampler struct {
	boundary uint64
}

func (s probabilisticSampler) Decide(traceID uint64, _ string) bool {
	return traceID < s.boundary
}
