package spancontext

import (
	"github.com/xmidt-org/tracekit/idgen"
	"github.com/xmidt-org/tracekit/sampling"
)

// Environment creates contexts.  It owns the identifier generator and the
// sampler; hosts construct one Environment and share it across all
// concurrent span starts.
type Environment struct {
	generator idgen.Generator
	sampler   sampling.Sampler
	use128    bool
}

type EnvironmentOption func(*Environment)

// WithGenerator sets the identifier generator.  If generator is nil, this
// option does nothing.
func WithGenerator(generator idgen.Generator) EnvironmentOption {
	return func(e *Environment) {
		if generator != nil {
			e.generator = generator
		}
	}
}

// WithSampler sets the sampler consulted for fresh contexts.  If sampler is
// nil, this option does nothing.
func WithSampler(sampler sampling.Sampler) EnvironmentOption {
	return func(e *Environment) {
		if sampler != nil {
			e.sampler = sampler
		}
	}
}

// With128BitTraceIDs controls whether fresh B3 contexts draw a 128-bit
// trace identifier.  The Basic variant always uses 64-bit identifiers.
func With128BitTraceIDs(enabled bool) EnvironmentOption {
	return func(e *Environment) {
		e.use128 = enabled
	}
}

// NewEnvironment constructs an Environment from a set of options.  The
// defaults are a fresh idgen generator and a sampler that records every
// trace.
func NewEnvironment(o ...EnvironmentOption) *Environment {
	e := &Environment{
		generator: idgen.New(),
		sampler:   sampling.Const(true),
	}

	for _, option := range o {
		option(e)
	}

	return e
}

// NewBasic creates a minimal-variant context.  With no references it starts
// a fresh trace: identifiers are drawn from the generator and, unless state
// overrides it, the sampler decides the trace's disposition.  Otherwise the
// parent is the first reference, regardless of its kind, and the new
// context inherits the parent's trace identifier and sampling disposition
// verbatim.  Children never re-sample.  Baggage always starts empty;
// carrying baggage across process boundaries is the codec's job.
func (e *Environment) NewBasic(operationName string, state SampledState, refs ...Reference) Basic {
	if len(refs) > 0 && refs[0].Context != nil {
		parent := refs[0].Context
		return Basic{
			traceID: parent.TraceID().Low,
			spanID:  e.generator.Next(),
			sampled: parent.Sampled(),
		}
	}

	traceID := e.generator.Next()
	return Basic{
		traceID: traceID,
		spanID:  e.generator.Next(),
		sampled: e.decide(traceID, operationName, state),
	}
}

// NewB3 creates a B3-variant context.  Unlike NewBasic, the parent is the
// first child-of reference found; when none exists a fresh root is created
// even if follows-from references were supplied.  The divergence between
// the two parent-selection policies is deliberately preserved from observed
// behavior; do not unify them.
func (e *Environment) NewB3(operationName string, state SampledState, refs ...Reference) B3 {
	for _, ref := range refs {
		if ref.Kind == RefChildOf && ref.Context != nil {
			return e.newB3Child(ref.Context)
		}
	}

	high, low := e.generator.NextTraceID(e.use128)
	ctx := B3{
		traceID: TraceID{High: high, Low: low, Is128: e.use128},
		spanID:  e.generator.Next(),
		flags:   FlagIsRoot,
	}

	return ctx.WithSampled(e.decide(low, operationName, state))
}

// newB3Child copies the parent's trace identity and flag set verbatim,
// recording the parent's span identifier.  A child never re-samples, and
// the debug flag propagates transitively through the copied flag set.
func (e *Environment) newB3Child(parent Context) B3 {
	ctx := B3{
		traceID:   parent.TraceID(),
		spanID:    e.generator.Next(),
		parentID:  uint64(parent.SpanID()),
		hasParent: true,
	}

	if b3, ok := parent.(B3); ok {
		ctx.flags = b3.flags
		return ctx
	}

	// a foreign parent carries only a boolean disposition
	return ctx.WithSampled(parent.Sampled())
}

func (e *Environment) decide(traceID uint64, operationName string, state SampledState) bool {
	switch state {
	case Sampled:
		return true

	case NotSampled:
		return false

	default:
		return e.sampler.Decide(traceID, operationName)
	}
}
