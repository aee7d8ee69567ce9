package spancontext

// SampledState expresses a caller's sampling disposition when creating a
// fresh context: force the trace to be recorded, force it to be dropped, or
// defer to the configured Sampler.  Once a context exists its disposition
// is a definite boolean.
type SampledState int

const (
	// Defer leaves the sampling decision to the Sampler.
	Defer SampledState = iota

	// Sampled forces the trace to be recorded, bypassing the Sampler.
	Sampled

	// NotSampled forces the trace to be dropped, bypassing the Sampler.
	NotSampled
)

// Context is the capability shared by both context variants: the identity
// needed to derive child spans and to cross a process boundary.  A Context
// is an immutable value; this package never mutates one after handing it
// out.
type Context interface {
	// TraceID is the identifier shared by every span in this trace.
	TraceID() TraceID

	// SpanID is the identifier of this span.
	SpanID() SpanID

	// Sampled reports whether this trace is being recorded.
	Sampled() bool

	// BaggageItem returns the baggage value for a key.  It returns the
	// empty string when the key is absent.
	BaggageItem(key string) string

	// ForeachBaggageItem invokes the handler once per baggage item, in no
	// particular order, stopping early if the handler returns false.
	ForeachBaggageItem(handler func(key, value string) bool)

	// WithBaggageItem returns a copy of this context with the given
	// baggage pair set.  The receiver is unmodified.
	WithBaggageItem(key, value string) Context
}

func copyBaggage(baggage map[string]string, key, value string) map[string]string {
	updated := make(map[string]string, len(baggage)+1)
	for k, v := range baggage {
		updated[k] = v
	}

	updated[key] = value
	return updated
}
