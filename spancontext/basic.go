package spancontext

// Basic is the minimal context variant: a 64-bit trace identifier, a span
// identifier, a definite sampling disposition, and baggage.
type Basic struct {
	traceID uint64
	spanID  uint64
	sampled bool
	baggage map[string]string
}

// NewBasicContext assembles a Basic from its constituent fields, as when
// reconstructing a context from a wire carrier.  The baggage map is adopted
// as-is; callers must not retain it.
func NewBasicContext(traceID, spanID uint64, sampled bool, baggage map[string]string) Basic {
	return Basic{
		traceID: traceID,
		spanID:  spanID,
		sampled: sampled,
		baggage: baggage,
	}
}

func (b Basic) TraceID() TraceID {
	return TraceID{Low: b.traceID}
}

func (b Basic) SpanID() SpanID {
	return SpanID(b.spanID)
}

func (b Basic) Sampled() bool {
	return b.sampled
}

func (b Basic) BaggageItem(key string) string {
	return b.baggage[key]
}

func (b Basic) ForeachBaggageItem(handler func(key, value string) bool) {
	for k, v := range b.baggage {
		if !handler(k, v) {
			return
		}
	}
}

// WithBaggageItem implements Context.  SetBaggageItem is the variant that
// preserves the concrete type.
func (b Basic) WithBaggageItem(key, value string) Context {
	return b.SetBaggageItem(key, value)
}

// SetBaggageItem returns a copy of this context with the given baggage pair
// set.  The receiver is unmodified.
func (b Basic) SetBaggageItem(key, value string) Basic {
	b.baggage = copyBaggage(b.baggage, key, value)
	return b
}
