package spancontext

// B3 is the context variant aligned with B3-style propagation: a trace
// identifier that may be 128 bits wide, an optional parent span, and a
// flag set in place of a bare sampling boolean.
type B3 struct {
	traceID   TraceID
	spanID    uint64
	parentID  uint64
	hasParent bool
	flags     Flags
	baggage   map[string]string
}

// NewB3Context assembles a B3 from its constituent fields, as when
// reconstructing a context from a wire carrier.  A nil parentID means the
// context has no parent.  The baggage map is adopted as-is; callers must
// not retain it.
func NewB3Context(traceID TraceID, spanID SpanID, parentID *SpanID, flags Flags, baggage map[string]string) B3 {
	ctx := B3{
		traceID: traceID,
		spanID:  uint64(spanID),
		flags:   flags,
		baggage: baggage,
	}

	if parentID != nil {
		ctx.parentID = uint64(*parentID)
		ctx.hasParent = true
	}

	return ctx
}

func (b B3) TraceID() TraceID {
	return b.traceID
}

func (b B3) SpanID() SpanID {
	return SpanID(b.spanID)
}

// ParentID returns the identifier of the span this context was derived
// from.  The second return is false for root contexts.
func (b B3) ParentID() (SpanID, bool) {
	return SpanID(b.parentID), b.hasParent
}

// Flags returns this context's flag set.
func (b B3) Flags() Flags {
	return b.flags
}

// Sampled is derived from membership of FlagSampled in the flag set.
func (b B3) Sampled() bool {
	return b.flags.Has(FlagSampled)
}

// Debug is derived from membership of FlagDebug in the flag set.
func (b B3) Debug() bool {
	return b.flags.Has(FlagDebug)
}

// IsRoot is derived from membership of FlagIsRoot in the flag set.
func (b B3) IsRoot() bool {
	return b.flags.Has(FlagIsRoot)
}

// WithSampled returns a copy of this context whose flag set agrees with the
// given disposition: FlagSampled is inserted or removed, and
// FlagSamplingDecided is always inserted.  The receiver is unmodified.
func (b B3) WithSampled(sampled bool) B3 {
	if sampled {
		b.flags = b.flags.With(FlagSampled | FlagSamplingDecided)
	} else {
		b.flags = b.flags.Without(FlagSampled).With(FlagSamplingDecided)
	}

	return b
}

func (b B3) BaggageItem(key string) string {
	return b.baggage[key]
}

func (b B3) ForeachBaggageItem(handler func(key, value string) bool) {
	for k, v := range b.baggage {
		if !handler(k, v) {
			return
		}
	}
}

// WithBaggageItem implements Context.  SetBaggageItem is the variant that
// preserves the concrete type.
func (b B3) WithBaggageItem(key, value string) Context {
	return b.SetBaggageItem(key, value)
}

// SetBaggageItem returns a copy of this context with the given baggage pair
// set.  The receiver is unmodified.
func (b B3) SetBaggageItem(key, value string) B3 {
	b.baggage = copyBaggage(b.baggage, key, value)
	return b
}
