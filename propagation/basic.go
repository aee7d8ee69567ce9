package propagation

import (
	"strconv"

	"github.com/xmidt-org/tracekit/spancontext"
)

// Reserved keys for the minimal-variant text encoding.  Identifier values
// are base-10; the sampled field is "1" or "0".
const (
	BasicTraceIDKey = "ot-tracer-traceid"
	BasicSpanIDKey  = "ot-tracer-spanid"
	BasicSampledKey = "ot-tracer-sampled"

	// BaggagePrefix marks carrier entries holding baggage, in both
	// encodings.  The remainder of the key is the baggage key.
	BaggagePrefix = "ot-baggage-"
)

// InjectBasic writes the minimal-variant encoding of ctx to the carrier.
// Encoding is total; it cannot fail.
func InjectBasic(ctx spancontext.Basic, w TextMapWriter) {
	w.Set(BasicTraceIDKey, strconv.FormatUint(ctx.TraceID().Low, 10))
	w.Set(BasicSpanIDKey, strconv.FormatUint(uint64(ctx.SpanID()), 10))
	if ctx.Sampled() {
		w.Set(BasicSampledKey, "1")
	} else {
		w.Set(BasicSampledKey, "0")
	}

	ctx.ForeachBaggageItem(func(k, v string) bool {
		w.Set(BaggagePrefix+k, v)
		return true
	})
}

// ExtractBasic reconstructs a minimal-variant context from the carrier.
// All three reserved keys are mandatory: a missing or unparsable one fails
// the whole decode and no context is produced.
func ExtractBasic(r TextMapReader) (spancontext.Basic, error) {
	var state decodeState
	if err := r.ForeachKey(state.collect); err != nil {
		return spancontext.Basic{}, err
	}

	var (
		traceID uint64
		spanID  uint64
		sampled bool
	)

	err := apply(
		[]fieldPolicy{
			{key: BasicTraceIDKey, mandatory: true, parse: decimalField(&traceID)},
			{key: BasicSpanIDKey, mandatory: true, parse: decimalField(&spanID)},
			{key: BasicSampledKey, mandatory: true, parse: boolField(&sampled)},
		},
		state.values,
	)

	if err != nil {
		return spancontext.Basic{}, err
	}

	return spancontext.NewBasicContext(traceID, spanID, sampled, state.baggage()), nil
}

func decimalField(target *uint64) func(string) error {
	return func(v string) error {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return err
		}

		*target = parsed
		return nil
	}
}

func boolField(target *bool) func(string) error {
	return func(v string) error {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}

		*target = parsed
		return nil
	}
}
