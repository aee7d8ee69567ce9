package propagation

import (
	"fmt"
	"strconv"

	"github.com/xmidt-org/tracekit/spancontext"
)

// Reserved keys for the B3 hex encoding, in their lower-cased text-map
// form.  Identifier values are fixed-width lowercase hex: 16 digits for a
// 64-bit value, 32 for a 128-bit trace identifier.
const (
	B3TraceIDKey      = "x-b3-traceid"
	B3SpanIDKey       = "x-b3-spanid"
	B3ParentSpanIDKey = "x-b3-parentspanid"
	B3SampledKey      = "x-b3-sampled"
	B3FlagsKey        = "x-b3-flags"
)

// InjectB3 writes the B3 hex encoding of ctx to the carrier.  The sampled
// and flags fields are always written; the parent field only when a parent
// exists.  Encoding is total; it cannot fail.
func InjectB3(ctx spancontext.B3, w TextMapWriter) {
	w.Set(B3TraceIDKey, ctx.TraceID().String())
	w.Set(B3SpanIDKey, ctx.SpanID().String())
	if parentID, ok := ctx.ParentID(); ok {
		w.Set(B3ParentSpanIDKey, parentID.String())
	}

	if ctx.Sampled() {
		w.Set(B3SampledKey, "true")
	} else {
		w.Set(B3SampledKey, "false")
	}

	if ctx.Debug() {
		w.Set(B3FlagsKey, "1")
	} else {
		w.Set(B3FlagsKey, "0")
	}
}

// ExtractB3 reconstructs a B3 context from the carrier.  The trace and
// span identifiers are mandatory and strictly validated.  The parent
// identifier is optional: present but unparsable means absent, not a
// failure.  The two flag fields are permissive: the expected value sets
// the flag and any other value leaves it unset, never raising an error.
// This asymmetry between mandatory and optional fields is deliberate.
func ExtractB3(r TextMapReader) (spancontext.B3, error) {
	var state decodeState
	if err := r.ForeachKey(state.collect); err != nil {
		return spancontext.B3{}, err
	}

	var (
		traceID   spancontext.TraceID
		spanID    uint64
		parentID  uint64
		hasParent bool
		flags     spancontext.Flags
	)

	err := apply(
		[]fieldPolicy{
			{key: B3TraceIDKey, mandatory: true, parse: b3TraceIDField(&traceID)},
			{key: B3SpanIDKey, mandatory: true, parse: hexField(&spanID)},
			{key: B3ParentSpanIDKey, parse: func(v string) error {
				if err := hexField(&parentID)(v); err != nil {
					return err
				}

				hasParent = true
				return nil
			}},
			{key: B3SampledKey, parse: flagField(&flags, spancontext.FlagSampled, "true")},
			{key: B3FlagsKey, parse: flagField(&flags, spancontext.FlagDebug, "1")},
		},
		state.values,
	)

	if err != nil {
		return spancontext.B3{}, err
	}

	var parent *spancontext.SpanID
	if hasParent {
		p := spancontext.SpanID(parentID)
		parent = &p
	}

	return spancontext.NewB3Context(traceID, spancontext.SpanID(spanID), parent, flags, state.baggage()), nil
}

// hexField parses a fixed-width, 16 digit hex identifier.
func hexField(target *uint64) func(string) error {
	return func(v string) error {
		if len(v) != 16 {
			return fmt.Errorf("expected 16 hex digits, got %d characters", len(v))
		}

		parsed, err := strconv.ParseUint(v, 16, 64)
		if err != nil {
			return err
		}

		*target = parsed
		return nil
	}
}

// b3TraceIDField parses a trace identifier of either width.  A 32 digit
// value is a 128-bit identifier even when its high half is zero; the
// distinction round-trips.
func b3TraceIDField(target *spancontext.TraceID) func(string) error {
	return func(v string) error {
		switch len(v) {
		case 16:
			low, err := strconv.ParseUint(v, 16, 64)
			if err != nil {
				return err
			}

			*target = spancontext.TraceID{Low: low}
			return nil

		case 32:
			high, err := strconv.ParseUint(v[:16], 16, 64)
			if err != nil {
				return err
			}

			low, err := strconv.ParseUint(v[16:], 16, 64)
			if err != nil {
				return err
			}

			*target = spancontext.TraceID{High: high, Low: low, Is128: true}
			return nil

		default:
			return fmt.Errorf("expected 16 or 32 hex digits, got %d characters", len(v))
		}
	}
}

// flagField tests a flag field: the expected value sets the flag, any other
// value leaves it unset.  It never errors.
func flagField(target *spancontext.Flags, flag spancontext.Flags, expected string) func(string) error {
	return func(v string) error {
		if v == expected {
			*target = target.With(flag)
		}

		return nil
	}
}
