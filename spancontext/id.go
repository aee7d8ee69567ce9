package spancontext

import "fmt"

// TraceID identifies a trace.  Every span in a trace shares one TraceID.
// The low half is always present.  The high half participates only when
// Is128 is set; a 128-bit identifier whose high half happens to be zero is
// distinct from a 64-bit one, and the distinction survives a round trip
// through the hex encoding.
type TraceID struct {
	High  uint64
	Low   uint64
	Is128 bool
}

// String returns the fixed-width lowercase hexadecimal form of this
// identifier: 32 digits for a 128-bit identifier, 16 otherwise.
func (id TraceID) String() string {
	if id.Is128 || id.High != 0 {
		return fmt.Sprintf("%016x%016x", id.High, id.Low)
	}

	return fmt.Sprintf("%016x", id.Low)
}

// SpanID identifies one span within a trace.  Span identifiers are
// uniformly random; uniqueness is probabilistic, not enforced.
type SpanID uint64

// String returns the fixed-width, 16 digit lowercase hexadecimal form.
func (id SpanID) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}
