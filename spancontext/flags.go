package spancontext

// Flags is the flag set carried by a B3 context.  The flag universe is
// closed and small, so a bitmask suffices.  A context's sampling accessor
// is derived from membership of FlagSampled; the two can never disagree.
type Flags uint8

const (
	// FlagDebug marks a debug trace.  The flag propagates to every
	// descendant context.
	FlagDebug Flags = 1 << iota

	// FlagSamplingDecided records that a sampling decision exists for
	// this trace.  It is process-local and has no wire representation.
	FlagSamplingDecided

	// FlagSampled records a positive sampling decision.
	FlagSampled

	// FlagIsRoot marks the root context of a trace.  It is process-local
	// and has no wire representation.
	FlagIsRoot
)

// Has reports whether every flag in the given set is present.
func (f Flags) Has(flags Flags) bool {
	return f&flags == flags
}

// With returns a copy of this set with the given flags added.
func (f Flags) With(flags Flags) Flags {
	return f | flags
}

// Without returns a copy of this set with the given flags removed.
func (f Flags) Without(flags Flags) Flags {
	return f &^ flags
}
