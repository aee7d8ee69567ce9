package propagation

import "errors"

// Fault classifies the outcome of a decode.
type Fault int

const (
	// None indicates a successful decode.
	None Fault = iota

	// Missing indicates a mandatory field was absent from the carrier.
	Missing

	// Invalid indicates a mandatory field was present but unparsable.
	Invalid
)

func (f Fault) String() string {
	switch f {
	case None:
		return "none"
	case Missing:
		return "missing-field"
	case Invalid:
		return "invalid-field"
	default:
		return "*invalid*"
	}
}

// Error is the single aggregated failure produced by a decode.  A decode
// that fails yields exactly one Error and no context.
type Error struct {
	// Field is the carrier key that could not be decoded
	Field string

	// Fault classifies the failure
	Fault Fault

	// Cause is the underlying parse error, if any
	Cause error
}

func (e Error) Error() string {
	if e.Cause != nil {
		return "cannot reconstruct span context: " + e.Field + ": " + e.Cause.Error()
	}

	return "cannot reconstruct span context: " + e.Field + ": " + e.Fault.String()
}

func (e Error) Unwrap() error {
	return e.Cause
}

// GetFault examines an error for decode classification.
//
//	If err is nil, None is returned
//	If err is (or wraps) an Error, that Error's Fault is returned
//	Otherwise, Invalid is returned
func GetFault(err error) Fault {
	if err == nil {
		return None
	}

	var decodeError Error
	if errors.As(err, &decodeError) {
		return decodeError.Fault
	}

	return Invalid
}
