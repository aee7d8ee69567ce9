package sampling

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

const (
	// ConstType selects a sampler with a fixed decision.
	ConstType = "const"

	// ProbabilisticType selects a sampler with a fractional rate.
	ProbabilisticType = "probabilistic"
)

// Options stores the externally supplied configuration of a Sampler.
type Options struct {
	// Type selects the sampler implementation, one of the type constants
	// in this package.  The empty string is equivalent to ConstType.
	Type string `json:"type"`

	// Param configures the selected sampler.  For a const sampler any
	// nonzero value means every trace is sampled.  For a probabilistic
	// sampler it is the sampling rate.  Any value coercible to a float
	// is accepted.
	Param interface{} `json:"param"`
}

func (o *Options) typ() string {
	if o != nil && len(o.Type) > 0 {
		return o.Type
	}

	return ConstType
}

func (o *Options) param() float64 {
	if o != nil {
		return cast.ToFloat64(o.Param)
	}

	return 0.0
}

// NewSampler constructs the Sampler described by this Options.  A nil
// Options yields a sampler that records nothing.
func (o *Options) NewSampler() (Sampler, error) {
	switch o.typ() {
	case ConstType:
		return Const(o.param() != 0.0), nil

	case ProbabilisticType:
		return Probabilistic(o.param()), nil

	default:
		return nil, fmt.Errorf("unrecognized sampler type: %s", o.typ())
	}
}

// FromConfig produces an Options from an arbitrary map, as found in
// externally unmarshaled configuration.
func FromConfig(m map[string]interface{}) (*Options, error) {
	o := new(Options)
	if err := mapstructure.Decode(m, o); err != nil {
		return nil, err
	}

	return o, nil
}
