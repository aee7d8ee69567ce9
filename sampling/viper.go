package sampling

import (
	"github.com/spf13/viper"
)

const (
	// SamplerKey is the Viper subkey under which sampler configuration
	// should be stored.  FromViper *does not* assume this key.
	SamplerKey = "sampler"
)

// Sub returns the standard child Viper, using SamplerKey, for this package.
// If passed nil, this function returns nil.
func Sub(v *viper.Viper) *viper.Viper {
	if v != nil {
		return v.Sub(SamplerKey)
	}

	return nil
}

// FromViper produces an Options from a (possibly nil) Viper instance.
// Callers should use FromViper(Sub(v)) if the standard subkey is desired.
func FromViper(v *viper.Viper) (*Options, error) {
	o := new(Options)
	if v != nil {
		if err := v.Unmarshal(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}
