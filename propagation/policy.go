package propagation

import "strings"

// decodeState is the normalized view of a carrier, built before any field
// decoding: keys are lower-cased and baggage entries are separated from
// identity fields.  Baggage cannot be malformed by construction, since any
// string is valid baggage.
type decodeState struct {
	values map[string]string
	bag    map[string]string
}

func (ds *decodeState) collect(key, value string) error {
	key = strings.ToLower(key)
	if strings.HasPrefix(key, BaggagePrefix) {
		if ds.bag == nil {
			ds.bag = make(map[string]string)
		}

		ds.bag[strings.TrimPrefix(key, BaggagePrefix)] = value
		return nil
	}

	if ds.values == nil {
		ds.values = make(map[string]string)
	}

	ds.values[key] = value
	return nil
}

func (ds *decodeState) baggage() map[string]string {
	return ds.bag
}

// fieldPolicy is one row of a codec's decode policy table.  The strict
// versus permissive asymmetry lives entirely in the mandatory bit: a
// mandatory field that is absent or unparsable aborts the whole decode,
// while an optional field keeps its default and its parse error is never
// surfaced.
type fieldPolicy struct {
	key       string
	mandatory bool
	parse     func(value string) error
}

// apply runs a policy table against the collected carrier values.  It
// returns the single aggregated error for the first mandatory-field
// failure, or nil.  Parsers must assign their targets only on success so
// that an optional-field failure leaves the default intact.
func apply(policies []fieldPolicy, values map[string]string) error {
	for _, p := range policies {
		v, ok := values[p.key]
		if !ok {
			if p.mandatory {
				return Error{Field: p.key, Fault: Missing}
			}

			continue
		}

		if err := p.parse(v); err != nil && p.mandatory {
			return Error{Field: p.key, Fault: Invalid, Cause: err}
		}
	}

	return nil
}
