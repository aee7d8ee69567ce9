package propagationhttp

import (
	"net/http"
	"strings"

	"github.com/xmidt-org/tracekit/propagation"
	"github.com/xmidt-org/tracekit/spancontext"
)

// HeaderCarrier adapts an http.Header to the propagation carrier
// interfaces.  Converting between headers and the text-map form is a pure
// relabeling: values pass through untouched.
type HeaderCarrier http.Header

func (c HeaderCarrier) Set(key, value string) {
	http.Header(c).Set(key, value)
}

func (c HeaderCarrier) ForeachKey(handler func(key, value string) error) error {
	for name, values := range c {
		if len(values) == 0 {
			continue
		}

		if err := handler(strings.ToLower(name), values[0]); err != nil {
			return err
		}
	}

	return nil
}

// InjectBasic writes the minimal-variant encoding of ctx to h.
func InjectBasic(ctx spancontext.Basic, h http.Header) {
	propagation.InjectBasic(ctx, HeaderCarrier(h))
}

// ExtractBasic reads a minimal-variant context from h.
func ExtractBasic(h http.Header) (spancontext.Basic, error) {
	return propagation.ExtractBasic(HeaderCarrier(h))
}

// InjectB3 writes the B3 hex encoding of ctx to h.
func InjectB3(ctx spancontext.B3, h http.Header) {
	propagation.InjectB3(ctx, HeaderCarrier(h))
}

// ExtractB3 reads a B3 context from h.
func ExtractB3(h http.Header) (spancontext.B3, error) {
	return propagation.ExtractB3(HeaderCarrier(h))
}
