package propagationhttp

import (
	"net/http"

	"github.com/xmidt-org/tracekit/spancontext"
)

// RoundTripper decorates next so that outbound requests carry the span
// context found in the request's context, if any.  The wire encoding
// follows the context's concrete variant.  A nil next uses
// http.DefaultTransport.
func RoundTripper(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return roundTripperFunc(func(request *http.Request) (*http.Response, error) {
		if sc, ok := FromContext(request.Context()); ok {
			request = request.Clone(request.Context())
			switch ctx := sc.(type) {
			case spancontext.Basic:
				InjectBasic(ctx, request.Header)
			case spancontext.B3:
				InjectB3(ctx, request.Header)
			}
		}

		return next.RoundTrip(request)
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(request *http.Request) (*http.Response, error) {
	return f(request)
}
