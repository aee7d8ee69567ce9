package propagationhttp

import (
	"net/http"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/justinas/alice"

	"github.com/xmidt-org/tracekit/propagation"
	"github.com/xmidt-org/tracekit/spancontext"
)

// Format selects which wire encoding the middleware speaks.
type Format int

const (
	// Basic is the minimal-variant text encoding.
	Basic Format = iota

	// B3 is the hex B3 header encoding.
	B3
)

func (f Format) String() string {
	switch f {
	case Basic:
		return "basic"
	case B3:
		return "b3"
	default:
		return "*invalid*"
	}
}

// Listener is notified of every extract attempt a middleware makes.
// propagationmetric supplies a metrics-backed implementation.
type Listener interface {
	OnExtract(format Format, fault propagation.Fault)
}

type Option func(*options)

type options struct {
	format   Format
	logger   log.Logger
	listener Listener
}

// WithFormat selects the wire encoding.  The default is Basic.
func WithFormat(format Format) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithLogger sets the logger used to report malformed carriers.  If logger
// is nil, this option does nothing.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithListener registers a Listener.  If listener is nil, this option does
// nothing.
func WithListener(listener Listener) Option {
	return func(o *options) {
		if listener != nil {
			o.listener = listener
		}
	}
}

func newOptions(o []Option) *options {
	opts := &options{
		logger: log.NewNopLogger(),
	}

	for _, option := range o {
		option(opts)
	}

	return opts
}

// Extract produces an alice-compatible constructor that decodes an inbound
// span context from each request's headers and stores it in the request
// context.  Requests bearing no trace headers pass through untouched.
// Malformed carriers are logged at WARN, and the request proceeds without
// a span context; a bad peer never fails a request.
func Extract(o ...Option) alice.Constructor {
	opts := newOptions(o)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			sc, err := extract(opts.format, request.Header)
			if opts.listener != nil {
				opts.listener.OnExtract(opts.format, propagation.GetFault(err))
			}

			switch {
			case err == nil:
				request = request.WithContext(NewContext(request.Context(), sc))

			case propagation.GetFault(err) == propagation.Invalid:
				level.Warn(opts.logger).Log(
					"msg", "discarding malformed span context",
					"format", opts.format.String(),
					"error", err,
				)
			}

			next.ServeHTTP(response, request)
		})
	}
}

func extract(format Format, h http.Header) (spancontext.Context, error) {
	if format == B3 {
		sc, err := ExtractB3(h)
		if err != nil {
			return nil, err
		}

		return sc, nil
	}

	sc, err := ExtractBasic(h)
	if err != nil {
		return nil, err
	}

	return sc, nil
}
