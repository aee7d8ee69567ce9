package propagationhttp

import (
	"context"

	"github.com/xmidt-org/tracekit/spancontext"
)

type contextKey struct{}

// NewContext returns a context.Context that carries the given span context.
func NewContext(parent context.Context, sc spancontext.Context) context.Context {
	return context.WithValue(parent, contextKey{}, sc)
}

// FromContext returns the span context stored in ctx, if any.
func FromContext(ctx context.Context) (spancontext.Context, bool) {
	sc, ok := ctx.Value(contextKey{}).(spancontext.Context)
	return sc, ok
}
