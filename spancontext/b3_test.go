package spancontext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestB3Accessors(t *testing.T) {
	var (
		assert   = assert.New(t)
		parentID = SpanID(0x777)
		ctx      = NewB3Context(
			TraceID{High: 0x1, Low: 0x2, Is128: true},
			SpanID(0x3),
			&parentID,
			FlagSampled|FlagDebug,
			map[string]string{"tenant": "blue"},
		)
	)

	assert.Equal(TraceID{High: 0x1, Low: 0x2, Is128: true}, ctx.TraceID())
	assert.Equal(SpanID(0x3), ctx.SpanID())

	actualParent, ok := ctx.ParentID()
	assert.True(ok)
	assert.Equal(parentID, actualParent)

	assert.True(ctx.Sampled())
	assert.True(ctx.Debug())
	assert.False(ctx.IsRoot())
	assert.Equal("blue", ctx.BaggageItem("tenant"))
}

func TestB3NoParent(t *testing.T) {
	assert := assert.New(t)
	ctx := NewB3Context(TraceID{Low: 0x1}, SpanID(0x2), nil, 0, nil)

	_, ok := ctx.ParentID()
	assert.False(ok)
	assert.False(ctx.Sampled())
}

func TestB3WithSampled(t *testing.T) {
	t.Run("True", func(t *testing.T) {
		assert := assert.New(t)
		ctx := NewB3Context(TraceID{Low: 0x1}, SpanID(0x2), nil, FlagDebug, nil)

		updated := ctx.WithSampled(true)
		assert.True(updated.Sampled())
		assert.True(updated.Flags().Has(FlagSampled))
		assert.True(updated.Flags().Has(FlagSamplingDecided))
		assert.True(updated.Flags().Has(FlagDebug))

		// the receiver is unmodified
		assert.False(ctx.Sampled())
	})

	t.Run("False", func(t *testing.T) {
		assert := assert.New(t)
		ctx := NewB3Context(TraceID{Low: 0x1}, SpanID(0x2), nil, FlagSampled, nil)

		updated := ctx.WithSampled(false)
		assert.False(updated.Sampled())
		assert.False(updated.Flags().Has(FlagSampled))
		assert.True(updated.Flags().Has(FlagSamplingDecided))
		assert.True(ctx.Sampled())
	})
}

func TestB3Baggage(t *testing.T) {
	assert := assert.New(t)
	original := NewB3Context(TraceID{Low: 0x1}, SpanID(0x2), nil, FlagSampled, nil)

	updated := original.SetBaggageItem("user", "alice")
	assert.Equal("alice", updated.BaggageItem("user"))
	assert.Empty(original.BaggageItem("user"))
	assert.Equal(original.Flags(), updated.Flags())
}
