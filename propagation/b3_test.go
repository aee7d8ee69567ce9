package propagation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xmidt-org/tracekit/spancontext"
)

func testInjectB3Root128(t *testing.T) {
	var (
		assert  = assert.New(t)
		ctx     = spancontext.NewB3Context(
			spancontext.TraceID{Low: 0x1, Is128: true},
			spancontext.SpanID(0x2),
			nil,
			spancontext.FlagSampled,
			nil,
		)

		carrier = TextMapCarrier{}
	)

	InjectB3(ctx, carrier)
	assert.Equal(
		TextMapCarrier{
			"x-b3-traceid": "00000000000000000000000000000001",
			"x-b3-spanid":  "0000000000000002",
			"x-b3-sampled": "true",
			"x-b3-flags":   "0",
		},
		carrier,
	)
}

func testInjectB3Child(t *testing.T) {
	var (
		assert   = assert.New(t)
		parentID = spancontext.SpanID(0xcafe)
		ctx      = spancontext.NewB3Context(
			spancontext.TraceID{Low: 0xdead},
			spancontext.SpanID(0xbeef),
			&parentID,
			spancontext.FlagDebug|spancontext.FlagSampled,
			map[string]string{"user": "alice"},
		)

		carrier = TextMapCarrier{}
	)

	InjectB3(ctx, carrier)
	assert.Equal(
		TextMapCarrier{
			"x-b3-traceid":      "000000000000dead",
			"x-b3-spanid":       "000000000000beef",
			"x-b3-parentspanid": "000000000000cafe",
			"x-b3-sampled":      "true",
			"x-b3-flags":        "1",
			"ot-baggage-user":   "alice",
		},
		carrier,
	)
}

func testInjectB3NotSampled(t *testing.T) {
	var (
		assert  = assert.New(t)
		ctx     = spancontext.NewB3Context(spancontext.TraceID{Low: 0x1}, spancontext.SpanID(0x2), nil, 0, nil)
		carrier = TextMapCarrier{}
	)

	InjectB3(ctx, carrier)
	assert.Equal("false", carrier[B3SampledKey])
	assert.Equal("0", carrier[B3FlagsKey])
	assert.NotContains(carrier, B3ParentSpanIDKey)
}

func TestInjectB3(t *testing.T) {
	t.Run("Root128", testInjectB3Root128)
	t.Run("Child", testInjectB3Child)
	t.Run("NotSampled", testInjectB3NotSampled)
}

func testExtractB3RoundTrip(t *testing.T) {
	parentID := spancontext.SpanID(0x8)

	testData := []spancontext.B3{
		spancontext.NewB3Context(spancontext.TraceID{Low: 0x1}, spancontext.SpanID(0x2), nil, 0, nil),
		spancontext.NewB3Context(spancontext.TraceID{Low: 0x1}, spancontext.SpanID(0x2), nil, spancontext.FlagSampled, nil),
		spancontext.NewB3Context(spancontext.TraceID{Low: 0x1, Is128: true}, spancontext.SpanID(0x2), nil, spancontext.FlagSampled, nil),
		spancontext.NewB3Context(
			spancontext.TraceID{High: 0xabc, Low: 0xdef, Is128: true},
			spancontext.SpanID(0x7),
			&parentID,
			spancontext.FlagSampled|spancontext.FlagDebug,
			map[string]string{"user": "alice", "tenant": "blue"},
		),
		spancontext.NewB3Context(spancontext.TraceID{Low: 0x9}, spancontext.SpanID(0xa), &parentID, spancontext.FlagDebug, nil),
	}

	for _, expected := range testData {
		t.Run("", func(t *testing.T) {
			var (
				assert  = assert.New(t)
				require = require.New(t)
				carrier = TextMapCarrier{}
			)

			InjectB3(expected, carrier)
			actual, err := ExtractB3(carrier)
			require.NoError(err)
			assert.Equal(expected, actual)
		})
	}
}

func testExtractB3MissingField(t *testing.T) {
	for _, missing := range []string{B3TraceIDKey, B3SpanIDKey} {
		t.Run(missing, func(t *testing.T) {
			var (
				assert  = assert.New(t)
				carrier = TextMapCarrier{
					B3TraceIDKey: "0000000000000001",
					B3SpanIDKey:  "0000000000000002",
				}
			)

			delete(carrier, missing)
			ctx, err := ExtractB3(carrier)
			assert.Equal(spancontext.B3{}, ctx)
			assert.Equal(Missing, GetFault(err))
		})
	}
}

func testExtractB3InvalidField(t *testing.T) {
	testData := []struct {
		key   string
		value string
	}{
		{B3TraceIDKey, "xyz"},
		{B3TraceIDKey, "1"}, // not zero-padded to a valid width
		{B3TraceIDKey, "00000000000000000000000000000001ff"},
		{B3SpanIDKey, "0000000000000xyz"},
		{B3SpanIDKey, "2"},
	}

	for _, record := range testData {
		t.Run(record.key+"="+record.value, func(t *testing.T) {
			var (
				assert  = assert.New(t)
				carrier = TextMapCarrier{
					B3TraceIDKey: "0000000000000001",
					B3SpanIDKey:  "0000000000000002",
				}
			)

			carrier[record.key] = record.value
			ctx, err := ExtractB3(carrier)
			assert.Equal(spancontext.B3{}, ctx)
			assert.Equal(Invalid, GetFault(err))
		})
	}
}

func testExtractB3MalformedParent(t *testing.T) {
	// a malformed parent is treated as absent, never a failure
	var (
		assert  = assert.New(t)
		require = require.New(t)
		carrier = TextMapCarrier{
			B3TraceIDKey:      "0000000000000001",
			B3SpanIDKey:       "0000000000000002",
			B3ParentSpanIDKey: "garbage",
		}
	)

	ctx, err := ExtractB3(carrier)
	require.NoError(err)

	_, hasParent := ctx.ParentID()
	assert.False(hasParent)
}

func testExtractB3PermissiveFlags(t *testing.T) {
	testData := []struct {
		sampled  string
		flags    string
		expected spancontext.Flags
	}{
		{"true", "1", spancontext.FlagSampled | spancontext.FlagDebug},
		{"true", "0", spancontext.FlagSampled},
		{"false", "1", spancontext.FlagDebug},
		{"false", "0", 0},

		// unexpected values mean unset, never an error
		{"1", "true", 0},
		{"TRUE", "2", 0},
		{"yes", "", 0},
	}

	for _, record := range testData {
		t.Run(record.sampled+"/"+record.flags, func(t *testing.T) {
			var (
				assert  = assert.New(t)
				require = require.New(t)
				carrier = TextMapCarrier{
					B3TraceIDKey: "0000000000000001",
					B3SpanIDKey:  "0000000000000002",
					B3SampledKey: record.sampled,
					B3FlagsKey:   record.flags,
				}
			)

			ctx, err := ExtractB3(carrier)
			require.NoError(err)
			assert.Equal(record.expected, ctx.Flags())
		})
	}
}

func testExtractB3TraceIDWidths(t *testing.T) {
	t.Run("64Bit", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			require = require.New(t)
			carrier = TextMapCarrier{
				B3TraceIDKey: "000000000000dead",
				B3SpanIDKey:  "0000000000000002",
			}
		)

		ctx, err := ExtractB3(carrier)
		require.NoError(err)
		assert.Equal(spancontext.TraceID{Low: 0xdead}, ctx.TraceID())
	})

	t.Run("128Bit", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			require = require.New(t)
			carrier = TextMapCarrier{
				B3TraceIDKey: "00000000000000000000000000000001",
				B3SpanIDKey:  "0000000000000002",
			}
		)

		// a 32 digit identifier stays 128-bit even with a zero high half
		ctx, err := ExtractB3(carrier)
		require.NoError(err)
		assert.Equal(spancontext.TraceID{Low: 0x1, Is128: true}, ctx.TraceID())
	})
}

func testExtractB3Baggage(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		carrier = TextMapCarrier{
			B3TraceIDKey:      "0000000000000001",
			B3SpanIDKey:       "0000000000000002",
			"ot-baggage-user": "alice",
		}
	)

	ctx, err := ExtractB3(carrier)
	require.NoError(err)
	assert.Equal("alice", ctx.BaggageItem("user"))
}

func TestExtractB3(t *testing.T) {
	t.Run("RoundTrip", testExtractB3RoundTrip)
	t.Run("MissingField", testExtractB3MissingField)
	t.Run("InvalidField", testExtractB3InvalidField)
	t.Run("MalformedParent", testExtractB3MalformedParent)
	t.Run("PermissiveFlags", testExtractB3PermissiveFlags)
	t.Run("TraceIDWidths", testExtractB3TraceIDWidths)
	t.Run("Baggage", testExtractB3Baggage)
}
