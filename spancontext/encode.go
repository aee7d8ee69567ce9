package spancontext

import (
	"errors"
	"time"

	"github.com/ugorji/go/codec"
)

// ErrNoContext indicates a finished span with no context, which has no
// valid wire form.
var ErrNoContext = errors.New("a finished span requires a context")

// jsonHandle is the internal package singleton used to render the
// reporter-facing wire shape
var jsonHandle codec.Handle = &codec.JsonHandle{}

// contextJSON fixes the stable encoded form of a context: trace_id,
// span_id, sampled, then baggage.  Reporters depend on this shape.
type contextJSON struct {
	TraceID string            `codec:"trace_id"`
	SpanID  string            `codec:"span_id"`
	Sampled bool              `codec:"sampled"`
	Baggage map[string]string `codec:"baggage,omitempty"`
}

func newContextJSON(ctx Context) contextJSON {
	value := contextJSON{
		TraceID: ctx.TraceID().String(),
		SpanID:  ctx.SpanID().String(),
		Sampled: ctx.Sampled(),
	}

	ctx.ForeachBaggageItem(func(k, v string) bool {
		if value.Baggage == nil {
			value.Baggage = make(map[string]string)
		}

		value.Baggage[k] = v
		return true
	})

	return value
}

// EncodeJSON renders the stable JSON form of a context, as embedded in the
// finished-span shape consumed by reporters.
func EncodeJSON(ctx Context) ([]byte, error) {
	var output []byte
	err := codec.NewEncoderBytes(&output, jsonHandle).Encode(newContextJSON(ctx))
	return output, err
}

// Tag is a single key/value annotation on a finished span.
type Tag struct {
	Key   string      `codec:"key"`
	Value interface{} `codec:"value"`
}

// LogRecord is one timestamped group of fields attached to a finished span.
type LogRecord struct {
	Timestamp time.Time
	Fields    []Tag
}

// FinishedSpan is the value handed to a reporter once a span completes.
// Span lifecycle bookkeeping happens outside this package; only the wire
// shape is fixed here.
type FinishedSpan struct {
	OperationName string
	Start         time.Time
	Duration      time.Duration
	Context       Context
	References    []Reference
	Tags          []Tag
	Logs          []LogRecord
}

type referenceJSON struct {
	Kind    string `codec:"kind"`
	TraceID string `codec:"trace_id"`
	SpanID  string `codec:"span_id"`
}

type logJSON struct {
	// Timestamp is in microseconds since the epoch
	Timestamp int64 `codec:"timestamp"`
	Fields    []Tag `codec:"fields"`
}

type finishedSpanJSON struct {
	OperationName string `codec:"operation_name"`

	// Start is in microseconds since the epoch; Duration in microseconds
	Start    int64 `codec:"start"`
	Duration int64 `codec:"duration"`

	Context    contextJSON     `codec:"context"`
	References []referenceJSON `codec:"references,omitempty"`
	Tags       []Tag           `codec:"tags,omitempty"`
	Logs       []logJSON       `codec:"logs,omitempty"`
}

// EncodeFinishedSpan renders the stable JSON form of a finished span.
func EncodeFinishedSpan(span FinishedSpan) ([]byte, error) {
	if span.Context == nil {
		return nil, ErrNoContext
	}

	value := finishedSpanJSON{
		OperationName: span.OperationName,
		Start:         span.Start.UnixMicro(),
		Duration:      span.Duration.Microseconds(),
		Context:       newContextJSON(span.Context),
		Tags:          span.Tags,
	}

	for _, ref := range span.References {
		if ref.Context == nil {
			continue
		}

		value.References = append(value.References, referenceJSON{
			Kind:    ref.Kind.String(),
			TraceID: ref.Context.TraceID().String(),
			SpanID:  ref.Context.SpanID().String(),
		})
	}

	for _, record := range span.Logs {
		value.Logs = append(value.Logs, logJSON{
			Timestamp: record.Timestamp.UnixMicro(),
			Fields:    record.Fields,
		})
	}

	var output []byte
	err := codec.NewEncoderBytes(&output, jsonHandle).Encode(value)
	return output, err
}
