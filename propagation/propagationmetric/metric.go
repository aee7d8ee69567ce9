package propagationmetric

import (
	"github.com/go-kit/kit/metrics"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/go-kit/kit/metrics/provider"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/xmidt-org/tracekit/propagation"
	"github.com/xmidt-org/tracekit/propagation/propagationhttp"
)

// Names for our metrics
const (
	ExtractOutcome = "span_context_extract"
)

// labels
const (
	FormatLabel  = "format"
	OutcomeLabel = "outcome"
)

// outcomes
const (
	OKOutcome      = "ok"
	MissingOutcome = "missing"
	InvalidOutcome = "invalid"
)

const extractHelpMsg = "Count of span context extract attempts, by wire format and outcome"

// Measures describes the defined metrics that will be used by clients.  It
// implements propagationhttp.Listener, so it can be handed directly to the
// Extract middleware.
type Measures struct {
	ExtractOutcome metrics.Counter
}

var _ propagationhttp.Listener = (*Measures)(nil)

// NewMeasures realizes the desired metrics from a go-kit provider.
func NewMeasures(p provider.Provider) *Measures {
	return &Measures{
		ExtractOutcome: p.NewCounter(ExtractOutcome),
	}
}

// NewCounterVec produces the raw prometheus vector behind ExtractOutcome,
// for hosts that register collectors directly.
func NewCounterVec() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: ExtractOutcome,
			Help: extractHelpMsg,
		},
		[]string{FormatLabel, OutcomeLabel},
	)
}

// FromCounterVec adapts a raw prometheus vector into Measures.
func FromCounterVec(v *prometheus.CounterVec) *Measures {
	return &Measures{
		ExtractOutcome: gokitprometheus.NewCounter(v),
	}
}

// ProvideMetrics provides the metrics relevant to this package as uber/fx
// options.
func ProvideMetrics() fx.Option {
	return fx.Provide(
		NewCounterVec,
		FromCounterVec,
	)
}

// OnExtract counts one extract attempt.
func (m *Measures) OnExtract(format propagationhttp.Format, fault propagation.Fault) {
	m.ExtractOutcome.With(FormatLabel, format.String(), OutcomeLabel, outcome(fault)).Add(1.0)
}

func outcome(fault propagation.Fault) string {
	switch fault {
	case propagation.None:
		return OKOutcome
	case propagation.Missing:
		return MissingOutcome
	default:
		return InvalidOutcome
	}
}
