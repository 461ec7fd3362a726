package data

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// These are the values of the result label on the directives counter.
const (
	RESULT_APPLIED  = "applied"
	RESULT_REJECTED = "rejected"
	RESULT_MEMBER   = "member"
	RESULT_UNKNOWN  = "unknown"
)

// Metrics counts what channels do with mode changes. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	Directives *prometheus.CounterVec
	Commands   prometheus.Counter
	Oversized  prometheus.Counter
}

// NewMetrics creates the counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Directives: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "modeq_directives_total",
				Help: "Mode changes received by channels, by result",
			},
			[]string{"result"},
		),
		Commands: factory.NewCounter(prometheus.CounterOpts{
			Name: "modeq_commands_total",
			Help: "MODE lines generated for sending",
		}),
		Oversized: factory.NewCounter(prometheus.CounterOpts{
			Name: "modeq_oversized_parameters_total",
			Help: "Mode changes too long to fit a line on their own",
		}),
	}
}

func (m *Metrics) directive(result string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.Directives.WithLabelValues(result).Add(float64(n))
}

func (m *Metrics) commands(n int) {
	if m == nil || n == 0 {
		return
	}
	m.Commands.Add(float64(n))
}

func (m *Metrics) oversized(n int) {
	if m == nil || n == 0 {
		return
	}
	m.Oversized.Add(float64(n))
}
