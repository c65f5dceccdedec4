package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for Conversions.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

type Metrics struct {
	Conversions        *prometheus.CounterVec
	ConversionDuration *prometheus.HistogramVec
	BatchSize          prometheus.Histogram
}

// New registers the conversion collectors on reg. Pass prometheus.DefaultRegisterer
// in binaries and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Conversions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cci_conversions_total",
			Help: "Total number of CCI conversions by operation, bank and outcome",
		}, []string{"op", "bank", "outcome"}),
		ConversionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cci_conversion_duration_seconds",
			Help:    "Duration of a single CCI conversion",
			Buckets: []float64{0.000001, 0.000005, 0.00001, 0.00005, 0.0001, 0.0005, 0.001},
		}, []string{"op"}),
		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "cci_batch_size",
			Help:    "Number of requests per batch conversion",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
}

func (m *Metrics) IncrementConversion(op, bank, outcome string) {
	m.Conversions.WithLabelValues(op, bank, outcome).Inc()
}

func (m *Metrics) ObserveConversion(op string, start time.Time) {
	m.ConversionDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObserveBatchSize(n int) {
	m.BatchSize.Observe(float64(n))
}
