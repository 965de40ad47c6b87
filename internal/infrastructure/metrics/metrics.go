package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// Closing metrics
	ClosingsCreated  prometheus.Counter
	ClosingsEdited   prometheus.Counter
	ClosingsDeleted  prometheus.Counter
	ShiftAdjustments prometheus.Counter
	FinalResult      prometheus.Histogram
	ClosingsStored   prometheus.Gauge

	// Store metrics
	BlocksSkipped prometheus.Counter
	PersistErrors *prometheus.CounterVec
}

// New creates all metrics on a registry of their own.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		// Closing metrics
		ClosingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "caixa_closings_created_total",
			Help: "Total number of closings created",
		}),
		ClosingsEdited: factory.NewCounter(prometheus.CounterOpts{
			Name: "caixa_closings_edited_total",
			Help: "Total number of closings edited",
		}),
		ClosingsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "caixa_closings_deleted_total",
			Help: "Total number of closings deleted",
		}),
		ShiftAdjustments: factory.NewCounter(prometheus.CounterOpts{
			Name: "caixa_shift_adjustments_total",
			Help: "Total number of second shift closings reduced to a shift difference",
		}),
		FinalResult: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "caixa_closing_final_result",
			Help:    "Final result of created closings",
			Buckets: []float64{-100, -10, -1, -0.01, 0, 0.01, 1, 10, 100},
		}),
		ClosingsStored: factory.NewGauge(prometheus.GaugeOpts{
			Name: "caixa_closings_stored",
			Help: "Current number of closings in the store",
		}),

		// Store metrics
		BlocksSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "caixa_store_blocks_skipped_total",
			Help: "Total number of unreadable closing blocks skipped on load",
		}),
		PersistErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "caixa_store_persist_errors_total",
				Help: "Total store write failures by operation",
			},
			[]string{"operation"},
		),
	}
}

// Registry returns the registry holding every metric.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes the metrics in the node_exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *Metrics) ClosingCreated(finalResult decimal.Decimal) {
	m.ClosingsCreated.Inc()
	m.FinalResult.Observe(finalResult.InexactFloat64())
}

func (m *Metrics) ClosingEdited()  { m.ClosingsEdited.Inc() }
func (m *Metrics) ClosingDeleted() { m.ClosingsDeleted.Inc() }
func (m *Metrics) ShiftAdjusted()  { m.ShiftAdjustments.Inc() }
func (m *Metrics) BlockSkipped()   { m.BlocksSkipped.Inc() }

func (m *Metrics) PersistFailed(operation string) {
	m.PersistErrors.WithLabelValues(operation).Inc()
}

func (m *Metrics) Stored(count int) {
	m.ClosingsStored.Set(float64(count))
}
