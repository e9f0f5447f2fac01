package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	PersonsCreated prometheus.Counter
	RegistrySize   prometheus.Gauge
	CreateDuration prometheus.Histogram
}

// New registers the person metrics on reg. Use prometheus.DefaultRegisterer
// in production and a fresh prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PersonsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "pessoas_created_total",
			Help: "Total number of persons created",
		}),
		RegistrySize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pessoas_registry_size",
			Help: "Number of persons currently held in the registry",
		}),
		CreateDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pessoas_create_duration_seconds",
			Help:    "Duration of successful create operations",
			Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
		}),
	}
}

func (m *Metrics) IncrementCreated() {
	m.PersonsCreated.Inc()
}

func (m *Metrics) SetRegistrySize(size int) {
	m.RegistrySize.Set(float64(size))
}

func (m *Metrics) ObserveCreate(start time.Time) {
	m.CreateDuration.Observe(time.Since(start).Seconds())
}
