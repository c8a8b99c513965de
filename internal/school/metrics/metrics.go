package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the school module.
// Tracks how many records are served and the cost of each dataset operation,
// which matters here because every request re-reads the dataset file.
type Metrics struct {
	RecordsServed  prometheus.Counter
	ListDuration   prometheus.Histogram
	LookupDuration prometheus.Histogram
}

// New creates a new Metrics instance with all school module metrics registered.
func New() *Metrics {
	return &Metrics{
		RecordsServed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "campusdir_records_served_total",
			Help: "Total number of school records returned to clients",
		}),
		ListDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "campusdir_list_duration_seconds",
			Help:    "Duration of full-dataset list operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		LookupDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "campusdir_lookup_duration_seconds",
			Help:    "Duration of single-record lookup operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// AddRecordsServed records n records returned to a client.
func (m *Metrics) AddRecordsServed(n int) {
	if m == nil {
		return
	}
	m.RecordsServed.Add(float64(n))
}

// ObserveList records the duration of a list operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveList(start time.Time) {
	if m == nil {
		return
	}
	m.ListDuration.Observe(time.Since(start).Seconds())
}

// ObserveLookup records the duration of a lookup operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveLookup(start time.Time) {
	if m == nil {
		return
	}
	m.LookupDuration.Observe(time.Since(start).Seconds())
}
