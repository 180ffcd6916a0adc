// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics records Prometheus counters for search runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OutcomeOK labels a search that completed every stage.
const OutcomeOK = "ok"

type Metrics struct {
	SearchesTotal    *prometheus.CounterVec
	SearchDuration   prometheus.Histogram
	RecordsExtracted prometheus.Counter
	RecordsSkipped   prometheus.Counter
}

// New registers the search collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SearchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gscholar_searches_total",
				Help: "Total number of searches by outcome (ok or the failing stage)",
			},
			[]string{"outcome"},
		),
		SearchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gscholar_search_duration_seconds",
				Help:    "Search duration in seconds, fetch included",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
		),
		RecordsExtracted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "gscholar_records_extracted_total",
				Help: "Total number of result records extracted",
			},
		),
		RecordsSkipped: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "gscholar_records_skipped_total",
				Help: "Total number of result containers skipped for missing fields",
			},
		),
	}
}

// RecordSearch counts one search. outcome is OutcomeOK or the stage that failed.
func (m *Metrics) RecordSearch(outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.SearchesTotal.WithLabelValues(outcome).Inc()
	m.SearchDuration.Observe(duration.Seconds())
}

func (m *Metrics) RecordExtraction(extracted, skipped int) {
	if m == nil {
		return
	}
	m.RecordsExtracted.Add(float64(extracted))
	m.RecordsSkipped.Add(float64(skipped))
}

// WriteTextfile dumps everything in g to path in the node_exporter textfile
// format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
