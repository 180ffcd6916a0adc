// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSearch(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.RecordSearch(OutcomeOK, 200*time.Millisecond)
	m.RecordSearch(OutcomeOK, time.Second)
	m.RecordSearch("fetch", 3*time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues("fetch")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.SearchDuration))
}

func TestRecordExtraction(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.RecordExtraction(10, 2)
	m.RecordExtraction(5, 0)

	assert.Equal(t, 15.0, testutil.ToFloat64(m.RecordsExtracted))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RecordsSkipped))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordSearch(OutcomeOK, time.Second)
		m.RecordExtraction(1, 1)
	})
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.RecordSearch(OutcomeOK, time.Second)

	path := filepath.Join(t.TempDir(), "gscholar.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `gscholar_searches_total{outcome="ok"} 1`)
	assert.Contains(t, string(data), "gscholar_search_duration_seconds_count 1")
}
