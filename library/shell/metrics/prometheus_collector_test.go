package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell/metrics"
)

func Test_PrometheusCollector_IncrementCounter(t *testing.T) {
	// arrange
	registry := prometheus.NewRegistry()
	collector := metrics.NewPrometheusCollector(registry)
	labels := shell.BuildCommandLabels("LendBook", shell.StatusSuccess)

	// act
	collector.IncrementCounter(shell.CommandHandlerCallsMetric, labels)
	collector.IncrementCounter(shell.CommandHandlerCallsMetric, labels)

	// assert
	families, err := registry.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "bibliotheque_"+shell.CommandHandlerCallsMetric, families[0].GetName())
	require.Len(t, families[0].GetMetric(), 1)
	assert.InDelta(t, 2.0, families[0].GetMetric()[0].GetCounter().GetValue(), 0.0001)
}

func Test_PrometheusCollector_RecordDuration(t *testing.T) {
	// arrange
	registry := prometheus.NewRegistry()
	collector := metrics.NewPrometheusCollector(registry, metrics.WithNamespace("test"), metrics.WithBuckets(0.1, 1))

	// act
	collector.RecordDuration("eventstore.query.duration", 50*time.Millisecond, map[string]string{"operation": "query"})

	// assert
	families, err := registry.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "test_eventstore_query_duration", families[0].GetName())
	histogram := families[0].GetMetric()[0].GetHistogram()
	assert.Equal(t, uint64(1), histogram.GetSampleCount())
	assert.InDelta(t, 0.05, histogram.GetSampleSum(), 0.0001)
}

func Test_PrometheusCollector_RecordValue(t *testing.T) {
	// arrange
	registry := prometheus.NewRegistry()
	collector := metrics.NewPrometheusCollector(registry)

	// act
	collector.RecordValue("pending_invitations", 3, map[string]string{})
	collector.RecordValue("pending_invitations", 5, map[string]string{})

	// assert
	families, err := registry.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.InDelta(t, 5.0, families[0].GetMetric()[0].GetGauge().GetValue(), 0.0001)
}

func Test_PrometheusCollector_DropsSamplesWithDifferentLabelNames(t *testing.T) {
	// arrange
	registry := prometheus.NewRegistry()
	collector := metrics.NewPrometheusCollector(registry)
	collector.IncrementCounter("calls_total", map[string]string{"command_type": "LendBook"})

	// act
	assert.NotPanics(t, func() {
		collector.IncrementCounter("calls_total", map[string]string{"query_type": "Loans"})
	})

	// assert
	families, err := registry.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	require.Len(t, families[0].GetMetric(), 1)
	assert.InDelta(t, 1.0, families[0].GetMetric()[0].GetCounter().GetValue(), 0.0001)
}

func Test_PrometheusCollector_SharesVectorsAcrossCollectorsOnOneRegistry(t *testing.T) {
	// arrange
	registry := prometheus.NewRegistry()
	first := metrics.NewPrometheusCollector(registry)
	second := metrics.NewPrometheusCollector(registry)
	labels := map[string]string{"status": "success"}

	// act
	first.IncrementCounter("calls_total", labels)
	second.IncrementCounter("calls_total", labels)

	// assert
	families, err := registry.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.InDelta(t, 2.0, families[0].GetMetric()[0].GetCounter().GetValue(), 0.0001)
}
