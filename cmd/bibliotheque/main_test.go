package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore/memengine"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/app"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell/metrics"
)

type pingerStub struct {
	err error
}

func (p pingerStub) Ping(context.Context) error {
	return p.err
}

func Test_OpsRouter_Health(t *testing.T) {
	testCases := []struct {
		name       string
		pingErr    error
		wantStatus int
	}{
		{name: "store reachable", wantStatus: http.StatusOK},
		{name: "store unreachable", pingErr: errors.New("connection refused"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			router := newOpsRouter(pingerStub{err: tc.pingErr}, prometheus.NewRegistry())
			recorder := httptest.NewRecorder()

			// act
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

			// assert
			assert.Equal(t, tc.wantStatus, recorder.Code)
		})
	}
}

func Test_OpsRouter_Metrics_ExposesRegisteredCollectors(t *testing.T) {
	// arrange
	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "bibliotheque_test_total", Help: "test"})
	registry.MustRegister(counter)
	counter.Inc()

	router := newOpsRouter(pingerStub{}, registry)
	recorder := httptest.NewRecorder()

	// act
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	// assert
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "bibliotheque_test_total 1")
}

func Test_RunDemo_PrintsReadModels(t *testing.T) {
	// arrange
	es, err := memengine.NewEventStore()
	require.NoError(t, err)

	library, err := app.New(es, app.WithMetadataLookup(demoCatalogue{}))
	require.NoError(t, err)

	var out bytes.Buffer

	// act
	err = runDemo(context.Background(), library, &out)

	// assert
	require.NoError(t, err)

	var printed map[string]jsoniter.RawMessage
	require.NoError(t, jsoniter.Unmarshal(out.Bytes(), &printed))
	assert.Contains(t, printed, "alice_library")
	assert.Contains(t, printed, "shared_with_bob")
	assert.Contains(t, out.String(), "Kindred")
	assert.Contains(t, out.String(), "LENT_TO_MEMBER")
}

func Test_NewLibrary_RecordsHandlerCallsIntoTheServedRegistry(t *testing.T) {
	// arrange
	es, err := memengine.NewEventStore()
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	collector := metrics.NewPrometheusCollector(registry, metrics.WithNamespace(metricNamespace))

	library, err := newLibrary(es, slog.New(slog.NewTextHandler(io.Discard, nil)), collector)
	require.NoError(t, err)

	// act
	_, err = library.RegisterMember(context.Background(), "member-1", "marie", "marie@example.org")
	require.NoError(t, err)

	// assert
	families, err := registry.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}

	assert.Contains(t, names, metricNamespace+"_"+shell.CommandHandlerCallsMetric)
}
