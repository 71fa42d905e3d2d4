package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/app"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell/config"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell/metrics"
)

const (
	shutdownTimeout = 10 * time.Second
	pingTimeout     = 2 * time.Second
	metricNamespace = "bibliotheque"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	var seedDemo bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Host the library and serve /health and /metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			logger, err := config.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}

			registry := prometheus.NewRegistry()
			registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			collector := metrics.NewPrometheusCollector(registry, metrics.WithNamespace(metricNamespace))

			es, err := config.OpenEventStore(cmd.Context(), cfg, logger, collector)
			if err != nil {
				return err
			}
			defer func() { _ = es.Close() }()

			library, err := newLibrary(es, logger, collector, app.WithMetadataLookup(demoCatalogue{}))
			if err != nil {
				return err
			}

			if seedDemo {
				if err = runDemo(cmd.Context(), library, io.Discard); err != nil {
					return err
				}

				logger.Info("demo scenario seeded", "driver", es.Driver)
			}

			server := &http.Server{
				Addr:              ":" + cfg.HTTPPort,
				Handler:           newOpsRouter(es, registry),
				ReadHeaderTimeout: 5 * time.Second,
			}

			serveErr := make(chan error, 1)
			go func() {
				logger.Info("ops server starting", "addr", server.Addr, "driver", es.Driver)
				serveErr <- server.ListenAndServe()
			}()

			select {
			case err = <-serveErr:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}

				return err

			case <-cmd.Context().Done():
				logger.Info("ops server shutting down")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				return server.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().BoolVar(&seedDemo, "seed-demo", false, "run the demo scenario through the library before serving")

	return cmd
}

// newLibrary builds the App serve hosts. Every command and query logs through logger and records into collector.
func newLibrary(
	es shell.EventStore,
	logger *slog.Logger,
	collector shell.MetricsCollector,
	opts ...app.Option,
) (*app.App, error) {

	return app.New(es, append([]app.Option{app.WithLogger(logger), app.WithMetrics(collector)}, opts...)...)
}

type pinger interface {
	Ping(ctx context.Context) error
}

func newOpsRouter(store pinger, gatherer prometheus.Gatherer) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	r.HandleFunc("/health", healthHandler(store)).Methods(http.MethodGet)

	return r
}

func healthHandler(store pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")

		if err := store.Ping(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unavailable"}`))

			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
