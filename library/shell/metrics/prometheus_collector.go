package metrics

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell"
)

const defaultNamespace = "bibliotheque"

var defaultBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// PrometheusCollector records handler and engine metrics into Prometheus vectors.
type PrometheusCollector struct {
	registerer prometheus.Registerer
	namespace  string
	buckets    []float64

	mu         sync.Mutex
	counters   map[string]*prometheus.CounterVec
	histograms map[string]*prometheus.HistogramVec
	gauges     map[string]*prometheus.GaugeVec
	labelKeys  map[string][]string
}

var _ shell.MetricsCollector = (*PrometheusCollector)(nil)

// Option configures a PrometheusCollector.
type Option func(*PrometheusCollector)

// WithNamespace sets the metric name prefix. The default is "bibliotheque".
func WithNamespace(namespace string) Option {
	return func(c *PrometheusCollector) {
		c.namespace = namespace
	}
}

// WithBuckets sets the histogram buckets in seconds.
func WithBuckets(buckets ...float64) Option {
	return func(c *PrometheusCollector) {
		if len(buckets) > 0 {
			c.buckets = buckets
		}
	}
}

// NewPrometheusCollector creates a collector registering its vectors on registerer.
// A nil registerer means prometheus.DefaultRegisterer, which promhttp.Handler() serves.
func NewPrometheusCollector(registerer prometheus.Registerer, opts ...Option) *PrometheusCollector {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	c := &PrometheusCollector{
		registerer: registerer,
		namespace:  defaultNamespace,
		buckets:    defaultBuckets,
		counters:   make(map[string]*prometheus.CounterVec),
		histograms: make(map[string]*prometheus.HistogramVec),
		gauges:     make(map[string]*prometheus.GaugeVec),
		labelKeys:  make(map[string][]string),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// RecordDuration observes duration in seconds on the histogram named metric.
func (c *PrometheusCollector) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	vec := c.histogramVec(metric, labels)
	if vec == nil {
		return
	}

	if observer, err := vec.GetMetricWith(labels); err == nil {
		observer.Observe(duration.Seconds())
	}
}

// IncrementCounter adds one to the counter named metric.
func (c *PrometheusCollector) IncrementCounter(metric string, labels map[string]string) {
	vec := c.counterVec(metric, labels)
	if vec == nil {
		return
	}

	if counter, err := vec.GetMetricWith(labels); err == nil {
		counter.Inc()
	}
}

// RecordValue sets the gauge named metric to value.
func (c *PrometheusCollector) RecordValue(metric string, value float64, labels map[string]string) {
	vec := c.gaugeVec(metric, labels)
	if vec == nil {
		return
	}

	if gauge, err := vec.GetMetricWith(labels); err == nil {
		gauge.Set(value)
	}
}

func (c *PrometheusCollector) counterVec(metric string, labels map[string]string) *prometheus.CounterVec {
	c.mu.Lock()
	defer c.mu.Unlock()

	if vec, ok := c.counters[metric]; ok {
		if !c.hasLabelKeys(metric, labels) {
			return nil
		}

		return vec
	}

	keys := sortedKeys(labels)
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: c.namespace,
		Name:      metricName(metric),
		Help:      helpFor(metric),
	}, keys)

	vec, ok := register(c.registerer, vec)
	if !ok {
		return nil
	}

	c.counters[metric] = vec
	c.labelKeys[metric] = keys

	return vec
}

func (c *PrometheusCollector) histogramVec(metric string, labels map[string]string) *prometheus.HistogramVec {
	c.mu.Lock()
	defer c.mu.Unlock()

	if vec, ok := c.histograms[metric]; ok {
		if !c.hasLabelKeys(metric, labels) {
			return nil
		}

		return vec
	}

	keys := sortedKeys(labels)
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: c.namespace,
		Name:      metricName(metric),
		Help:      helpFor(metric),
		Buckets:   c.buckets,
	}, keys)

	vec, ok := register(c.registerer, vec)
	if !ok {
		return nil
	}

	c.histograms[metric] = vec
	c.labelKeys[metric] = keys

	return vec
}

func (c *PrometheusCollector) gaugeVec(metric string, labels map[string]string) *prometheus.GaugeVec {
	c.mu.Lock()
	defer c.mu.Unlock()

	if vec, ok := c.gauges[metric]; ok {
		if !c.hasLabelKeys(metric, labels) {
			return nil
		}

		return vec
	}

	keys := sortedKeys(labels)
	vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: c.namespace,
		Name:      metricName(metric),
		Help:      helpFor(metric),
	}, keys)

	vec, ok := register(c.registerer, vec)
	if !ok {
		return nil
	}

	c.gauges[metric] = vec
	c.labelKeys[metric] = keys

	return vec
}

// hasLabelKeys reports whether labels carry exactly the label names the metric was created with.
func (c *PrometheusCollector) hasLabelKeys(metric string, labels map[string]string) bool {
	return slices.Equal(c.labelKeys[metric], sortedKeys(labels))
}

func register[V prometheus.Collector](registerer prometheus.Registerer, vec V) (V, bool) {
	err := registerer.Register(vec)
	if err == nil {
		return vec, true
	}

	var alreadyRegistered prometheus.AlreadyRegisteredError
	if errors.As(err, &alreadyRegistered) {
		if existing, ok := alreadyRegistered.ExistingCollector.(V); ok {
			return existing, true
		}
	}

	return vec, false
}

func sortedKeys(labels map[string]string) []string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

// metricName makes engine metric names like "eventstore.query.duration" valid Prometheus names.
func metricName(metric string) string {
	return strings.NewReplacer(".", "_", "-", "_", " ", "_").Replace(metric)
}

func helpFor(metric string) string {
	return "bibliotheque metric " + metric
}
