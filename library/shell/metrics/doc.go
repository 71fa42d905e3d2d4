// Package metrics provides a Prometheus implementation of the shell.MetricsCollector interface.
//
// Metric vectors are created on first use, keyed by metric name. The label names of a metric are
// fixed by its first sample; later samples with a different label set are dropped.
package metrics
