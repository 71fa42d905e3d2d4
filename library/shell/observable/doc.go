// Package observable decorates command and query handlers with logging and metrics.
package observable
