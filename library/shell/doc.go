// Package shell is the imperative shell around the functional core in library/core.
//
// It maps between domain events and the storable events of the eventstore, stamps event metadata,
// and runs every command as one read-decide-append unit: query the consistency boundary, let the
// pure Decide function rule, append conditionally on the max sequence number that was read.
// Concurrency conflicts are retried with exponential backoff and jitter.
package shell
