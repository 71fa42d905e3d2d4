// Package app wires every command and query handler of the library over one event store.
//
// App is the API the outer layers call: it generates ids, reads the clock and wraps each handler
// with logging and metrics. Principal ids are taken as plain strings, authentication happens elsewhere.
// Entity ids come back as the strings results and read models carry them; a malformed one is rejected
// as invalid before any handler runs.
package app
