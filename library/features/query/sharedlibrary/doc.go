// Package sharedlibrary implements the Shared Library query use case: a member browses the lendable
// books of another member who shares their library with them. Personal fields are redacted.
package sharedlibrary
