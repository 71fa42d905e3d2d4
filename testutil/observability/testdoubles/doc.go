// Package testdoubles provides spies for the logging and metrics interfaces.
package testdoubles
