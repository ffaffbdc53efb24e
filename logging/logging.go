// Package logging constructs the single *zap.Logger that cmd/dyngctl builds
// and hands to httpapi as an explicit field. The
// core engine packages stay logging-free, matching the original C++
// library's lack of any logging dependency.
package logging

import "go.uber.org/zap"

// New returns a production logger, or a development logger with debug-level
// output and human-readable encoding when debug is true.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Nop returns a logger that discards everything, for tests and callers that
// don't want logging wired up.
func Nop() *zap.Logger { return zap.NewNop() }
