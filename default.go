package ereport

import "sync/atomic"

// DefaultLevelEnv is the variable read for the threshold of the MAIN reporter.
const DefaultLevelEnv = "LOGGING_LEVEL"

// mainReporter caches the MAIN reporter so facade calls skip the registry lock.
var mainReporter atomic.Pointer[Reporter]

// Main returns the MAIN reporter of DefaultRegistry, creating it on first
// use with the threshold named by LOGGING_LEVEL (INFO when unset).
// Panics if LOGGING_LEVEL holds an unknown level, to surface misconfiguration early.
func Main() *Reporter {
	if r := mainReporter.Load(); r != nil {
		return r
	}
	r, err := DefaultRegistry().GetOrMake(MainName, DefaultLevelEnv, LevelInfo)
	if err != nil {
		panic(err)
	}
	mainReporter.Store(r)
	return r
}
