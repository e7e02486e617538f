// Package core defines the shared leaf types used across logtap.
//
// It provides the Level type covering the fixed seven-level universe
// (trace, debug, info, warn, error, fatal, file), the LevelSet bitmask
// with the declarative level-spec parser used by routing targets, the
// Entry type held by the retention buffer, and the Identity cache of
// process-wide values (pid, hostname, platform end-of-line).
//
// The level-name table intentionally carries eight names for seven
// levels: both "log" and "info" resolve to InfoLevel, so a target spec
// may use either name and the Logger.Log and Logger.Info entry points
// share one routing slot.
package core
