package guardlog

import "testing"

// These tests only confirm the zero-value/Disabled/New constructors never
// panic when every event method is called; guardlog has no I/O surface of
// its own to assert against once the underlying zerolog.Logger is
// discarding output.

func TestZeroValueLoggerIsSafe(t *testing.T) {
	var g Logger
	g.RuleBlocked("sequence", "weapons")
	g.RuleRewrote("pattern", 10, 7)
	g.ScoreThresholdExceeded(100, 100)
	g.ScoreAdded("sequence", 50, 100)
}

func TestDisabledLoggerIsSafe(t *testing.T) {
	g := Disabled()
	g.RuleBlocked("sequence", "weapons")
	g.RuleRewrote("pattern", 10, 7)
	g.ScoreThresholdExceeded(100, 100)
	g.ScoreAdded("sequence", 50, 100)
}
