// Package guardlog provides an optional, inert-by-default activity tracer
// for the guard engine. The core engine never performs I/O (see spec
// Non-goals); this package exists only so a caller who opts in via
// streamguard.WithLogger can observe rule activity without the core taking
// a hard logging dependency in its decision path.
package guardlog

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger. The zero value is valid and silently
// discards everything, so call sites never need a nil check.
type Logger struct {
	l zerolog.Logger
}

// Disabled returns a Logger that discards all events.
func Disabled() Logger {
	return Logger{l: zerolog.New(io.Discard)}
}

// New wraps an existing zerolog.Logger.
func New(l zerolog.Logger) Logger {
	return Logger{l: l}
}

// RuleBlocked records a rule latching the engine into a blocked state.
func (g Logger) RuleBlocked(component, reason string) {
	g.l.Info().Str("component", component).Str("reason", reason).Msg("rule blocked chunk")
}

// RuleRewrote records a rule substituting the working chunk.
func (g Logger) RuleRewrote(component string, before, after int) {
	g.l.Debug().Str("component", component).Int("before_len", before).Int("after_len", after).Msg("rule rewrote chunk")
}

// ScoreThresholdExceeded records the risk scorer latching the engine.
func (g Logger) ScoreThresholdExceeded(score, threshold int) {
	g.l.Warn().Int("score", score).Int("threshold", threshold).Msg("score threshold exceeded")
}

// ScoreAdded records a scored rule completion.
func (g Logger) ScoreAdded(component string, weight, total int) {
	g.l.Debug().Str("component", component).Int("weight", weight).Int("total", total).Msg("rule added score")
}
