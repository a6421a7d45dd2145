package streamguard

import (
	"sync/atomic"

	"github.com/d-barletta/streamguard/internal/guardcore"
	"github.com/d-barletta/streamguard/internal/guardlog"
	"github.com/d-barletta/streamguard/internal/sequence"
)

// Stats tracks lightweight activity counters for library consumers who
// want to observe the engine without tracing every Feed call themselves.
// This is pure bookkeeping (spec's supplemented observability surface,
// grounded on the teacher's meta.Stats), not semantic analysis: it never
// influences a Decision.
type Stats struct {
	ChunksFed       uint64
	RulesCompleted  uint64
	RewritesApplied uint64
	BlocksLatched   uint64
}

// flusher is implemented by rules that can resolve withheld state at
// end-of-stream (spec §4.2's "final flush"): pattern.Matcher flushes
// withheld rewrite bytes, sequence.Rule flushes a trailing token that never
// saw a terminating separator. It is an optional interface rather than
// part of guardcore.Rule since not every rule has anything to withhold.
type flusher interface {
	Flush() guardcore.Decision
}

// GuardEngine fans each chunk across its active rules in insertion order,
// applies rewrite substitutions, enforces the cumulative risk score, and
// produces a single terminal Decision per chunk (spec §4.6).
type GuardEngine struct {
	rules     []Rule
	seqRules  []*sequence.Rule
	threshold *int
	config    Config
	log       guardlog.Logger

	score   int
	stopped bool
	reason  string

	fed   bool
	stats Stats
}

// NewEngine constructs an engine with no scoring unless WithScoreThreshold
// is supplied. A negative threshold or decay is a configuration error
// surfaced synchronously here rather than discovered later on Feed (spec
// §7).
func NewEngine(opts ...Option) (*GuardEngine, error) {
	e := &GuardEngine{
		config: DefaultConfig(),
		log:    guardlog.Disabled(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// AddRule appends rule to the ordered rule list. Per spec §4.6, this
// should not be called after the first Feed without an intervening Reset;
// GuardEngine documents rather than enforces this (mirroring the spec's
// "implementations may enforce or document this").
//
// Sequence rules share a single Aho-Corasick relevance classifier built
// over the combined vocabulary of every sequence rule the engine owns;
// adding one rebuilds that classifier and reassigns it to all of them.
func (e *GuardEngine) AddRule(rule Rule) {
	e.rules = append(e.rules, rule)
	if sr, ok := rule.(*sequence.Rule); ok {
		e.seqRules = append(e.seqRules, sr)
		e.rebuildClassifier()
	}
}

func (e *GuardEngine) rebuildClassifier() {
	var vocab []string
	for _, sr := range e.seqRules {
		vocab = append(vocab, sr.Vocabulary()...)
	}
	classifier, err := sequence.NewClassifier(vocab)
	if err != nil {
		// NewClassifier skips empty strings, so a rebuild can only fail if
		// the Aho-Corasick builder itself rejects input, in which case
		// running without a pre-filter (fail-open) is still correct.
		classifier = nil
	}
	for _, sr := range e.seqRules {
		sr.SetClassifier(classifier)
	}
}

// RuleCount returns the number of rules currently owned by the engine.
func (e *GuardEngine) RuleCount() int {
	return len(e.rules)
}

// CurrentScore returns the cumulative risk score.
func (e *GuardEngine) CurrentScore() int {
	return e.score
}

// IsStopped reports whether the engine has latched into a blocked state.
func (e *GuardEngine) IsStopped() bool {
	return e.stopped
}

// Stats returns a snapshot of the engine's activity counters.
func (e *GuardEngine) Stats() Stats {
	return Stats{
		ChunksFed:       atomic.LoadUint64(&e.stats.ChunksFed),
		RulesCompleted:  atomic.LoadUint64(&e.stats.RulesCompleted),
		RewritesApplied: atomic.LoadUint64(&e.stats.RewritesApplied),
		BlocksLatched:   atomic.LoadUint64(&e.stats.BlocksLatched),
	}
}

// Feed processes one chunk and returns a single Decision representing the
// net effect on the output stream (spec §4.6).
func (e *GuardEngine) Feed(chunk string) Decision {
	if e.config.EnableStats {
		atomic.AddUint64(&e.stats.ChunksFed, 1)
	}
	e.fed = true

	if e.stopped {
		return guardcore.Block(e.reason)
	}

	if e.threshold != nil && e.config.DecayPerChunk > 0 {
		e.score -= e.config.DecayPerChunk
		if e.score < 0 {
			e.score = 0
		}
	}

	working := chunk
	for _, rule := range e.rules {
		decision := rule.Feed(working)

		switch {
		case decision.IsBlock():
			e.latch(decision.Reason())
			return guardcore.Block(decision.Reason())

		case decision.IsRewrite():
			before := len(working)
			working = decision.Replacement()
			e.log.RuleRewrote("pattern", before, len(working))
			if e.config.EnableStats {
				atomic.AddUint64(&e.stats.RewritesApplied, 1)
			}

		default: // Allow, possibly carrying a scored completion
			if delta := decision.ScoreDelta(); delta > 0 && e.threshold != nil {
				e.score += delta
				if e.config.EnableStats {
					atomic.AddUint64(&e.stats.RulesCompleted, 1)
				}
				e.log.ScoreAdded("sequence", delta, e.score)
				if e.score >= *e.threshold {
					e.log.ScoreThresholdExceeded(e.score, *e.threshold)
					e.latch("score threshold exceeded")
					return guardcore.Block("score threshold exceeded")
				}
			}
		}
	}

	if working != chunk {
		return guardcore.Rewrite(working)
	}
	return guardcore.Allow()
}

// Flush signals end-of-stream: every rule that can emit withheld carry
// bytes (spec §4.2's "final flush") does so. A Block resolved by Flush
// (from a rule or from the score threshold) latches the engine just as in
// Feed; Flush never clears a stopped state. It is meant to be called once
// after the caller has no more chunks to feed.
func (e *GuardEngine) Flush() Decision {
	if e.stopped {
		return guardcore.Block(e.reason)
	}

	working := ""
	hasOutput := false
	for _, rule := range e.rules {
		f, ok := rule.(flusher)
		if !ok {
			continue
		}
		decision := f.Flush()
		switch {
		case decision.IsBlock():
			e.latch(decision.Reason())
			return guardcore.Block(decision.Reason())
		case decision.IsRewrite():
			e.log.RuleRewrote("pattern", 0, len(decision.Replacement()))
			working += decision.Replacement()
			hasOutput = true
		default: // Allow, possibly carrying a scored completion resolved by Flush
			if delta := decision.ScoreDelta(); delta > 0 && e.threshold != nil {
				e.score += delta
				if e.config.EnableStats {
					atomic.AddUint64(&e.stats.RulesCompleted, 1)
				}
				e.log.ScoreAdded("sequence", delta, e.score)
				if e.score >= *e.threshold {
					e.log.ScoreThresholdExceeded(e.score, *e.threshold)
					e.latch("score threshold exceeded")
					return guardcore.Block("score threshold exceeded")
				}
			}
		}
	}

	if !hasOutput {
		return guardcore.Allow()
	}
	return guardcore.Rewrite(working)
}

func (e *GuardEngine) latch(reason string) {
	e.stopped = true
	e.reason = reason
	if e.config.EnableStats {
		atomic.AddUint64(&e.stats.BlocksLatched, 1)
	}
	e.log.RuleBlocked("engine", reason)
}

// Reset resets every rule, clears the score, and clears the stopped state.
func (e *GuardEngine) Reset() {
	for _, rule := range e.rules {
		rule.Reset()
	}
	e.score = 0
	e.stopped = false
	e.reason = ""
	e.fed = false
}
