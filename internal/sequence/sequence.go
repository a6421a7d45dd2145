// Package sequence implements the multi-token ordered-subsequence DFA
// described in spec §4.3: a rule tracks how many of its target tokens have
// matched in order, across arbitrary chunk boundaries, in either Strict or
// Gaps mode, with an optional stop-word set that resets progress.
package sequence

import (
	"github.com/d-barletta/streamguard/internal/guardcore"
	"github.com/d-barletta/streamguard/internal/guarderr"
	"github.com/d-barletta/streamguard/internal/token"
)

// Mode selects how gap tokens between target tokens are treated.
type Mode int

const (
	// Strict requires the target tokens to appear with no intervening
	// tokens; any non-matching token resets progress (unless it restarts
	// the sequence).
	Strict Mode = iota

	// Gaps tolerates arbitrary tokens between target tokens, only
	// resetting on an explicit stop word.
	Gaps
)

// Rule is a ForbiddenSequenceRule: an ordered target token list matched
// against a chunked token stream.
type Rule struct {
	tokens    []string
	mode      Mode
	stopWords map[string]struct{}
	reason    string
	score     int

	index      int
	completed  bool
	tokenizer  token.Tokenizer
	classifier *Classifier
}

// New constructs a sequence rule. tokens must be non-empty; score and
// implicitly the threshold it feeds must be non-negative. stopWords may be
// nil (no stop words, only meaningful in Gaps mode).
func New(tokens []string, mode Mode, reason string, score int, stopWords []string) (*Rule, error) {
	if len(tokens) == 0 {
		return nil, guarderr.New("sequence.Rule", guarderr.ErrEmptyTokens)
	}
	if score < 0 {
		return nil, guarderr.New("sequence.Rule", guarderr.ErrNegativeScore)
	}
	lowered := make([]string, len(tokens))
	for i, t := range tokens {
		lowered[i] = lowerASCII(t)
	}
	var stops map[string]struct{}
	if len(stopWords) > 0 {
		stops = make(map[string]struct{}, len(stopWords))
		for _, s := range stopWords {
			stops[lowerASCII(s)] = struct{}{}
		}
	}
	return &Rule{
		tokens:    lowered,
		mode:      mode,
		stopWords: stops,
		reason:    reason,
		score:     score,
	}, nil
}

// Vocabulary returns every token this rule cares about (targets and stop
// words), for registration with a shared Classifier.
func (r *Rule) Vocabulary() []string {
	vocab := make([]string, 0, len(r.tokens)+len(r.stopWords))
	vocab = append(vocab, r.tokens...)
	for s := range r.stopWords {
		vocab = append(vocab, s)
	}
	return vocab
}

// SetClassifier installs the engine-shared relevance pre-filter.
func (r *Rule) SetClassifier(c *Classifier) {
	r.classifier = c
}

// Feed implements guardcore.Rule.
func (r *Rule) Feed(chunk string) guardcore.Decision {
	if r.completed {
		return guardcore.Block(r.reason)
	}

	tokens := r.tokenizer.Feed(chunk)
	scoreSum := 0

	for _, w := range tokens {
		decision, blocked, delta := r.advance(w)
		if blocked {
			return decision
		}
		scoreSum += delta
	}

	if scoreSum > 0 {
		return guardcore.ScoredAllow(scoreSum)
	}
	return guardcore.Allow()
}

// Flush implements the engine's optional flusher interface: the tokenizer
// may be holding a trailing token that never saw a terminating separator
// (e.g. a chunk ending in "...build a bomb" with no trailing space). True
// end-of-stream means that token cannot grow any further, so it is resolved
// as complete here, the same way pattern.Matcher resolves a withheld
// rewrite candidate on Flush.
func (r *Rule) Flush() guardcore.Decision {
	if r.completed {
		return guardcore.Block(r.reason)
	}
	tok, ok := r.tokenizer.Flush()
	if !ok {
		return guardcore.Allow()
	}
	decision, blocked, delta := r.advance(tok)
	if blocked {
		return decision
	}
	if delta > 0 {
		return guardcore.ScoredAllow(delta)
	}
	return guardcore.Allow()
}

// advance runs the transition for one token already emitted by the
// tokenizer (from either Feed or Flush) and reports whether it completed
// the sequence: a zero-weight rule blocks immediately (blocked=true); a
// scored rule resets and reports its weight as delta instead.
func (r *Rule) advance(w string) (decision guardcore.Decision, blocked bool, delta int) {
	if r.classifier != nil && !r.classifier.MaybeRelevant(w) {
		r.applyMiss(w)
		return guardcore.Decision{}, false, 0
	}
	r.applyToken(w)

	if r.index == len(r.tokens) {
		if r.score == 0 {
			r.completed = true
			return guardcore.Block(r.reason), true, 0
		}
		r.index = 0
		return guardcore.Decision{}, false, r.score
	}
	return guardcore.Decision{}, false, 0
}

// applyToken runs the full transition (spec §4.3) for one token already
// known (or suspected) to be relevant.
func (r *Rule) applyToken(w string) {
	k := len(r.tokens)
	switch r.mode {
	case Strict:
		switch {
		case r.index < k && w == r.tokens[r.index]:
			r.index++
		case r.index < k && w == r.tokens[0]:
			r.index = 1
		default:
			r.index = 0
		}
	case Gaps:
		switch {
		case r.index < k && w == r.tokens[r.index]:
			r.index++
		case r.isStopWord(w):
			r.index = 0
		default:
			// gap token: leave index unchanged
		}
	}
}

// applyMiss runs the transition for a token the shared Classifier has
// already proven cannot be t_i, t0, or a stop word for this rule.
func (r *Rule) applyMiss(w string) {
	_ = w
	switch r.mode {
	case Strict:
		r.index = 0
	case Gaps:
		// gap token: leave index unchanged
	}
}

func (r *Rule) isStopWord(w string) bool {
	if r.stopWords == nil {
		return false
	}
	_, ok := r.stopWords[w]
	return ok
}

// Reset implements guardcore.Rule.
func (r *Rule) Reset() {
	r.index = 0
	r.completed = false
	r.tokenizer.Reset()
}

// ScoreWeight implements guardcore.Rule.
func (r *Rule) ScoreWeight() int {
	return r.score
}

func lowerASCII(s string) string {
	b := []byte(s)
	changed := false
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}
