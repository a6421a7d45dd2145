package sequence

import "github.com/coregx/ahocorasick"

// Classifier is a shared, engine-wide pre-filter over every active
// sequence rule's vocabulary (target tokens plus stop words). It mirrors
// the teacher's strategy of switching large literal alternations (more
// than ~32 patterns, see meta/strategy.go) to an Aho-Corasick automaton:
// here it lets an engine with many ForbiddenSequenceRules decide, in one
// O(len(token)) automaton pass, whether an incoming token is relevant to
// *any* rule at all, before asking each rule to do its own exact-match
// transition.
//
// Classifier never drives correctness: it is a MaybeRelevant pre-filter
// only, built from automaton.IsMatch (an existence check, immune to
// Aho-Corasick's leftmost/shortest-match tie-breaking, which would be
// unsafe to use for exact per-rule transitions). Every rule still performs
// its own exact token comparisons; Classifier only lets rules skip that
// work when a token plainly cannot advance or reset them.
type Classifier struct {
	auto *ahocorasick.Automaton
}

// NewClassifier builds a Classifier over the given vocabulary. An empty
// vocabulary yields a Classifier whose MaybeRelevant always reports true
// (fail open: no pre-filter, every rule still does its own exact check).
func NewClassifier(words []string) (*Classifier, error) {
	if len(words) == 0 {
		return &Classifier{}, nil
	}
	builder := ahocorasick.NewBuilder()
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		builder.AddPattern([]byte(w))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Classifier{auto: auto}, nil
}

// MaybeRelevant reports whether token could possibly match or reset any
// rule registered in this Classifier's vocabulary. A false result is a
// hard guarantee: no rule transition depends on this token.
func (c *Classifier) MaybeRelevant(token string) bool {
	if c == nil || c.auto == nil {
		return true
	}
	return c.auto.IsMatch([]byte(token))
}
