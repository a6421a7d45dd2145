// Package guardcore defines the terminal Decision value and the Rule
// capability contract shared by every matcher implementation (sequence,
// pattern). It has no dependency on the root streamguard package so that
// rule implementations in sibling internal packages can produce Decisions
// without an import cycle; the root package re-exports these types as
// aliases so callers never see the internal/guardcore import path.
package guardcore

// Kind distinguishes the three disjoint Decision shapes.
type Kind int

const (
	KindAllow Kind = iota
	KindBlock
	KindRewrite
)

// Decision is the terminal verdict a rule (or the engine) produces for one
// fed chunk. It is immutable once constructed: Block and Rewrite carry
// owned strings so callers may retain a Decision after further chunks are
// fed without it being invalidated by future state changes.
//
// scoreDelta is not part of the public contract (spec §6 exposes only
// is_allow/is_block/is_rewrite, reason, replacement). It lets a scored
// sequence-rule completion (spec §4.3: "weight > 0 ⇒ never Block directly,
// only via the scorer") report its weight back to the engine within the
// same Allow decision, rather than adding a fourth Decision shape or a
// second return value to the Rule.Feed signature.
type Decision struct {
	kind        Kind
	reason      string
	replacement string
	scoreDelta  int
}

// Allow constructs the Allow decision.
func Allow() Decision {
	return Decision{kind: KindAllow}
}

// ScoredAllow constructs an Allow decision carrying a one-shot score
// contribution, used by scored sequence rules on completion.
func ScoredAllow(delta int) Decision {
	return Decision{kind: KindAllow, scoreDelta: delta}
}

// Block constructs a Block decision with a human-readable reason.
func Block(reason string) Decision {
	return Decision{kind: KindBlock, reason: reason}
}

// Rewrite constructs a Rewrite decision with the replacement text.
func Rewrite(replacement string) Decision {
	return Decision{kind: KindRewrite, replacement: replacement}
}

func (d Decision) IsAllow() bool   { return d.kind == KindAllow }
func (d Decision) IsBlock() bool   { return d.kind == KindBlock }
func (d Decision) IsRewrite() bool { return d.kind == KindRewrite }

// Reason returns the Block reason, or "" for non-Block decisions.
func (d Decision) Reason() string { return d.reason }

// Replacement returns the Rewrite replacement text, or "" for non-Rewrite
// decisions.
func (d Decision) Replacement() string { return d.replacement }

// ScoreDelta returns the one-shot score contribution attached by
// ScoredAllow, or 0. Engine-internal: not part of the binding-facing API.
func (d Decision) ScoreDelta() int { return d.scoreDelta }
