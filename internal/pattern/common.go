// Package pattern implements the hand-coded character-level recognizers
// for email, URL, IPv4, and credit-card spans (spec §4.4). Each recognizer
// scans its accumulated carry-plus-chunk window from scratch on every Feed
// call; because the carry window is bounded by a small per-kind constant,
// this keeps the hot path allocation-light and linear in chunk length
// without needing a hand-rolled resumable state machine per byte class.
package pattern

import (
	"github.com/d-barletta/streamguard/internal/guardcore"
	"github.com/d-barletta/streamguard/internal/guarderr"
)

// Kind identifies which character grammar a Matcher recognizes.
type Kind int

const (
	Email Kind = iota
	URL
	IPv4
	CreditCard
)

// Default carry bounds per spec §3: "320 bytes for URLs, 64 for emails, 19
// for credit cards, 15 for IPv4".
const (
	DefaultEmailCarryBound      = 64
	DefaultURLCarryBound        = 320
	DefaultIPv4CarryBound       = 15
	DefaultCreditCardCarryBound = 19
)

// span is a half-open byte range [Start, End) within a scan window.
type span struct {
	start, end int
}

// scanner is the hand-coded recognizer for one Kind: given a byte window,
// it returns every complete, non-overlapping match found and the start
// offset of a trailing candidate that might still extend with more input
// (-1 if the window ends cleanly with no pending candidate).
type scanner func(data []byte) (matches []span, pendingStart int)

func scannerFor(kind Kind) scanner {
	switch kind {
	case Email:
		return scanEmail
	case URL:
		return scanURL
	case IPv4:
		return scanIPv4
	case CreditCard:
		return scanCreditCard
	default:
		panic("pattern: unknown kind")
	}
}

func defaultCarryBound(kind Kind) int {
	switch kind {
	case Email:
		return DefaultEmailCarryBound
	case URL:
		return DefaultURLCarryBound
	case IPv4:
		return DefaultIPv4CarryBound
	case CreditCard:
		return DefaultCreditCardCarryBound
	default:
		return 64
	}
}

// Matcher is a pattern rule: it scans fed chunks for one Kind's grammar and
// either blocks or rewrites on match, per spec §4.4 "Action on match".
type Matcher struct {
	kind        Kind
	scan        scanner
	isBlock     bool
	reason      string
	replacement string
	score       int
	carryBound  int

	carry   []byte
	blocked bool
}

// NewBlock constructs a pattern rule that blocks with reason on match.
func NewBlock(kind Kind, reason string) (*Matcher, error) {
	return newMatcher(kind, true, reason, "", defaultCarryBound(kind))
}

// NewRewrite constructs a pattern rule that substitutes replacement for
// every non-overlapping match.
func NewRewrite(kind Kind, replacement string) (*Matcher, error) {
	return newMatcher(kind, false, "", replacement, defaultCarryBound(kind))
}

// NewBlockBounded is NewBlock with an explicit carry-buffer bound,
// overriding the kind's default (spec §3's bounds are defaults, not
// fixed constants).
func NewBlockBounded(kind Kind, reason string, carryBound int) (*Matcher, error) {
	return newMatcher(kind, true, reason, "", carryBound)
}

// NewRewriteBounded is NewRewrite with an explicit carry-buffer bound.
func NewRewriteBounded(kind Kind, replacement string, carryBound int) (*Matcher, error) {
	return newMatcher(kind, false, "", replacement, carryBound)
}

func newMatcher(kind Kind, isBlock bool, reason, replacement string, carryBound int) (*Matcher, error) {
	if carryBound < 4 {
		return nil, guarderr.New("pattern.Matcher", guarderr.ErrInvalidCarryBound)
	}
	return &Matcher{
		kind:        kind,
		scan:        scannerFor(kind),
		isBlock:     isBlock,
		reason:      reason,
		replacement: replacement,
		carryBound:  carryBound,
	}, nil
}

// Feed implements guardcore.Rule.
func (m *Matcher) Feed(chunk string) guardcore.Decision {
	if m.blocked {
		return guardcore.Block(m.reason)
	}
	if chunk == "" && len(m.carry) == 0 {
		return guardcore.Allow()
	}

	data := make([]byte, 0, len(m.carry)+len(chunk))
	data = append(data, m.carry...)
	data = append(data, chunk...)

	matches, pendingStart := m.scan(data)

	if m.isBlock {
		return m.feedBlock(matches, data, pendingStart)
	}
	return m.feedRewrite(matches, data, pendingStart)
}

func (m *Matcher) feedBlock(matches []span, data []byte, pendingStart int) guardcore.Decision {
	if len(matches) > 0 {
		m.blocked = true
		m.carry = m.carry[:0]
		return guardcore.Block(m.reason)
	}
	m.setCarry(data, pendingStart)
	return guardcore.Allow()
}

// feedRewrite reconstructs this chunk's visible output: bytes before
// m.carry's old contribution that fall before the first match are passed
// through unchanged, matched spans are substituted, and any trailing
// candidate that might still extend is withheld into the new carry instead
// of being emitted (spec §4.4 carry policy).
func (m *Matcher) feedRewrite(matches []span, data []byte, pendingStart int) guardcore.Decision {
	emitEnd := len(data)
	if pendingStart >= 0 {
		emitEnd = pendingStart
		if len(data)-pendingStart > m.carryBound {
			// Only the last carryBound bytes fit in the carry; the bytes
			// before them are emitted now rather than dropped.
			emitEnd = len(data) - m.carryBound
		}
	}

	if len(matches) == 0 && emitEnd == len(data) && len(m.carry) == 0 {
		// Nothing matched, nothing is being withheld, and the previous Feed
		// withheld nothing either: pass the chunk through unchanged.
		m.setCarry(data, pendingStart)
		return guardcore.Allow()
	}

	out := make([]byte, 0, emitEnd)
	pos := 0
	for _, s := range matches {
		if s.start >= emitEnd {
			break
		}
		out = append(out, data[pos:s.start]...)
		out = append(out, m.replacement...)
		pos = s.end
	}
	if pos < emitEnd {
		out = append(out, data[pos:emitEnd]...)
	}

	m.setCarry(data, pendingStart)
	return guardcore.Rewrite(string(out))
}

// setCarry retains data[from:] as the new carry, discarding earliest bytes
// if the candidate has grown past the bound (spec §4.4: "the state machine
// is reset; the candidate was spurious").
func (m *Matcher) setCarry(data []byte, from int) {
	if from < 0 {
		m.carry = m.carry[:0]
		return
	}
	tail := data[from:]
	if len(tail) > m.carryBound {
		tail = tail[len(tail)-m.carryBound:]
	}
	m.carry = append(m.carry[:0], tail...)
}

// Flush emits any withheld carry bytes verbatim, since an unresolved
// candidate at true end-of-stream is, by definition, not a completed
// match. It is not part of guardcore.Rule; the engine calls it only when
// the caller explicitly signals end-of-stream (spec §4.2 "final flush").
func (m *Matcher) Flush() guardcore.Decision {
	if m.blocked || len(m.carry) == 0 {
		m.carry = m.carry[:0]
		return guardcore.Allow()
	}
	out := string(m.carry)
	m.carry = m.carry[:0]
	if m.isBlock {
		return guardcore.Allow()
	}
	return guardcore.Rewrite(out)
}

// Reset implements guardcore.Rule.
func (m *Matcher) Reset() {
	m.carry = m.carry[:0]
	m.blocked = false
}

// ScoreWeight implements guardcore.Rule. Pattern rules always act directly
// (Block or Rewrite) rather than contributing to the risk score; spec §6's
// external interface exposes no scored pattern constructor.
func (m *Matcher) ScoreWeight() int {
	return m.score
}
