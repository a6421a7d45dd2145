package streamguard

import (
	"github.com/d-barletta/streamguard/internal/pattern"
	"github.com/d-barletta/streamguard/internal/sequence"
)

// ForbiddenSequenceStrict builds a rule that blocks as soon as tokens
// appear consecutively, in order, with no intervening tokens (spec §4.3
// Strict mode).
func ForbiddenSequenceStrict(tokens []string, reason string) (Rule, error) {
	return sequence.New(tokens, sequence.Strict, reason, 0, nil)
}

// ForbiddenSequenceWithGaps builds a rule that blocks once tokens appear
// in order with arbitrary tokens permitted between them (spec §4.3 Gaps
// mode).
func ForbiddenSequenceWithGaps(tokens []string, reason string) (Rule, error) {
	return sequence.New(tokens, sequence.Gaps, reason, 0, nil)
}

// ForbiddenSequenceWithGapsAndStopWords is ForbiddenSequenceWithGaps with
// an explicit stop-word set: encountering any stop word resets progress
// back to the start (spec §4.3's stop-word reset, supplemented with a
// public constructor since the distilled surface only described the
// mechanism, not a factory for it).
func ForbiddenSequenceWithGapsAndStopWords(tokens, stopWords []string, reason string) (Rule, error) {
	return sequence.New(tokens, sequence.Gaps, reason, 0, stopWords)
}

// ForbiddenSequenceWithScore builds a scored sequence rule: completing the
// sequence adds score to the engine's cumulative risk score instead of
// blocking outright (spec §4.5). score must be positive; use
// ForbiddenSequenceStrict/WithGaps for an immediate block.
func ForbiddenSequenceWithScore(tokens []string, reason string, score int) (Rule, error) {
	return sequence.New(tokens, sequence.Gaps, reason, score, nil)
}

// ForbiddenSequenceStrictWithScore is the Strict-mode counterpart of
// ForbiddenSequenceWithScore.
func ForbiddenSequenceStrictWithScore(tokens []string, reason string, score int) (Rule, error) {
	return sequence.New(tokens, sequence.Strict, reason, score, nil)
}

// PatternEmail blocks on any recognized email address (spec §4.4), using
// Config.EmailCarryBound's default bound.
func PatternEmail(reason string) (Rule, error) {
	return pattern.NewBlock(pattern.Email, reason)
}

// PatternEmailRewrite substitutes replacement for every recognized email
// address, leaving surrounding text untouched (spec §4.4).
func PatternEmailRewrite(replacement string) (Rule, error) {
	return pattern.NewRewrite(pattern.Email, replacement)
}

// PatternEmailBounded is PatternEmail with an explicit carry-buffer bound,
// e.g. cfg.EmailCarryBound from a tuned Config.
func PatternEmailBounded(reason string, carryBound int) (Rule, error) {
	return pattern.NewBlockBounded(pattern.Email, reason, carryBound)
}

// PatternEmailRewriteBounded is PatternEmailRewrite with an explicit
// carry-buffer bound.
func PatternEmailRewriteBounded(replacement string, carryBound int) (Rule, error) {
	return pattern.NewRewriteBounded(pattern.Email, replacement, carryBound)
}

// PatternURL blocks on any recognized http(s) URL.
func PatternURL(reason string) (Rule, error) {
	return pattern.NewBlock(pattern.URL, reason)
}

// PatternURLRewrite substitutes replacement for every recognized http(s)
// URL.
func PatternURLRewrite(replacement string) (Rule, error) {
	return pattern.NewRewrite(pattern.URL, replacement)
}

// PatternURLBounded is PatternURL with an explicit carry-buffer bound,
// e.g. cfg.URLCarryBound from a tuned Config.
func PatternURLBounded(reason string, carryBound int) (Rule, error) {
	return pattern.NewBlockBounded(pattern.URL, reason, carryBound)
}

// PatternURLRewriteBounded is PatternURLRewrite with an explicit
// carry-buffer bound.
func PatternURLRewriteBounded(replacement string, carryBound int) (Rule, error) {
	return pattern.NewRewriteBounded(pattern.URL, replacement, carryBound)
}

// PatternIPv4 blocks on any recognized dotted-decimal IPv4 address.
func PatternIPv4(reason string) (Rule, error) {
	return pattern.NewBlock(pattern.IPv4, reason)
}

// PatternIPv4Rewrite substitutes replacement for every recognized IPv4
// address.
func PatternIPv4Rewrite(replacement string) (Rule, error) {
	return pattern.NewRewrite(pattern.IPv4, replacement)
}

// PatternIPv4Bounded is PatternIPv4 with an explicit carry-buffer bound,
// e.g. cfg.IPv4CarryBound from a tuned Config.
func PatternIPv4Bounded(reason string, carryBound int) (Rule, error) {
	return pattern.NewBlockBounded(pattern.IPv4, reason, carryBound)
}

// PatternIPv4RewriteBounded is PatternIPv4Rewrite with an explicit
// carry-buffer bound.
func PatternIPv4RewriteBounded(replacement string, carryBound int) (Rule, error) {
	return pattern.NewRewriteBounded(pattern.IPv4, replacement, carryBound)
}

// PatternCreditCard blocks on any recognized, Luhn-valid credit card
// number.
func PatternCreditCard(reason string) (Rule, error) {
	return pattern.NewBlock(pattern.CreditCard, reason)
}

// PatternCreditCardRewrite substitutes replacement for every recognized,
// Luhn-valid credit card number.
func PatternCreditCardRewrite(replacement string) (Rule, error) {
	return pattern.NewRewrite(pattern.CreditCard, replacement)
}

// PatternCreditCardBounded is PatternCreditCard with an explicit
// carry-buffer bound, e.g. cfg.CreditCardCarryBound from a tuned Config.
func PatternCreditCardBounded(reason string, carryBound int) (Rule, error) {
	return pattern.NewBlockBounded(pattern.CreditCard, reason, carryBound)
}

// PatternCreditCardRewriteBounded is PatternCreditCardRewrite with an
// explicit carry-buffer bound.
func PatternCreditCardRewriteBounded(replacement string, carryBound int) (Rule, error) {
	return pattern.NewRewriteBounded(pattern.CreditCard, replacement, carryBound)
}
