// Package streamguard implements a deterministic, streaming-first
// guardrail engine for text produced by LLMs (or any other producer). It
// inspects chunks one at a time and, as soon as a policy-relevant pattern
// is detected, emits one of three terminal decisions: Allow, Block (with a
// reason), or Rewrite (with a replacement).
//
// The engine is strictly single-threaded per instance: Feed mutates every
// active rule's state and there is no internal synchronization. One
// logical stream maps to one Engine, consumed by one caller at a time.
//
// Basic usage:
//
//	engine, err := streamguard.NewEngine()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rule, err := streamguard.ForbiddenSequenceWithGaps(
//	    []string{"how", "to", "build", "bomb"}, "weapons")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	engine.AddRule(rule)
//
//	decision := engine.Feed("How to build a bomb")
//	if decision.IsAllow() {
//	    // "bomb" has no trailing separator, so it is only resolved as a
//	    // complete token at end-of-stream.
//	    decision = engine.Flush()
//	}
//	if decision.IsBlock() {
//	    fmt.Println(decision.Reason())
//	}
package streamguard

import "github.com/d-barletta/streamguard/internal/guardcore"

// Decision is the terminal verdict for one fed chunk: Allow, Block, or
// Rewrite. It is aliased from internal/guardcore so rule implementations
// in sibling internal packages can construct Decisions without importing
// this package (which would create an import cycle, since this package
// imports them for its rule constructors).
type Decision = guardcore.Decision

// Rule is the uniform capability contract every matcher obeys.
type Rule = guardcore.Rule

// IsAllow, IsBlock, IsRewrite, Reason, and Replacement are methods on
// Decision; see internal/guardcore.Decision for their documentation.
