// Package guarderr defines the configuration-time error taxonomy for
// StreamGuard. Construction failures are the only errors the core surfaces;
// feed is total (see the package-level docs on streamguard.GuardEngine.Feed).
package guarderr

import (
	"errors"
	"fmt"
)

// Sentinel configuration errors. Wrapped with component context by
// ConfigError before being returned to callers.
var (
	// ErrEmptyTokens indicates a sequence rule was constructed with no
	// target tokens.
	ErrEmptyTokens = errors.New("sequence rule requires at least one token")

	// ErrNegativeScore indicates a rule was constructed with a negative
	// score weight.
	ErrNegativeScore = errors.New("score weight must be >= 0")

	// ErrNegativeThreshold indicates an engine was constructed with a
	// negative score threshold.
	ErrNegativeThreshold = errors.New("score threshold must be >= 0")

	// ErrNegativeDecay indicates an engine was constructed with a negative
	// per-chunk decay amount.
	ErrNegativeDecay = errors.New("decay must be >= 0")

	// ErrInvalidCarryBound indicates a pattern rule's carry buffer bound is
	// too small to hold any plausible candidate match.
	ErrInvalidCarryBound = errors.New("carry buffer bound too small")
)

// ConfigError wraps a configuration-time failure with the component that
// raised it, mirroring the teacher's CompileError shape.
type ConfigError struct {
	Component string
	Err       error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("streamguard: %s: %v", e.Component, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// New wraps err with the given component name.
func New(component string, err error) error {
	if err == nil {
		return nil
	}
	return &ConfigError{Component: component, Err: err}
}
