package streamguard

import (
	"github.com/d-barletta/streamguard/internal/guarderr"
	"github.com/d-barletta/streamguard/internal/guardlog"
	"github.com/d-barletta/streamguard/internal/pattern"
)

// Config carries engine-wide tunables the spec leaves as implementation
// choices: per-chunk score decay and the carry-buffer byte bounds for each
// pattern kind (spec §3's "bounded: e.g. 320 bytes for URLs, 64 for
// emails, 19 for credit cards, 15 for IPv4").
type Config struct {
	DecayPerChunk int

	EmailCarryBound      int
	URLCarryBound        int
	IPv4CarryBound       int
	CreditCardCarryBound int

	// EnableStats toggles the Stats() bookkeeping (spec's supplemented
	// observability surface). Disabling it skips the atomic increments on
	// the Feed hot path.
	EnableStats bool
}

// DefaultConfig returns the spec's default tunables: no decay, the spec's
// literal carry bounds, stats enabled.
func DefaultConfig() Config {
	return Config{
		DecayPerChunk:        0,
		EmailCarryBound:      pattern.DefaultEmailCarryBound,
		URLCarryBound:        pattern.DefaultURLCarryBound,
		IPv4CarryBound:       pattern.DefaultIPv4CarryBound,
		CreditCardCarryBound: pattern.DefaultCreditCardCarryBound,
		EnableStats:          true,
	}
}

// Option configures a GuardEngine at construction time. An Option that
// fails validation returns an error, which NewEngine surfaces synchronously
// rather than letting a malformed engine run silently (spec §7:
// configuration errors like a negative decay or threshold must be
// construction failures, not latent runtime misbehavior).
type Option func(*GuardEngine) error

// WithConfig overrides the engine's Config.
func WithConfig(cfg Config) Option {
	return func(e *GuardEngine) error {
		if cfg.DecayPerChunk < 0 {
			return guarderr.New("streamguard.GuardEngine", guarderr.ErrNegativeDecay)
		}
		e.config = cfg
		return nil
	}
}

// WithScoreThreshold enables risk scoring: the cumulative score (after any
// configured decay) latches a Block once it reaches threshold (spec §4.5,
// comparison is >=).
func WithScoreThreshold(threshold int) Option {
	return func(e *GuardEngine) error {
		if threshold < 0 {
			return guarderr.New("streamguard.GuardEngine", guarderr.ErrNegativeThreshold)
		}
		t := threshold
		e.threshold = &t
		return nil
	}
}

// WithLogger attaches an activity tracer (spec's ambient logging surface).
// The core never logs on its own; this only plumbs a caller-supplied
// zerolog.Logger through guardlog for optional rule-activity tracing.
func WithLogger(l guardlog.Logger) Option {
	return func(e *GuardEngine) error {
		e.log = l
		return nil
	}
}
