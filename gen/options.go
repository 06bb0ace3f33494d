// SPDX-License-Identifier: MIT
// Package: steinlib/gen
//
// options.go — functional options and deterministic defaults for Generate.
//
// Contract (strict):
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors VALIDATE; meaningless values are recorded and
//     surfaced as ErrOptionViolation when Generate is invoked. Generate
//     itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through genConfig.

package gen

import (
	"fmt"
	"math/rand/v2"
)

// Deterministic defaults (named, no magic numbers).
const (
	// defaultMaxAttempts bounds the connectivity rejection loop; past it
	// Generate returns ErrGenerationTimeout instead of spinning.
	defaultMaxAttempts = 1 << 20

	// defaultEdgeCost is the constant weight assigned to sampled edges.
	defaultEdgeCost = 1.0
)

// CostFn produces the weight of one sampled edge. It receives the
// sampler's RNG so randomized weight policies stay deterministic under a
// fixed seed.
type CostFn func(*rand.Rand) float64

// genConfig aggregates all knobs used by Generate.
// It is passed by value to the sampling loop (immutable to callers).
type genConfig struct {
	// rng drives every stochastic choice; never nil after resolution.
	rng *rand.Rand

	// costFn yields per-edge weights; defaults to constant defaultEdgeCost.
	costFn CostFn

	// maxAttempts caps the rejection loop; 0 means unbounded.
	maxAttempts int

	// err records the first option violation for deferred surfacing.
	err error
}

// Option configures Generate via functional arguments.
type Option func(*genConfig)

// newGenConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		rng:         rngFromSeed(0),
		costFn:      func(*rand.Rand) float64 { return defaultEdgeCost },
		maxAttempts: defaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed makes the sampler reproducible: a fixed seed yields an
// identical instance on every run. seed==0 selects the stable default
// stream.
func WithSeed(seed uint64) Option {
	return func(c *genConfig) { c.rng = rngFromSeed(seed) }
}

// WithRand injects an externally owned RNG (e.g. a per-worker stream).
// A nil rng is a no-op, keeping the deterministic default.
func WithRand(rng *rand.Rand) Option {
	return func(c *genConfig) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithCostFn overrides the per-edge weight policy. A nil fn is a no-op.
func WithCostFn(fn CostFn) Option {
	return func(c *genConfig) {
		if fn != nil {
			c.costFn = fn
		}
	}
}

// WithMaxAttempts bounds the connectivity rejection loop.
//
//	n > 0:  fail with ErrGenerationTimeout after n rejected samples
//	n == 0: explicit unbounded loop (termination is probabilistic)
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxAttempts(n int) Option {
	return func(c *genConfig) {
		if n < 0 {
			c.err = fmt.Errorf("%w: MaxAttempts cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		c.maxAttempts = n
	}
}
