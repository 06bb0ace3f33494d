// SPDX-License-Identifier: MIT
// Package: steinlib/gen
//
// errors.go — sentinel errors for the sampler package.
//
// Error policy:
//   • Only package-level sentinels are exposed.
//   • Callers MUST branch with errors.Is(err, ErrX).
//   • Implementations attach context via %w wrapping; sentinels themselves
//     are never redefined with formatted strings.
//   • No panics at runtime; option violations surface as ErrOptionViolation
//     when the entry point is invoked.

package gen

import "errors"

// ErrTooFewVertices indicates the requested vertex count is below the
// minimum for instance generation.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("gen: vertex count below minimum")

// ErrInvalidProbability indicates an edge probability outside the closed
// interval [0,1].
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("gen: probability out of range")

// ErrInvalidSubsetRequest indicates a subset draw was asked for more
// elements than the population holds (or a negative count). Failing fast
// here is what keeps the rejection loop from spinning forever on
// impossible inputs.
// Usage: if errors.Is(err, ErrInvalidSubsetRequest) { /* fix k or n */ }.
var ErrInvalidSubsetRequest = errors.New("gen: subset size exceeds population")

// ErrGenerationTimeout indicates the connectivity rejection loop exceeded
// its attempt budget without producing an accepted sample. Non-convergence
// is a tunable performance property, not a malformed input: retry with a
// larger p, a larger budget (WithMaxAttempts), or another seed.
// Usage: if errors.Is(err, ErrGenerationTimeout) { /* raise p or budget */ }.
var ErrGenerationTimeout = errors.New("gen: connectivity resampling budget exhausted")

// ErrOptionViolation indicates a WithX option constructor received a
// meaningless value (e.g. a negative attempt budget). Recorded at option
// time, surfaced when Generate runs.
// Usage: if errors.Is(err, ErrOptionViolation) { /* correct option values */ }.
var ErrOptionViolation = errors.New("gen: invalid option value")
