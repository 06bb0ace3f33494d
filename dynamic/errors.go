// SPDX-License-Identifier: MIT
// Package: steinlib/dynamic
//
// errors.go — sentinel errors for synthesis, serialization and replay.
//
// Error policy mirrors steinlib/gen: package-level sentinels only,
// errors.Is for branching, %w wrapping for context, no runtime panics.

package dynamic

import "errors"

// ErrNilInstance indicates Synthesize was handed a nil base instance.
var ErrNilInstance = errors.New("dynamic: base instance is nil")

// ErrInvalidWeights indicates the four update-kind weights are unusable:
// at least one is negative, or they sum to zero.
// Usage: if errors.Is(err, ErrInvalidWeights) { /* fix Probabilities */ }.
var ErrInvalidWeights = errors.New("dynamic: update weights must be non-negative with a positive sum")

// ErrInvalidProbability indicates a query probability outside [0,1].
var ErrInvalidProbability = errors.New("dynamic: probability out of range")

// ErrBadUpdateCount indicates a negative requested update count.
var ErrBadUpdateCount = errors.New("dynamic: update count cannot be negative")

// ErrExhausted indicates no update kind has a legal target left: every
// positively weighted category was masked at one synthesis step (e.g. a
// cover too small to admit edge candidates combined with an empty
// terminal universe).
// Usage: if errors.Is(err, ErrExhausted) { /* widen universes or weights */ }.
var ErrExhausted = errors.New("dynamic: no legal update operation available")

// ErrMalformedLine indicates an update-log line whose tag is unrecognized
// or whose numeric fields do not parse.
var ErrMalformedLine = errors.New("dynamic: malformed update line")

// ErrMissingSnapshot indicates a Q line referencing a snapshot index with
// no corresponding snapshot artifact.
var ErrMissingSnapshot = errors.New("dynamic: query references missing snapshot")

// ErrOptionViolation indicates a WithX option constructor received a
// meaningless value.
var ErrOptionViolation = errors.New("dynamic: invalid option value")
