// SPDX-License-Identifier: MIT
// Package gen samples random Steiner instances whose topology is biased
// toward a planted approximate vertex cover.
//
// What:
//
//   - Subset: uniform size-k subsets of 1..n without replacement.
//   - Generate: draws a cover set and a terminal set, then rejection-samples
//     edge sets (a Bernoulli trial per cover-touching vertex pair) until all
//     terminals share one connected component.
//
// Why:
//
//   - Restricting edges to pairs touching the cover keeps the instance's
//     true vertex cover close to the requested size, which is the property
//     dynamic Steiner benchmarks want to control.
//   - Connectivity cannot be repaired without perturbing that guarantee,
//     so a failed sample is discarded wholesale and redrawn.
//
// Determinism:
//
//   - All randomness flows through one injected source (WithSeed/WithRand);
//     a fixed seed reproduces the instance bit-for-bit. No hidden globals.
//
// Complexity:
//
//   - One attempt costs O(n²) Bernoulli trials plus an O(n + E) BFS;
//     expected attempt count depends on p (callers typically scale p like
//     c·ln(n)/n to keep convergence fast).
//
// Errors:
//
//   - ErrTooFewVertices: n < 1.
//   - ErrInvalidProbability: p outside [0,1].
//   - ErrInvalidSubsetRequest: requested subset exceeds the population.
//   - ErrGenerationTimeout: the attempt budget ran out before acceptance.
//   - ErrOptionViolation: a WithX option received a meaningless value.
package gen
