// SPDX-License-Identifier: MIT
// Package dynamic synthesizes, persists and replays randomized update
// sequences over a static Steiner instance: the dynamic half of the
// benchmark pipeline.
//
// What:
//
//   - Operation: one atomic workload step — edge insertion/deletion,
//     terminal (de)activation, or a Query carrying a full state snapshot.
//   - Synthesize: a constrained weighted random process producing
//     totalUpdates legal mutations with interleaved snapshot queries,
//     always terminated by a Query.
//   - Export / WriteRun: the two-artifact serialization — a compact
//     updates.dus log plus one instance_<k>.gr snapshot file per query.
//   - Load / LoadDir / DynamicInstance: reconstruction of a persisted
//     sequence and a restartable Next()/Reset() cursor over it.
//
// Why two artifacts:
//
//   - Snapshots can be large while the operation log must stay compact
//     and diffable; each Q line carries the explicit index of the
//     snapshot file it references, so the artifacts pair up without
//     ordering assumptions.
//
// Legality invariant:
//
//   - A synthesized sequence never deletes an absent edge, inserts a
//     present one, activates an active terminal, or deactivates an
//     inactive one. Categories without a legal target are masked out of
//     the weighted draw for that step, so no discard/redraw loop exists;
//     a step where every category is masked fails with ErrExhausted.
//
// Errors:
//
//   - ErrInvalidWeights, ErrInvalidProbability, ErrBadUpdateCount,
//     ErrNilInstance, ErrExhausted: synthesis contract violations.
//   - ErrMalformedLine, ErrMissingSnapshot: replay format violations.
package dynamic
