// Package steiner defines the shared value types of the benchmark
// pipeline: a weighted undirected Edge and an Instance aggregating a
// graph with its terminal set.
//
// What:
//
//   - Edge: 1-based endpoints plus a float64 cost; Key() yields its
//     endpoint-only identity for presence and de-duplication checks.
//   - Instance: node/edge/terminal counters with the concrete edge and
//     terminal lists. Arc and obstacle fields exist for SteinLib format
//     compatibility and are never touched by the generator core.
//
// Why:
//
//   - Every stage (codec, sampler, synthesizer, replayer) exchanges these
//     plain values; no behavior lives here beyond construction and copying.
//
// Conventions:
//
//   - Vertex identifiers are 1-based; 0 is never a valid vertex.
//   - Edges are undirected: {From: u, To: v} and {From: v, To: u} denote
//     the same connection, which is why Key() normalizes endpoint order.
//   - Terminals keep insertion order.
package steiner
