// Package steinlib generates synthetic benchmark inputs for Steiner-tree
// solvers and simulates their evolution over time.
//
// 🚀 What is steinlib?
//
//	A small, deterministic toolkit that brings together:
//		• Instance model: 1-based weighted edges, terminal sets (SteinLib flavor)
//		• Text codec: parse & render the line-oriented .stp/.gr format
//		• Biased sampling: random instances with a planted approximate vertex cover
//		• Dynamic workloads: randomized edge/terminal update streams with snapshots
//		• Replay: restartable cursors over persisted update sequences
//
// ✨ Why choose steinlib?
//
//   - Reproducible – every stochastic entry point takes an injected seed/source
//   - Rock-solid guarantees – sentinel errors, no panics in library code
//   - Pure text artifacts – diffable update logs, one snapshot file per query
//
// Everything is organized under four subpackages plus a CLI:
//
//	steiner/ — Edge and Instance value types shared by all stages
//	stp/     — SteinLib text codec (parser + canonical writer)
//	gen/     — vertex-cover-biased random instance sampler
//	dynamic/ — update-sequence synthesizer, on-disk runs, replayer
//	cmd/steinergen — batch experiment driver (YAML in, run directories out)
//
// Data flow:
//
//	gen.Generate ──▶ steiner.Instance ──▶ dynamic.Synthesize ──▶ ops
//	   ops ──▶ dynamic.WriteRun ──▶ updates.dus + instance_<k>.gr
//	   dynamic.LoadDir ──▶ DynamicInstance ──▶ Next()/Reset() replay
//
//	go get github.com/Leon-Degel-Koehn/steinlib
package steinlib
