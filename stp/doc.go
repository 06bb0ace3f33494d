// Package stp parses and renders the line-oriented SteinLib text format
// for static Steiner instances (.stp / .gr files).
//
// What:
//
//   - Parse: a section state machine over SECTION Graph / SECTION
//     Terminals blocks producing a *steiner.Instance.
//   - Format: the canonical writer; integral costs render without a
//     fractional part so canonical inputs round-trip byte-for-byte.
//
// Grammar (the subset this pipeline consumes and produces):
//
//	SECTION Graph
//	Nodes <n>
//	Edges <m>
//	E <from> <to> [<cost>]     (repeated m times; cost defaults to 1)
//	END
//
//	SECTION Terminals
//	Terminals <t>
//	T <vertex>                 (repeated t times)
//	END
//
//	EOF
//
// Tolerance:
//
//   - Unknown sections (Comment, Coordinates, ...) and unknown leading
//     tokens inside a known section are skipped, so richer SteinLib files
//     still parse. Known tags with unparseable numeric fields are a hard
//     ErrMalformedLine wrapped with the offending line number.
//
// Errors:
//
//   - ErrMalformedLine: a recognized tag carries a field that does not parse.
package stp
