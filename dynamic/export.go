// SPDX-License-Identifier: MIT
// Package: steinlib/dynamic
//
// export.go — serialization of an operation sequence into its two
// artifacts: the compact update log and one snapshot document per query.

package dynamic

import (
	"fmt"
	"strings"

	"github.com/Leon-Degel-Koehn/steinlib/stp"
)

const (
	// LogFileName is the on-disk name of the primary update log.
	LogFileName = "updates.dus"

	// SnapshotFilePattern names query snapshot files; the verb receives
	// the 1-based snapshot index referenced by the matching Q line.
	SnapshotFilePattern = "instance_%d.gr"

	// updatesHeader opens every update log.
	updatesHeader = "SECTION UPDATES"
)

// Export renders ops as the primary update log plus one serialized
// snapshot per Query, in emission order. The k-th returned snapshot
// (0-based) is the document referenced by the log line "Q k+1"; a Query
// with a nil snapshot renders as an empty instance.
// Complexity: O(total operations + total snapshot size)
func Export(ops []Operation) (string, []string) {
	var b strings.Builder
	b.WriteString(updatesHeader)
	b.WriteByte('\n')

	snapshots := make([]string, 0)
	for _, op := range ops {
		if op.Kind == Query {
			fmt.Fprintf(&b, "Q %d\n", len(snapshots)+1)
			snapshots = append(snapshots, stp.Format(op.Snapshot))
			continue
		}
		b.WriteString(op.String())
		b.WriteByte('\n')
	}

	return b.String(), snapshots
}
