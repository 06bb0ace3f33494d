// SPDX-License-Identifier: MIT
// Package: steinlib/dynamic
//
// replay.go — reconstruction of a persisted update sequence and the
// restartable cursor an external solver harness consumes it through.

package dynamic

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Leon-Degel-Koehn/steinlib/steiner"
	"github.com/Leon-Degel-Koehn/steinlib/stp"
)

// DynamicInstance owns a fully reconstructed update sequence and a
// replay cursor over it. NumVertices is derived once at load time as
// the maximum vertex id referenced by any edge operation; the cursor is
// the only mutable field.
type DynamicInstance struct {
	// NumVertices is the largest endpoint referenced by edge operations.
	NumVertices int

	// TargetValue is the caller-supplied objective for the solver under
	// test; the replayer carries it verbatim.
	TargetValue int

	ops    []Operation
	cursor int
}

// Load reconstructs an operation sequence from the primary update log
// and the side list of serialized query snapshots, where snapshots[k-1]
// is the document referenced by the log line "Q k". Returns
// ErrMalformedLine for unrecognized tags or unparseable fields and
// ErrMissingSnapshot for a Q reference without a matching snapshot, both
// wrapped with line context.
// Complexity: O(log length + total snapshot size)
func Load(log string, snapshots []string, targetValue int) (*DynamicInstance, error) {
	var ops []Operation

	sc := bufio.NewScanner(strings.NewReader(log))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "SECTION") {
			continue
		}

		op, err := parseOperation(line, snapshots)
		if err != nil {
			return nil, fmt.Errorf("%w (line %d)", err, lineNo)
		}
		ops = append(ops, op)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dynamic: scan log: %w", err)
	}

	return &DynamicInstance{
		NumVertices: maxVertex(ops),
		TargetValue: targetValue,
		ops:         ops,
	}, nil
}

// LoadDir reads a run directory written by WriteRun and reconstructs its
// sequence: updates.dus as the log, instance_<k>.gr files collected in
// index order starting at 1 as the snapshots.
func LoadDir(dir string, targetValue int) (*DynamicInstance, error) {
	logBytes, err := os.ReadFile(filepath.Join(dir, LogFileName))
	if err != nil {
		return nil, fmt.Errorf("dynamic: read %s: %w", LogFileName, err)
	}

	var snapshots []string
	for k := 1; ; k++ {
		name := fmt.Sprintf(SnapshotFilePattern, k)
		data, err := os.ReadFile(filepath.Join(dir, name))
		if os.IsNotExist(err) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dynamic: read %s: %w", name, err)
		}
		snapshots = append(snapshots, string(data))
	}

	return Load(string(logBytes), snapshots, targetValue)
}

// Next returns the operation at the cursor and advances by one. The
// second result is false once the sequence is exhausted.
func (d *DynamicInstance) Next() (Operation, bool) {
	if d.cursor >= len(d.ops) {
		return Operation{}, false
	}
	op := d.ops[d.cursor]
	d.cursor++

	return op, true
}

// Reset rewinds the cursor to the start without re-parsing, enabling
// multiple independent passes over one loaded sequence.
func (d *DynamicInstance) Reset() { d.cursor = 0 }

// Len reports the total number of operations in the sequence.
func (d *DynamicInstance) Len() int { return len(d.ops) }

// parseOperation reconstructs one non-empty, non-header log line.
func parseOperation(line string, snapshots []string) (Operation, error) {
	fields := strings.Fields(line)

	switch fields[0] {
	case "E":
		if len(fields) != 5 {
			return Operation{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		from, errFrom := strconv.Atoi(fields[2])
		to, errTo := strconv.Atoi(fields[3])
		cost, errCost := strconv.ParseFloat(fields[4], 64)
		if errFrom != nil || errTo != nil || errCost != nil {
			return Operation{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		e := Operation{Edge: steiner.Edge{From: from, To: to, Cost: cost}}
		switch fields[1] {
		case "I":
			e.Kind = EdgeInsertion
		case "D":
			e.Kind = EdgeDeletion
		default:
			return Operation{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		return e, nil

	case "T":
		if len(fields) != 3 {
			return Operation{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		v, err := strconv.Atoi(fields[2])
		if err != nil {
			return Operation{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		switch fields[1] {
		case "A":
			return NewTerminalActivation(v), nil
		case "D":
			return NewTerminalDeactivation(v), nil
		default:
			return Operation{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}

	case "Q":
		if len(fields) != 2 {
			return Operation{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		idx, err := strconv.Atoi(fields[1])
		if err != nil {
			return Operation{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		if idx < 1 || idx > len(snapshots) {
			return Operation{}, fmt.Errorf("%w: index %d of %d", ErrMissingSnapshot, idx, len(snapshots))
		}
		snapshot, err := stp.Parse(snapshots[idx-1])
		if err != nil {
			return Operation{}, fmt.Errorf("dynamic: snapshot %d: %w", idx, err)
		}
		return NewQuery(snapshot), nil

	default:
		return Operation{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
}

// maxVertex scans the sequence for the largest endpoint referenced by an
// edge-touching operation.
func maxVertex(ops []Operation) int {
	maxID := 0
	for _, op := range ops {
		if op.Kind != EdgeInsertion && op.Kind != EdgeDeletion {
			continue
		}
		if m := op.Edge.MaxEndpoint(); m > maxID {
			maxID = m
		}
	}

	return maxID
}
