package stp

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Leon-Degel-Koehn/steinlib/steiner"
)

// ErrMalformedLine indicates a recognized tag whose numeric field does
// not parse. Callers branch with errors.Is; the wrapped message carries
// the 1-based line number and the offending text.
var ErrMalformedLine = errors.New("stp: malformed line")

// defaultEdgeCost is assumed when an E/A line omits the cost token.
// Not part of the official SteinLib specification, but widely used.
const defaultEdgeCost = 1.0

// section identifies which SECTION block the parser is currently inside.
type section uint8

const (
	sectionStart section = iota
	sectionComment
	sectionGraph
	sectionTerminals
	sectionCoordinates
)

// sectionFromName maps a SECTION header argument to its state.
// Unknown names keep the parser in its current section.
func sectionFromName(name string) (section, bool) {
	switch name {
	case "Comment":
		return sectionComment, true
	case "Graph":
		return sectionGraph, true
	case "Terminals":
		return sectionTerminals, true
	case "Coordinates":
		return sectionCoordinates, true
	default:
		return sectionStart, false
	}
}

// Parse reads a full SteinLib document and returns the instance it
// describes. Blank lines are skipped; leading/trailing whitespace per
// line is ignored. Returns ErrMalformedLine (wrapped with line context)
// on the first unparseable field.
// Complexity: O(total input length)
func Parse(input string) (*steiner.Instance, error) {
	inst := &steiner.Instance{}
	cur := sectionStart

	sc := bufio.NewScanner(strings.NewReader(input))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := parseLine(line, &cur, inst); err != nil {
			return nil, fmt.Errorf("%w (line %d)", err, lineNo)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("stp: scan: %w", err)
	}

	return inst, nil
}

// parseLine dispatches one trimmed, non-empty line according to the
// current section, then applies any section transition the line causes.
func parseLine(line string, cur *section, inst *steiner.Instance) error {
	fields := strings.Fields(line)

	var err error
	switch *cur {
	case sectionGraph:
		err = parseGraphLine(fields, inst)
	case sectionTerminals:
		err = parseTerminalsLine(fields, inst)
	case sectionStart, sectionComment, sectionCoordinates:
		// Content of these sections is not consumed by the pipeline.
	}
	if err != nil {
		return fmt.Errorf("%w: %q", err, line)
	}

	if fields[0] == "SECTION" && len(fields) > 1 {
		if next, ok := sectionFromName(fields[1]); ok {
			*cur = next
		}
	}

	return nil
}

// parseGraphLine handles the SECTION Graph body: counters plus E/A lines.
// Unknown tags are skipped for compatibility with richer SteinLib files.
func parseGraphLine(fields []string, inst *steiner.Instance) error {
	switch fields[0] {
	case "Nodes":
		return parseCounter(fields, &inst.NumNodes)
	case "Edges":
		return parseCounter(fields, &inst.NumEdges)
	case "Arcs":
		return parseCounter(fields, &inst.NumArcs)
	case "Obstacles":
		return parseCounter(fields, &inst.NumObstacles)
	case "E":
		e, err := parseEdge(fields)
		if err != nil {
			return err
		}
		inst.Edges = append(inst.Edges, e)
	case "A":
		a, err := parseEdge(fields)
		if err != nil {
			return err
		}
		inst.Arcs = append(inst.Arcs, a)
	}

	return nil
}

// parseTerminalsLine handles the SECTION Terminals body.
func parseTerminalsLine(fields []string, inst *steiner.Instance) error {
	switch fields[0] {
	case "Terminals":
		return parseCounter(fields, &inst.NumTerminals)
	case "T":
		if len(fields) < 2 {
			return ErrMalformedLine
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return ErrMalformedLine
		}
		inst.Terminals = append(inst.Terminals, v)
	}

	return nil
}

// parseCounter reads "<Tag> <n>" into dst.
func parseCounter(fields []string, dst *int) error {
	if len(fields) < 2 {
		return ErrMalformedLine
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return ErrMalformedLine
	}
	*dst = n

	return nil
}

// parseEdge reads "E <from> <to> [<cost>]" (or an A line of the same
// shape); a missing cost token falls back to defaultEdgeCost.
func parseEdge(fields []string) (steiner.Edge, error) {
	if len(fields) < 3 {
		return steiner.Edge{}, ErrMalformedLine
	}
	from, err := strconv.Atoi(fields[1])
	if err != nil {
		return steiner.Edge{}, ErrMalformedLine
	}
	to, err := strconv.Atoi(fields[2])
	if err != nil {
		return steiner.Edge{}, ErrMalformedLine
	}
	cost := defaultEdgeCost
	if len(fields) > 3 {
		cost, err = strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return steiner.Edge{}, ErrMalformedLine
		}
	}

	return steiner.Edge{From: from, To: to, Cost: cost}, nil
}
