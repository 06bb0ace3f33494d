package steiner

// Edge is an undirected weighted connection between two 1-based vertices.
type Edge struct {
	// From is one endpoint (1-based).
	From int

	// To is the other endpoint (1-based).
	To int

	// Cost is the weight of the edge.
	Cost float64
}

// Key returns the endpoint-only identity of e, normalized so that
// Key()[0] <= Key()[1]. Two edges over the same endpoints share a Key
// even when their costs differ; presence and de-duplication checks
// throughout the pipeline are keyed this way.
// Complexity: O(1)
func (e Edge) Key() [2]int {
	if e.From <= e.To {
		return [2]int{e.From, e.To}
	}

	return [2]int{e.To, e.From}
}

// MaxEndpoint returns the larger of the two endpoint identifiers.
// Complexity: O(1)
func (e Edge) MaxEndpoint() int {
	if e.From > e.To {
		return e.From
	}

	return e.To
}

// Instance is one complete Steiner problem input: a graph on NumNodes
// vertices plus its terminal set.
//
// NumArcs, NumObstacles and Arcs mirror the SteinLib text format and are
// carried through the codec untouched.
type Instance struct {
	// NumNodes is the vertex count; vertices are 1..NumNodes.
	NumNodes int

	// NumEdges is the number of undirected edges.
	NumEdges int

	// NumArcs is the number of directed arcs (format compatibility only).
	NumArcs int

	// NumObstacles is the obstacle count (format compatibility only).
	NumObstacles int

	// NumTerminals is the number of terminal vertices.
	NumTerminals int

	// Edges holds the undirected edge list.
	Edges []Edge

	// Arcs holds directed arcs (format compatibility only).
	Arcs []Edge

	// Terminals lists terminal vertices in insertion order.
	Terminals []int
}

// NewInstance builds an Instance over numNodes vertices, deriving the
// edge and terminal counters from the supplied slices. The slices are
// retained, not copied; callers hand over ownership.
// Complexity: O(1)
func NewInstance(numNodes int, edges []Edge, terminals []int) *Instance {
	return &Instance{
		NumNodes:     numNodes,
		NumEdges:     len(edges),
		NumTerminals: len(terminals),
		Edges:        edges,
		Terminals:    terminals,
	}
}

// Clone returns a deep copy of the instance; mutating the copy never
// affects the original. A nil receiver yields nil.
// Complexity: O(E + A + T)
func (in *Instance) Clone() *Instance {
	if in == nil {
		return nil
	}

	out := *in
	out.Edges = append([]Edge(nil), in.Edges...)
	out.Arcs = append([]Edge(nil), in.Arcs...)
	out.Terminals = append([]int(nil), in.Terminals...)

	return &out
}
