// Package graph provides the read-only graph surface the significance
// algorithms consume, plus simple in-memory implementations of it.
package graph

// NodeID identifies a node in a graph.
type NodeID uint64

// Neighbor is a single adjacency entry: the node at the far end of an
// edge and the weight that edge carries.
type Neighbor struct {
	ID     NodeID
	Weight float64
}

// Graph is the minimal read-only surface an algorithm needs. The graph
// must not be mutated while a computation over it is in flight.
type Graph interface {
	// Nodes returns all node identifiers in the graph.
	Nodes() []NodeID
	// Neighbors returns the adjacency list of a node. Unknown nodes
	// yield an empty list.
	Neighbors(NodeID) []Neighbor
	// IsDirected reports whether edges have direction.
	IsDirected() bool
}

// EdgeKey identifies an undirected edge by its endpoints, with U < V.
type EdgeKey struct {
	U NodeID
	V NodeID
}

// NewEdgeKey builds the canonical key for the edge between a and b.
func NewEdgeKey(a, b NodeID) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey{U: a, V: b}
}
