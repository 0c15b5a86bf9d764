package graph

// Directed is a minimal directed graph. The significance algorithms
// reject directed inputs up front; this type exists so callers that
// hold directed data get that rejection instead of silently wrong
// scores.
type Directed struct {
	order   []NodeID
	present map[NodeID]struct{}
	adj     map[NodeID][]Neighbor
}

// NewDirected creates an empty directed graph.
func NewDirected() *Directed {
	return &Directed{
		present: make(map[NodeID]struct{}),
		adj:     make(map[NodeID][]Neighbor),
	}
}

// AddNode adds a node. Adding an existing node is a no-op.
func (g *Directed) AddNode(id NodeID) {
	if _, ok := g.present[id]; ok {
		return
	}
	g.present[id] = struct{}{}
	g.order = append(g.order, id)
}

// AddEdge adds a directed edge from u to v with the given weight.
func (g *Directed) AddEdge(u, v NodeID, weight float64) error {
	if u == v {
		return ErrSelfLoop
	}
	g.AddNode(u)
	g.AddNode(v)
	g.adj[u] = append(g.adj[u], Neighbor{ID: v, Weight: weight})
	return nil
}

// Nodes returns all nodes in insertion order.
func (g *Directed) Nodes() []NodeID {
	out := make([]NodeID, len(g.order))
	copy(out, g.order)
	return out
}

// Neighbors returns the out-adjacency of id.
func (g *Directed) Neighbors(id NodeID) []Neighbor {
	return g.adj[id]
}

// IsDirected always reports true.
func (g *Directed) IsDirected() bool { return true }
