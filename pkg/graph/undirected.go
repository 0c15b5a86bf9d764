package graph

// DefaultWeight is assigned to edges added without an explicit weight.
const DefaultWeight = 1.0

// Undirected is a simple (no self-loops, no parallel edges) weighted
// undirected graph held in memory. Nodes and edges keep insertion
// order so traversals are deterministic.
//
// Undirected is not safe for concurrent mutation. Concurrent reads,
// including reads from algorithm worker goroutines, are safe once
// construction is finished.
type Undirected struct {
	order   []NodeID
	present map[NodeID]struct{}
	adj     map[NodeID][]Neighbor
	weights map[EdgeKey]float64
	keys    []EdgeKey
}

// NewUndirected creates an empty undirected graph.
func NewUndirected() *Undirected {
	return &Undirected{
		present: make(map[NodeID]struct{}),
		adj:     make(map[NodeID][]Neighbor),
		weights: make(map[EdgeKey]float64),
	}
}

// AddNode adds a node. Adding an existing node is a no-op.
func (g *Undirected) AddNode(id NodeID) {
	if _, ok := g.present[id]; ok {
		return
	}
	g.present[id] = struct{}{}
	g.order = append(g.order, id)
}

// AddEdge adds an undirected edge with the default weight of 1.0.
// Missing endpoints are added to the graph first.
func (g *Undirected) AddEdge(u, v NodeID) error {
	return g.AddWeightedEdge(u, v, DefaultWeight)
}

// AddWeightedEdge adds an undirected edge carrying the given weight.
// Re-adding an existing edge replaces its weight. Self-loops carry no
// significance information and are rejected.
func (g *Undirected) AddWeightedEdge(u, v NodeID, weight float64) error {
	if u == v {
		return ErrSelfLoop
	}
	g.AddNode(u)
	g.AddNode(v)

	key := NewEdgeKey(u, v)
	if _, exists := g.weights[key]; exists {
		g.weights[key] = weight
		g.setNeighborWeight(u, v, weight)
		g.setNeighborWeight(v, u, weight)
		return nil
	}

	g.weights[key] = weight
	g.keys = append(g.keys, key)
	g.adj[u] = append(g.adj[u], Neighbor{ID: v, Weight: weight})
	g.adj[v] = append(g.adj[v], Neighbor{ID: u, Weight: weight})
	return nil
}

func (g *Undirected) setNeighborWeight(from, to NodeID, weight float64) {
	list := g.adj[from]
	for i := range list {
		if list[i].ID == to {
			list[i].Weight = weight
			return
		}
	}
}

// Nodes returns all nodes in insertion order.
func (g *Undirected) Nodes() []NodeID {
	out := make([]NodeID, len(g.order))
	copy(out, g.order)
	return out
}

// Neighbors returns the adjacency list of id in insertion order.
func (g *Undirected) Neighbors(id NodeID) []Neighbor {
	return g.adj[id]
}

// IsDirected always reports false.
func (g *Undirected) IsDirected() bool { return false }

// HasNode reports whether id is in the graph.
func (g *Undirected) HasNode(id NodeID) bool {
	_, ok := g.present[id]
	return ok
}

// HasEdge reports whether an edge between u and v exists.
func (g *Undirected) HasEdge(u, v NodeID) bool {
	_, ok := g.weights[NewEdgeKey(u, v)]
	return ok
}

// Weight returns the weight of the edge between u and v.
func (g *Undirected) Weight(u, v NodeID) (float64, bool) {
	w, ok := g.weights[NewEdgeKey(u, v)]
	return w, ok
}

// Degree returns the number of edges incident on id.
func (g *Undirected) Degree(id NodeID) int {
	return len(g.adj[id])
}

// Strength returns the sum of weights of edges incident on id, the
// weighted counterpart of Degree.
func (g *Undirected) Strength(id NodeID) float64 {
	total := 0.0
	for _, nb := range g.adj[id] {
		total += nb.Weight
	}
	return total
}

// NumNodes returns the node count.
func (g *Undirected) NumNodes() int { return len(g.order) }

// NumEdges returns the edge count.
func (g *Undirected) NumEdges() int { return len(g.keys) }

// EdgeKeys returns all edge keys in insertion order.
func (g *Undirected) EdgeKeys() []EdgeKey {
	out := make([]EdgeKey, len(g.keys))
	copy(out, g.keys)
	return out
}

// Subgraph returns a copy of g restricted to the given nodes and the
// edges between them.
func (g *Undirected) Subgraph(nodes []NodeID) *Undirected {
	sub := NewUndirected()
	keep := make(map[NodeID]struct{}, len(nodes))
	for _, id := range nodes {
		if g.HasNode(id) {
			keep[id] = struct{}{}
			sub.AddNode(id)
		}
	}
	for _, key := range g.keys {
		if _, okU := keep[key.U]; !okU {
			continue
		}
		if _, okV := keep[key.V]; !okV {
			continue
		}
		sub.AddWeightedEdge(key.U, key.V, g.weights[key])
	}
	return sub
}
