package algorithms

import (
	"container/heap"
	"context"

	"github.com/dd0wney/netsig/pkg/graph"
	"github.com/dd0wney/netsig/pkg/pools"
	"github.com/dd0wney/netsig/pkg/significance"
)

// EfficiencyCentrality scores a node by how much the network's
// efficiency drops when the node is removed. Efficiency of a pair is
// the inverse of its shortest-path distance (zero when disconnected);
// network efficiency E averages that over all pairs. For each node v,
// E_hat(v) is recomputed with v removed and the score is
// (E - E_hat(v)) / E.
//
// Pairs whose recorded shortest path does not contain v keep their
// efficiency, so only the affected pairs trigger a re-search.
// Cancellation is honored at every removed-node boundary.
func EfficiencyCentrality(ctx context.Context, g graph.Graph, weighted bool) (*significance.NodeSignificance, error) {
	if err := validateGraph(g, weighted); err != nil {
		return nil, err
	}

	nodes := g.Nodes()
	n := len(nodes)
	finish := observe("efficiency_centrality", n, countEdges(g))

	params := map[string]any{"weighted": weighted}
	scores := make(map[graph.NodeID]float64, n)
	if n < 2 {
		for _, id := range nodes {
			scores[id] = 0
		}
		finish(nil)
		return significance.NewNodeSignificance(scores, "efficiency_centrality", params), nil
	}

	// One shortest-path tree per source.
	trees := make(map[graph.NodeID]*spTree, n)
	for _, s := range nodes {
		trees[s] = shortestPathTree(g, s, weighted, nil)
	}

	pairNorm := float64(n*n - n)

	total := 0.0
	for i, s := range nodes {
		for _, t := range nodes[i+1:] {
			total += trees[s].efficiency(t)
		}
	}
	baseline := total / pairNorm

	if baseline == 0 {
		// No connected pairs at all; removing a node changes nothing.
		for _, id := range nodes {
			scores[id] = 0
		}
		finish(nil)
		return significance.NewNodeSignificance(scores, "efficiency_centrality", params), nil
	}

	for _, removed := range nodes {
		if err := ctx.Err(); err != nil {
			finish(err)
			return nil, err
		}

		totalHat := 0.0
		// Re-searches from the same source share one tree.
		avoidTrees := make(map[graph.NodeID]*spTree)

		for i, s := range nodes {
			for _, t := range nodes[i+1:] {
				if s == removed || t == removed {
					continue
				}
				tree := trees[s]
				dist, reachable := tree.distance(t)
				if !reachable {
					continue // removal cannot create a path
				}
				if !tree.pathContains(t, removed) {
					totalHat += 1.0 / dist
					continue
				}
				avoid, ok := avoidTrees[s]
				if !ok {
					avoid = shortestPathTree(g, s, weighted, &removed)
					avoidTrees[s] = avoid
				}
				totalHat += avoid.efficiency(t)
			}
		}

		scores[removed] = (baseline - totalHat/pairNorm) / baseline
	}

	finish(nil)
	return significance.NewNodeSignificance(scores, "efficiency_centrality", params), nil
}

// spTree is a single-source shortest-path tree: distances plus one
// predecessor per node, enough to walk one shortest path back to the
// source.
type spTree struct {
	source graph.NodeID
	dist   map[graph.NodeID]float64
	parent map[graph.NodeID]graph.NodeID
}

// distance returns the shortest distance to t and whether t is
// reachable.
func (t *spTree) distance(target graph.NodeID) (float64, bool) {
	d, ok := t.dist[target]
	return d, ok
}

// efficiency returns 1/distance to target, or 0 when unreachable or
// when the target is the source itself.
func (t *spTree) efficiency(target graph.NodeID) float64 {
	d, ok := t.dist[target]
	if !ok || d == 0 {
		return 0
	}
	return 1.0 / d
}

// pathContains walks the recorded path from target back to the source
// and reports whether node appears on it (endpoints included).
func (t *spTree) pathContains(target, node graph.NodeID) bool {
	if _, ok := t.dist[target]; !ok {
		return false
	}
	for cur := target; ; {
		if cur == node {
			return true
		}
		if cur == t.source {
			return false
		}
		cur = t.parent[cur]
	}
}

// shortestPathTree runs BFS (unweighted) or Dijkstra (weighted) from
// source. When avoid is non-nil that node is treated as removed.
func shortestPathTree(g graph.Graph, source graph.NodeID, weighted bool, avoid *graph.NodeID) *spTree {
	tree := &spTree{
		source: source,
		dist:   make(map[graph.NodeID]float64),
		parent: make(map[graph.NodeID]graph.NodeID),
	}
	if avoid != nil && *avoid == source {
		return tree
	}
	tree.dist[source] = 0

	skip := func(id graph.NodeID) bool {
		return avoid != nil && *avoid == id
	}

	if !weighted {
		queue := pools.GetNodeIDs(64)
		queue = append(queue, source)
		for head := 0; head < len(queue); head++ {
			v := queue[head]
			for _, nb := range g.Neighbors(v) {
				if skip(nb.ID) {
					continue
				}
				if _, seen := tree.dist[nb.ID]; !seen {
					tree.dist[nb.ID] = tree.dist[v] + 1
					tree.parent[nb.ID] = v
					queue = append(queue, nb.ID)
				}
			}
		}
		pools.PutNodeIDs(queue)
		return tree
	}

	settled := make(map[graph.NodeID]bool)
	pq := &distHeap{{node: source, dist: 0}}
	heap.Init(pq)
	for pq.Len() > 0 {
		entry := heap.Pop(pq).(distEntry)
		if settled[entry.node] {
			continue
		}
		settled[entry.node] = true
		for _, nb := range g.Neighbors(entry.node) {
			if skip(nb.ID) {
				continue
			}
			nd := entry.dist + nb.Weight
			if cur, seen := tree.dist[nb.ID]; !seen || nd < cur {
				tree.dist[nb.ID] = nd
				tree.parent[nb.ID] = entry.node
				heap.Push(pq, distEntry{node: nb.ID, dist: nd})
			}
		}
	}
	return tree
}
