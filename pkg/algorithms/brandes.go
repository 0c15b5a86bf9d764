package algorithms

import (
	"container/heap"

	"github.com/dd0wney/netsig/pkg/graph"
	"github.com/dd0wney/netsig/pkg/pools"
)

// accumulator collects one worker's betweenness contributions.
type accumulator struct {
	nodes map[graph.NodeID]float64
	edges map[graph.EdgeKey]float64
}

func newAccumulator(wantEdges bool) *accumulator {
	acc := &accumulator{nodes: make(map[graph.NodeID]float64)}
	if wantEdges {
		acc.edges = make(map[graph.EdgeKey]float64)
	}
	return acc
}

// brandesFromSource runs one single-source pass of Brandes' algorithm
// and adds the source's dependency contributions to acc. The forward
// pass records, for every reached node, its shortest distance, its
// shortest-path count (sigma) and its predecessor list; the stack
// holds nodes in discovery order so popping it yields non-increasing
// distance, which the reverse accumulation requires.
func brandesFromSource(g graph.Graph, source graph.NodeID, weighted, wantEdges bool, acc *accumulator) {
	sigma := map[graph.NodeID]float64{source: 1}
	preds := make(map[graph.NodeID][]graph.NodeID)

	var stack []graph.NodeID
	if weighted {
		stack = dijkstraSearch(g, source, sigma, preds)
	} else {
		stack = bfsSearch(g, source, sigma, preds)
	}

	// Back-propagation: walk the stack in reverse and push each
	// node's dependency onto its predecessors, splitting by the share
	// of shortest paths each predecessor carries.
	delta := make(map[graph.NodeID]float64, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		for _, v := range preds[w] {
			contribution := (sigma[v] / sigma[w]) * (1.0 + delta[w])
			delta[v] += contribution
			if wantEdges {
				acc.edges[graph.NewEdgeKey(v, w)] += contribution
			}
		}
		if w != source {
			acc.nodes[w] += delta[w]
		}
	}

	pools.PutNodeIDs(stack)
}

// bfsSearch explores from source by hop count. Returns the nodes in
// discovery order; callers must return the slice to the pool.
func bfsSearch(g graph.Graph, source graph.NodeID, sigma map[graph.NodeID]float64, preds map[graph.NodeID][]graph.NodeID) []graph.NodeID {
	dist := map[graph.NodeID]int{source: 0}

	// The queue doubles as the discovery-order stack: BFS dequeues
	// in push order, so the slice already holds nodes ordered by
	// non-decreasing distance.
	queue := pools.GetNodeIDs(64)
	queue = append(queue, source)

	for head := 0; head < len(queue); head++ {
		v := queue[head]
		dv := dist[v]

		for _, nb := range g.Neighbors(v) {
			w := nb.ID
			dw, seen := dist[w]
			if !seen {
				dw = dv + 1
				dist[w] = dw
				queue = append(queue, w)
			}
			// Every neighbor one level further lies on a shortest
			// path through v.
			if dw == dv+1 {
				sigma[w] += sigma[v]
				preds[w] = append(preds[w], v)
			}
		}
	}

	return queue
}

// distEntry is a priority-queue element for the weighted search.
type distEntry struct {
	node graph.NodeID
	dist float64
}

// distHeap is a min-heap of distEntry by distance.
type distHeap []distEntry

func (h distHeap) Len() int           { return len(h) }
func (h distHeap) Less(i, j int) bool { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *distHeap) Push(x any) {
	*h = append(*h, x.(distEntry))
}

func (h *distHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// dijkstraSearch explores from source by accumulated edge weight.
// Entries are pushed lazily; stale ones are skipped on pop. Ties at
// equal shortest distance accumulate sigma and predecessors exactly
// like the BFS case. Returns settled nodes in non-decreasing distance
// order; callers must return the slice to the pool.
func dijkstraSearch(g graph.Graph, source graph.NodeID, sigma map[graph.NodeID]float64, preds map[graph.NodeID][]graph.NodeID) []graph.NodeID {
	dist := map[graph.NodeID]float64{source: 0}
	settled := make(map[graph.NodeID]bool)
	stack := pools.GetNodeIDs(64)

	pq := &distHeap{{node: source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		entry := heap.Pop(pq).(distEntry)
		v := entry.node
		if settled[v] {
			continue
		}
		settled[v] = true
		stack = append(stack, v)

		for _, nb := range g.Neighbors(v) {
			w := nb.ID
			nd := entry.dist + nb.Weight

			cur, seen := dist[w]
			switch {
			case !seen || nd < cur:
				dist[w] = nd
				sigma[w] = sigma[v]
				preds[w] = append(preds[w][:0], v)
				heap.Push(pq, distEntry{node: w, dist: nd})
			case nd == cur && !settled[w]:
				sigma[w] += sigma[v]
				preds[w] = append(preds[w], v)
			}
		}
	}

	return stack
}
