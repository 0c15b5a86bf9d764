package significance

import (
	"container/heap"
	"io"
	"sort"

	"github.com/dd0wney/netsig/pkg/graph"
)

// RankedNode holds a node together with its significance score.
type RankedNode struct {
	ID    graph.NodeID `json:"node_id"`
	Score float64      `json:"score"`
}

// NodeSignificance maps every node to its significance under one
// method.
type NodeSignificance struct {
	Scores map[graph.NodeID]float64
	envelope
}

// NewNodeSignificance wraps a node score map with the method that
// produced it.
func NewNodeSignificance(scores map[graph.NodeID]float64, method string, params map[string]any) *NodeSignificance {
	if scores == nil {
		scores = make(map[graph.NodeID]float64)
	}
	return &NodeSignificance{
		Scores:   scores,
		envelope: envelope{Method: method, Params: params},
	}
}

// Get returns the significance of one node.
func (ns *NodeSignificance) Get(id graph.NodeID) (float64, error) {
	score, ok := ns.Scores[id]
	if !ok {
		return 0, &graph.NodeNotFoundError{ID: id}
	}
	return score, nil
}

// Len returns the number of scored nodes.
func (ns *NodeSignificance) Len() int { return len(ns.Scores) }

// Algorithm returns the method name that produced the scores.
func (ns *NodeSignificance) Algorithm() string { return ns.Method }

// rankedNodeHeap implements a min-heap for RankedNode by score.
type rankedNodeHeap []RankedNode

func (h rankedNodeHeap) Len() int           { return len(h) }
func (h rankedNodeHeap) Less(i, j int) bool { return h[i].Score < h[j].Score }
func (h rankedNodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *rankedNodeHeap) Push(x any) {
	*h = append(*h, x.(RankedNode))
}

func (h *rankedNodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// Top returns the n highest-scoring nodes, descending, using a
// min-heap so the full map is never sorted.
func (ns *NodeSignificance) Top(n int) []RankedNode {
	if n <= 0 {
		return nil
	}

	h := make(rankedNodeHeap, 0, n)
	heap.Init(&h)

	for id, score := range ns.Scores {
		rn := RankedNode{ID: id, Score: score}
		if h.Len() < n {
			heap.Push(&h, rn)
		} else if score > h[0].Score {
			heap.Pop(&h)
			heap.Push(&h, rn)
		}
	}

	result := make([]RankedNode, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		result[i] = heap.Pop(&h).(RankedNode)
	}

	// Stable order: score descending, then node ID ascending
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// nodeExport is the JSON shape of a node significance result.
type nodeExport struct {
	Significance map[graph.NodeID]float64 `json:"significance"`
	Algorithm    string                   `json:"algorithm"`
	Params       map[string]any           `json:"params,omitempty"`
}

// WriteJSON writes the result as indented JSON.
func (ns *NodeSignificance) WriteJSON(w io.Writer) error {
	return writeJSON(w, nodeExport{
		Significance: ns.Scores,
		Algorithm:    ns.Method,
		Params:       ns.Params,
	})
}

// WriteJSONFile writes the result as indented JSON to path.
func (ns *NodeSignificance) WriteJSONFile(path string) error {
	return writeJSONFile(path, nodeExport{
		Significance: ns.Scores,
		Algorithm:    ns.Method,
		Params:       ns.Params,
	})
}

// Describe returns a one-line human-readable summary.
func (ns *NodeSignificance) Describe(precision int) string {
	values := make([]float64, 0, len(ns.Scores))
	for _, v := range ns.Scores {
		values = append(values, v)
	}
	minV, maxV, mean := summarize(values)
	return describeStats(ns.Method, len(values), minV, maxV, mean, precision, ns.Params)
}
