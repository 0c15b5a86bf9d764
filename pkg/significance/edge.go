package significance

import (
	"container/heap"
	"io"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/dd0wney/netsig/pkg/graph"
)

// RankedEdge holds an edge together with its significance score.
type RankedEdge struct {
	U     graph.NodeID `json:"u"`
	V     graph.NodeID `json:"v"`
	Score float64      `json:"score"`
}

// EdgeSignificance maps every edge to its significance under one
// method. The node ordering of the source graph is captured at
// construction so the matrix view is stable.
type EdgeSignificance struct {
	Scores map[graph.EdgeKey]float64
	envelope

	nodes []graph.NodeID
	index map[graph.NodeID]int
}

// NewEdgeSignificance wraps an edge score map with the method that
// produced it. The graph supplies the node ordering for Matrix.
func NewEdgeSignificance(scores map[graph.EdgeKey]float64, g graph.Graph, method string, params map[string]any) *EdgeSignificance {
	if scores == nil {
		scores = make(map[graph.EdgeKey]float64)
	}
	nodes := g.Nodes()
	index := make(map[graph.NodeID]int, len(nodes))
	for i, id := range nodes {
		index[id] = i
	}
	return &EdgeSignificance{
		Scores:   scores,
		envelope: envelope{Method: method, Params: params},
		nodes:    nodes,
		index:    index,
	}
}

// Get returns the significance of the edge between u and v. Looking
// up a node the graph never contained is an error; a node pair with
// no scored edge between them yields 0.
func (es *EdgeSignificance) Get(u, v graph.NodeID) (float64, error) {
	if _, ok := es.index[u]; !ok {
		return 0, &graph.NodeNotFoundError{ID: u}
	}
	if _, ok := es.index[v]; !ok {
		return 0, &graph.NodeNotFoundError{ID: v}
	}
	return es.Scores[graph.NewEdgeKey(u, v)], nil
}

// Len returns the number of scored edges.
func (es *EdgeSignificance) Len() int { return len(es.Scores) }

// Algorithm returns the method name that produced the scores.
func (es *EdgeSignificance) Algorithm() string { return es.Method }

// NodeIndex returns the matrix row/column of a node.
func (es *EdgeSignificance) NodeIndex(id graph.NodeID) (int, bool) {
	i, ok := es.index[id]
	return i, ok
}

// Matrix returns the |V|x|V| symmetric significance matrix, indexed
// by NodeIndex. Absent edges are zero. A result over an empty graph
// has no matrix and returns nil.
func (es *EdgeSignificance) Matrix() *mat.SymDense {
	if len(es.nodes) == 0 {
		return nil
	}
	m := mat.NewSymDense(len(es.nodes), nil)
	for key, score := range es.Scores {
		i, okU := es.index[key.U]
		j, okV := es.index[key.V]
		if !okU || !okV {
			continue
		}
		m.SetSym(i, j, score)
	}
	return m
}

// rankedEdgeHeap implements a min-heap for RankedEdge by score.
type rankedEdgeHeap []RankedEdge

func (h rankedEdgeHeap) Len() int           { return len(h) }
func (h rankedEdgeHeap) Less(i, j int) bool { return h[i].Score < h[j].Score }
func (h rankedEdgeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *rankedEdgeHeap) Push(x any) {
	*h = append(*h, x.(RankedEdge))
}

func (h *rankedEdgeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// Top returns the n highest-scoring edges, descending.
func (es *EdgeSignificance) Top(n int) []RankedEdge {
	if n <= 0 {
		return nil
	}

	h := make(rankedEdgeHeap, 0, n)
	heap.Init(&h)

	for key, score := range es.Scores {
		re := RankedEdge{U: key.U, V: key.V, Score: score}
		if h.Len() < n {
			heap.Push(&h, re)
		} else if score > h[0].Score {
			heap.Pop(&h)
			heap.Push(&h, re)
		}
	}

	result := make([]RankedEdge, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		result[i] = heap.Pop(&h).(RankedEdge)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		if result[i].U != result[j].U {
			return result[i].U < result[j].U
		}
		return result[i].V < result[j].V
	})

	return result
}

// edgeExport is the JSON shape of an edge significance result. Edge
// keys are flattened into records because JSON objects cannot key on
// pairs.
type edgeExport struct {
	Significance []RankedEdge   `json:"significance"`
	Algorithm    string         `json:"algorithm"`
	Params       map[string]any `json:"params,omitempty"`
}

func (es *EdgeSignificance) exportRecords() []RankedEdge {
	records := make([]RankedEdge, 0, len(es.Scores))
	for key, score := range es.Scores {
		records = append(records, RankedEdge{U: key.U, V: key.V, Score: score})
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].U != records[j].U {
			return records[i].U < records[j].U
		}
		return records[i].V < records[j].V
	})
	return records
}

// WriteJSON writes the result as indented JSON.
func (es *EdgeSignificance) WriteJSON(w io.Writer) error {
	return writeJSON(w, edgeExport{
		Significance: es.exportRecords(),
		Algorithm:    es.Method,
		Params:       es.Params,
	})
}

// WriteJSONFile writes the result as indented JSON to path.
func (es *EdgeSignificance) WriteJSONFile(path string) error {
	return writeJSONFile(path, edgeExport{
		Significance: es.exportRecords(),
		Algorithm:    es.Method,
		Params:       es.Params,
	})
}

// Describe returns a one-line human-readable summary.
func (es *EdgeSignificance) Describe(precision int) string {
	values := make([]float64, 0, len(es.Scores))
	for _, v := range es.Scores {
		values = append(values, v)
	}
	minV, maxV, mean := summarize(values)
	return describeStats(es.Method, len(values), minV, maxV, mean, precision, es.Params)
}
