// Package algorithms implements node and edge significance measures
// over undirected graphs: Brandes betweenness centrality, degree
// product, diffusion importance, the ERW-Kpath random-walk measure,
// efficiency centrality and a spectral community-significance metric.
package algorithms

import (
	"context"

	"github.com/dd0wney/netsig/pkg/graph"
	"github.com/dd0wney/netsig/pkg/logging"
	"github.com/dd0wney/netsig/pkg/parallel"
	"github.com/dd0wney/netsig/pkg/significance"
)

// Result holds betweenness centrality scores. Nodes is nil unless
// node scores were requested, Edges is nil unless edge scores were.
type Result struct {
	Nodes map[graph.NodeID]float64
	Edges map[graph.EdgeKey]float64
}

// NodeSignificance wraps the node scores into a significance envelope.
func (r *Result) NodeSignificance(opts Options) *significance.NodeSignificance {
	return significance.NewNodeSignificance(r.Nodes, "betweenness_centrality", map[string]any{
		"weighted":   opts.Weighted,
		"normalized": opts.Normalized,
	})
}

// EdgeSignificance wraps the edge scores into a significance envelope.
func (r *Result) EdgeSignificance(g graph.Graph, opts Options) *significance.EdgeSignificance {
	return significance.NewEdgeSignificance(r.Edges, g, "betweenness_centrality", map[string]any{
		"weighted":   opts.Weighted,
		"normalized": opts.Normalized,
	})
}

// Betweenness computes betweenness centrality with Brandes' algorithm:
// one shortest-path pass per source node followed by reverse
// dependency accumulation, O(VE) unweighted and O(VE + V^2 log V)
// weighted. Sources are spread across opts.Workers goroutines, each
// accumulating into private maps that are summed afterwards, so
// results are deterministic for a fixed configuration.
//
// Directed graphs and, for weighted runs, negative edge weights are
// rejected before any computation starts. Empty and single-node
// graphs return zero-valued results. Cancellation is honored at every
// source-node boundary; a canceled run returns ctx.Err() and no
// partial result.
func Betweenness(ctx context.Context, g graph.Graph, opts Options) (*Result, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	if err := validateGraph(g, opts.Weighted); err != nil {
		return nil, err
	}

	nodes := g.Nodes()
	n := len(nodes)
	finish := observe("betweenness_centrality", n, countEdges(g),
		logging.Sources(n), logging.Workers(opts.Workers))

	result := newResult(g, nodes, opts)
	if n == 0 {
		finish(nil)
		return result, nil
	}

	// Fan out source nodes across workers. Each chunk owns a private
	// accumulator; chunk results are merged in index order so two runs
	// with the same options are bit-identical.
	locals := make([]*accumulator, len(parallel.SplitRange(n, opts.Workers)))
	err := parallel.ForEachChunk(ctx, n, opts.Workers, func(c parallel.Chunk) error {
		acc := newAccumulator(opts.wantEdges())
		for i := c.Start; i < c.End; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			brandesFromSource(g, nodes[i], opts.Weighted, opts.wantEdges(), acc)
		}
		locals[c.Index] = acc
		return nil
	})
	if err != nil {
		finish(err)
		return nil, err
	}

	for _, acc := range locals {
		result.merge(acc, opts)
	}
	result.rescale(n, opts)

	finish(nil)
	return result, nil
}

// newResult allocates zero-initialized score maps for the requested
// targets, covering every node and edge of the graph.
func newResult(g graph.Graph, nodes []graph.NodeID, opts Options) *Result {
	r := &Result{}
	if opts.wantNodes() {
		r.Nodes = make(map[graph.NodeID]float64, len(nodes))
		for _, id := range nodes {
			r.Nodes[id] = 0
		}
	}
	if opts.wantEdges() {
		r.Edges = make(map[graph.EdgeKey]float64)
		for _, id := range nodes {
			for _, nb := range g.Neighbors(id) {
				if id < nb.ID {
					r.Edges[graph.EdgeKey{U: id, V: nb.ID}] = 0
				}
			}
		}
	}
	return r
}

// merge folds one worker's accumulator into the shared result.
func (r *Result) merge(acc *accumulator, opts Options) {
	if acc == nil {
		return
	}
	if opts.wantNodes() {
		for id, v := range acc.nodes {
			r.Nodes[id] += v
		}
	}
	if opts.wantEdges() {
		for key, v := range acc.edges {
			r.Edges[key] += v
		}
	}
}

// rescale applies the normalization convention: normalized node
// scores divide by (n-1)(n-2) and edge scores by n(n-1); raw scores
// are halved because every unordered pair was counted from both
// endpoints. Graphs too small to normalize are left as accumulated,
// never divided by zero.
func (r *Result) rescale(n int, opts Options) {
	if opts.Normalized {
		if r.Nodes != nil && n > 2 {
			factor := 1.0 / float64((n-1)*(n-2))
			for id := range r.Nodes {
				r.Nodes[id] *= factor
			}
		}
		if r.Edges != nil && n > 1 {
			factor := 1.0 / float64(n*(n-1))
			for key := range r.Edges {
				r.Edges[key] *= factor
			}
		}
		return
	}

	for id := range r.Nodes {
		r.Nodes[id] *= 0.5
	}
	for key := range r.Edges {
		r.Edges[key] *= 0.5
	}
}

// countEdges counts undirected edges via the adjacency lists.
func countEdges(g graph.Graph) int {
	total := 0
	for _, id := range g.Nodes() {
		total += len(g.Neighbors(id))
	}
	return total / 2
}
