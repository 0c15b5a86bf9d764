package algorithms

import (
	"fmt"
	"runtime"

	"github.com/go-playground/validator/v10"

	"github.com/dd0wney/netsig/pkg/graph"
)

// validate is the package-wide validator instance.
var validate = validator.New()

// Target selects what a betweenness computation scores.
type Target string

const (
	// TargetNodes scores nodes only.
	TargetNodes Target = "nodes"
	// TargetEdges scores edges only.
	TargetEdges Target = "edges"
	// TargetBoth scores nodes and edges in the same pass.
	TargetBoth Target = "both"
)

// Options configures a betweenness computation.
type Options struct {
	// Weighted selects Dijkstra-based shortest paths using edge
	// weights; unweighted runs use BFS hop counts.
	Weighted bool
	// Target selects node, edge or combined scoring. Empty means
	// TargetNodes.
	Target Target `validate:"omitempty,oneof=nodes edges both"`
	// Normalized rescales node scores by 1/((n-1)(n-2)) and edge
	// scores by 1/(n(n-1)). Unnormalized undirected scores are halved
	// so each unordered pair counts once.
	Normalized bool
	// Workers is the fan-out width across source nodes. Zero means
	// GOMAXPROCS.
	Workers int `validate:"gte=0"`
}

// DefaultOptions returns the configuration used when callers pass the
// zero value: unweighted node betweenness, normalized, automatic
// fan-out.
func DefaultOptions() Options {
	return Options{
		Target:     TargetNodes,
		Normalized: true,
	}
}

// withDefaults fills unset fields.
func (o Options) withDefaults() Options {
	if o.Target == "" {
		o.Target = TargetNodes
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// wantNodes reports whether node scores are requested.
func (o Options) wantNodes() bool {
	return o.Target == TargetNodes || o.Target == TargetBoth
}

// wantEdges reports whether edge scores are requested.
func (o Options) wantEdges() bool {
	return o.Target == TargetEdges || o.Target == TargetBoth
}

// validateOptions checks struct tags and wraps failures into a
// readable error.
func validateOptions(o Options) error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}

// validateGraph runs the upfront input checks shared by the
// algorithms: directed graphs are rejected, and when weights matter a
// full scan rejects negative ones before any work starts.
func validateGraph(g graph.Graph, checkWeights bool) error {
	if g.IsDirected() {
		return ErrDirectedGraph
	}
	if !checkWeights {
		return nil
	}
	for _, id := range g.Nodes() {
		for _, nb := range g.Neighbors(id) {
			if nb.Weight < 0 {
				return fmt.Errorf("%w: edge (%d,%d) has weight %v", ErrNegativeWeight, id, nb.ID, nb.Weight)
			}
		}
	}
	return nil
}
