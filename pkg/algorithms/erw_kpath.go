package algorithms

import (
	"fmt"
	"math/rand/v2"

	"github.com/dd0wney/netsig/pkg/graph"
	"github.com/dd0wney/netsig/pkg/significance"
)

// ERWKPathOptions configures the edge random-walk k-path measure.
type ERWKPathOptions struct {
	// K caps the length of each message walk.
	K int `validate:"gte=1"`
	// Rho is the number of walks performed.
	Rho int `validate:"gte=1"`
	// Beta is the weight added to every traversed edge.
	Beta float64 `validate:"gt=0"`
	// Seed fixes the random source; two runs with the same seed on
	// the same graph are identical.
	Seed uint64
}

// DefaultERWKPathOptions returns the parameters commonly used in the
// literature: walks as long as 20 hops, one walk per node would be
// graph-dependent, so Rho stays a caller decision and defaults to 100.
func DefaultERWKPathOptions() ERWKPathOptions {
	return ERWKPathOptions{K: 20, Rho: 100, Beta: 0.01}
}

// EdgeRandomWalkKPath approximates edge significance by repeated
// self-avoiding random message walks (ERW-Kpath). Every edge starts
// at weight 1/|E|; each of Rho walks starts at a uniformly chosen
// node and takes up to K hops, at each hop picking a uniformly random
// incident edge not yet traversed during this walk and adding Beta to
// its score. Edges that ferry many walks end up heavy.
func EdgeRandomWalkKPath(g graph.Graph, opts ERWKPathOptions) (*significance.EdgeSignificance, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	if err := validateGraph(g, false); err != nil {
		return nil, err
	}

	nodes := g.Nodes()
	edgeCount := countEdges(g)
	finish := observe("erw_kpath", len(nodes), edgeCount)

	scores := make(map[graph.EdgeKey]float64)
	if edgeCount == 0 || len(nodes) == 0 {
		finish(nil)
		return significance.NewEdgeSignificance(scores, g, "erw_kpath", opts.params()), nil
	}

	initial := 1.0 / float64(edgeCount)
	for _, u := range nodes {
		for _, nb := range g.Neighbors(u) {
			if u < nb.ID {
				scores[graph.EdgeKey{U: u, V: nb.ID}] = initial
			}
		}
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	for walk := 0; walk < opts.Rho; walk++ {
		current := nodes[rng.IntN(len(nodes))]
		traversed := make(map[graph.EdgeKey]struct{}, opts.K)

		for hop := 0; hop < opts.K; hop++ {
			candidates := untraversedEdges(g, current, traversed)
			if len(candidates) == 0 {
				break
			}
			next := candidates[rng.IntN(len(candidates))]
			key := graph.NewEdgeKey(current, next)
			scores[key] += opts.Beta
			traversed[key] = struct{}{}
			current = next
		}
	}

	finish(nil)
	return significance.NewEdgeSignificance(scores, g, "erw_kpath", opts.params()), nil
}

func (o ERWKPathOptions) params() map[string]any {
	return map[string]any{"k": o.K, "rho": o.Rho, "beta": o.Beta, "seed": o.Seed}
}

// untraversedEdges lists the neighbors of v reachable over edges this
// walk has not used yet.
func untraversedEdges(g graph.Graph, v graph.NodeID, traversed map[graph.EdgeKey]struct{}) []graph.NodeID {
	var out []graph.NodeID
	for _, nb := range g.Neighbors(v) {
		if _, used := traversed[graph.NewEdgeKey(v, nb.ID)]; !used {
			out = append(out, nb.ID)
		}
	}
	return out
}
