package algorithms

import (
	"math"

	"github.com/dd0wney/netsig/pkg/graph"
	"github.com/dd0wney/netsig/pkg/significance"
)

// DegreeProduct scores every edge by the product of its endpoint
// degrees raised to theta: (k_u * k_v)^theta. On weighted graphs the
// node strength (sum of incident edge weights) replaces the degree.
// Theta values at or below zero fall back to the conventional 1.0.
func DegreeProduct(g graph.Graph, theta float64, weighted bool) (*significance.EdgeSignificance, error) {
	if err := validateGraph(g, weighted); err != nil {
		return nil, err
	}
	if theta <= 0 {
		theta = 1.0
	}

	nodes := g.Nodes()
	finish := observe("degree_product", len(nodes), countEdges(g))

	// One measure per node, computed once up front.
	measure := make(map[graph.NodeID]float64, len(nodes))
	for _, id := range nodes {
		if weighted {
			total := 0.0
			for _, nb := range g.Neighbors(id) {
				total += nb.Weight
			}
			measure[id] = total
		} else {
			measure[id] = float64(len(g.Neighbors(id)))
		}
	}

	scores := make(map[graph.EdgeKey]float64)
	for _, u := range nodes {
		for _, nb := range g.Neighbors(u) {
			if u >= nb.ID {
				continue
			}
			scores[graph.EdgeKey{U: u, V: nb.ID}] = math.Pow(measure[u]*measure[nb.ID], theta)
		}
	}

	finish(nil)
	return significance.NewEdgeSignificance(scores, g, "degree_product", map[string]any{
		"theta":    theta,
		"weighted": weighted,
	}), nil
}
