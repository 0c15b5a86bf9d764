package evaluation

import (
	"github.com/dd0wney/netsig/pkg/graph"
)

// GiantComponentFraction returns the fraction of nodes contained in
// the largest connected component, R_GC = |GC| / |V|. An empty graph
// yields 0.
func GiantComponentFraction(g graph.Graph) float64 {
	n := len(g.Nodes())
	if n == 0 {
		return 0
	}

	largest := 0
	for _, component := range ConnectedComponents(g) {
		if len(component) > largest {
			largest = len(component)
		}
	}
	return float64(largest) / float64(n)
}

// NormalizedSusceptibility sums n_s * s^2 / N over all components but
// the largest, where n_s is the number of components of size s and N
// the node count. It spikes near the percolation threshold of an
// attack sequence.
func NormalizedSusceptibility(g graph.Graph) float64 {
	n := len(g.Nodes())
	if n == 0 {
		return 0
	}

	components := ConnectedComponents(g)
	if len(components) <= 1 {
		return 0
	}

	// Exclude one largest component; ties keep all but one.
	largestIdx := 0
	for i, component := range components {
		if len(component) > len(components[largestIdx]) {
			largestIdx = i
		}
	}

	total := 0.0
	for i, component := range components {
		if i == largestIdx {
			continue
		}
		s := float64(len(component))
		total += s * s / float64(n)
	}
	return total
}
