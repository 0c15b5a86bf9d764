package evaluation

import (
	"github.com/dd0wney/netsig/pkg/graph"
)

// JaccardSimilarity returns |a intersect b| / |a union b| for two node
// sets. Two empty sets are defined as identical (1.0).
func JaccardSimilarity(a, b []graph.NodeID) float64 {
	setA := make(map[graph.NodeID]struct{}, len(a))
	for _, id := range a {
		setA[id] = struct{}{}
	}
	setB := make(map[graph.NodeID]struct{}, len(b))
	for _, id := range b {
		setB[id] = struct{}{}
	}

	if len(setA) == 0 && len(setB) == 0 {
		return 1.0
	}

	intersection := 0
	for id := range setA {
		if _, ok := setB[id]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}
