package evaluation

import (
	"errors"

	"github.com/dd0wney/netsig/pkg/graph"
)

// ErrEmptyCommunity is returned when a partition contains an empty
// community; RatioCut divides by community size.
var ErrEmptyCommunity = errors.New("partition contains an empty community")

// CutSize returns the number of edges with exactly one endpoint in
// the given node set.
func CutSize(g graph.Graph, community []graph.NodeID) int {
	inside := make(map[graph.NodeID]struct{}, len(community))
	for _, id := range community {
		inside[id] = struct{}{}
	}

	crossing := 0
	for _, u := range community {
		for _, nb := range g.Neighbors(u) {
			if _, ok := inside[nb.ID]; !ok {
				crossing++
			}
		}
	}
	return crossing
}

// RatioCut scores a partition by the sum over communities of
// cut(C, complement) / |C|. Lower is better; the size divisor keeps
// the objective from favoring splitting off single nodes.
func RatioCut(g graph.Graph, communities [][]graph.NodeID) (float64, error) {
	total := 0.0
	for _, community := range communities {
		if len(community) == 0 {
			return 0, ErrEmptyCommunity
		}
		total += float64(CutSize(g, community)) / float64(len(community))
	}
	return total, nil
}
