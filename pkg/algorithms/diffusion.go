package algorithms

import (
	"github.com/dd0wney/netsig/pkg/graph"
	"github.com/dd0wney/netsig/pkg/significance"
)

// DiffusionImportance scores an edge (x,y) by how much it matters to
// a spreading process: D_e = (n_{x<-y} + n_{y<-x}) / 2, where n_{x<-y}
// counts the links of y that lead outside the closed neighborhood of
// x. Edges inside tight clusters score low, edges feeding new regions
// score high. Weights are ignored.
func DiffusionImportance(g graph.Graph) (*significance.EdgeSignificance, error) {
	if err := validateGraph(g, false); err != nil {
		return nil, err
	}

	nodes := g.Nodes()
	finish := observe("diffusion_importance", len(nodes), countEdges(g))

	// Closed neighborhood sets, built once.
	closed := make(map[graph.NodeID]map[graph.NodeID]struct{}, len(nodes))
	for _, id := range nodes {
		set := make(map[graph.NodeID]struct{}, len(g.Neighbors(id))+1)
		set[id] = struct{}{}
		for _, nb := range g.Neighbors(id) {
			set[nb.ID] = struct{}{}
		}
		closed[id] = set
	}

	// outwardLinks counts y's links leaving the closed neighborhood
	// of x.
	outwardLinks := func(x, y graph.NodeID) float64 {
		count := 0.0
		for _, nb := range g.Neighbors(y) {
			if _, inside := closed[x][nb.ID]; !inside {
				count++
			}
		}
		return count
	}

	scores := make(map[graph.EdgeKey]float64)
	for _, x := range nodes {
		for _, nb := range g.Neighbors(x) {
			y := nb.ID
			if x >= y {
				continue
			}
			scores[graph.EdgeKey{U: x, V: y}] = (outwardLinks(x, y) + outwardLinks(y, x)) / 2.0
		}
	}

	finish(nil)
	return significance.NewEdgeSignificance(scores, g, "diffusion_importance", nil), nil
}
