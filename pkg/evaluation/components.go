// Package evaluation scores how well a significance ranking predicts
// network robustness: component structure after removals and the
// quality of community partitions.
package evaluation

import (
	"github.com/dd0wney/netsig/pkg/graph"
	"github.com/dd0wney/netsig/pkg/pools"
)

// ConnectedComponents returns the connected components of the graph,
// each as a node slice in discovery order. Components appear in the
// order their first node appears in g.Nodes().
func ConnectedComponents(g graph.Graph) [][]graph.NodeID {
	visited := make(map[graph.NodeID]bool)
	var components [][]graph.NodeID

	for _, start := range g.Nodes() {
		if visited[start] {
			continue
		}

		component := []graph.NodeID{}
		queue := pools.GetNodeIDs(64)
		queue = append(queue, start)
		visited[start] = true

		for head := 0; head < len(queue); head++ {
			v := queue[head]
			component = append(component, v)
			for _, nb := range g.Neighbors(v) {
				if !visited[nb.ID] {
					visited[nb.ID] = true
					queue = append(queue, nb.ID)
				}
			}
		}
		pools.PutNodeIDs(queue)

		components = append(components, component)
	}

	return components
}
