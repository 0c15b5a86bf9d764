package algorithms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/netsig/pkg/graph"
)

// efficiencyFixture is a 9-node graph with a dominant hub (node 3)
// and a secondary hub (node 5), with published efficiency centrality
// values to four decimals.
func efficiencyFixture(t *testing.T) *graph.Undirected {
	t.Helper()
	g := graph.NewUndirected()
	edges := [][2]graph.NodeID{
		{1, 3}, {2, 3}, {4, 3}, {5, 3}, {6, 3}, {7, 3},
		{5, 7}, {3, 9}, {7, 8}, {8, 9}, {2, 9}, {4, 5}, {5, 6},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func TestEfficiencyCentrality_ReferenceGraph(t *testing.T) {
	g := efficiencyFixture(t)

	ns, err := EfficiencyCentrality(context.Background(), g, false)
	require.NoError(t, err)

	want := map[graph.NodeID]float64{
		1: 0.1806, 2: 0.2083, 3: 0.5215, 4: 0.2014, 5: 0.2500,
		6: 0.2014, 7: 0.2361, 8: 0.1875, 9: 0.2361,
	}
	require.Equal(t, len(want), ns.Len())
	for id, score := range want {
		got, err := ns.Get(id)
		require.NoError(t, err)
		assert.InDelta(t, score, got, 1e-4, "node %d", id)
	}

	// The hub's removal hurts network efficiency the most.
	top := ns.Top(1)
	require.Len(t, top, 1)
	assert.Equal(t, graph.NodeID(3), top[0].ID)
}

func TestEfficiencyCentrality_StarHubDominates(t *testing.T) {
	g := starGraph(t, 5)

	ns, err := EfficiencyCentrality(context.Background(), g, false)
	require.NoError(t, err)

	hub, err := ns.Get(0)
	require.NoError(t, err)
	leaf, err := ns.Get(1)
	require.NoError(t, err)
	assert.Greater(t, hub, leaf)

	// Removing the hub disconnects everything, so it loses all
	// efficiency.
	assert.InDelta(t, 1.0, hub, 1e-9)
}

func TestEfficiencyCentrality_TinyGraphs(t *testing.T) {
	empty := graph.NewUndirected()
	ns, err := EfficiencyCentrality(context.Background(), empty, false)
	require.NoError(t, err)
	assert.Zero(t, ns.Len())

	single := graph.NewUndirected()
	single.AddNode(1)
	ns, err = EfficiencyCentrality(context.Background(), single, false)
	require.NoError(t, err)
	score, err := ns.Get(1)
	require.NoError(t, err)
	assert.Zero(t, score)
}

func TestEfficiencyCentrality_WeightedShiftsScores(t *testing.T) {
	// With a cheap detour around node 2, removing 2 costs little.
	g := graph.NewUndirected()
	require.NoError(t, g.AddWeightedEdge(1, 2, 1.0))
	require.NoError(t, g.AddWeightedEdge(2, 3, 1.0))
	require.NoError(t, g.AddWeightedEdge(1, 3, 10.0))

	unweighted, err := EfficiencyCentrality(context.Background(), g, false)
	require.NoError(t, err)
	weighted, err := EfficiencyCentrality(context.Background(), g, true)
	require.NoError(t, err)

	uw, err := unweighted.Get(2)
	require.NoError(t, err)
	w, err := weighted.Get(2)
	require.NoError(t, err)
	// In hop terms node 2 is redundant; in weighted terms it carries
	// the only cheap route between 1 and 3.
	assert.Greater(t, w, uw)
}

func TestEfficiencyCentrality_Canceled(t *testing.T) {
	g := efficiencyFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := EfficiencyCentrality(ctx, g, false)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEfficiencyCentrality_DirectedRejected(t *testing.T) {
	g := graph.NewDirected()
	require.NoError(t, g.AddEdge(1, 2, 1.0))

	_, err := EfficiencyCentrality(context.Background(), g, false)
	assert.ErrorIs(t, err, ErrDirectedGraph)
}
