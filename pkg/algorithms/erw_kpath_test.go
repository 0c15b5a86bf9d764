package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/netsig/pkg/graph"
)

func TestEdgeRandomWalkKPath_Deterministic(t *testing.T) {
	g := completeGraph(t, 6)
	opts := DefaultERWKPathOptions()
	opts.Seed = 42

	first, err := EdgeRandomWalkKPath(g, opts)
	require.NoError(t, err)
	second, err := EdgeRandomWalkKPath(g, opts)
	require.NoError(t, err)

	assert.Equal(t, first.Scores, second.Scores)

	// A different seed should route at least one walk differently on a
	// graph with this many choices.
	opts.Seed = 7
	third, err := EdgeRandomWalkKPath(g, opts)
	require.NoError(t, err)
	assert.NotEqual(t, first.Scores, third.Scores)
}

func TestEdgeRandomWalkKPath_ScoreBounds(t *testing.T) {
	g := completeGraph(t, 5)
	opts := ERWKPathOptions{K: 10, Rho: 50, Beta: 0.01, Seed: 1}

	es, err := EdgeRandomWalkKPath(g, opts)
	require.NoError(t, err)

	edgeCount := g.NumEdges()
	initial := 1.0 / float64(edgeCount)

	total := 0.0
	for key, score := range es.Scores {
		assert.GreaterOrEqual(t, score, initial, "edge %v", key)
		total += score
	}

	// Every hop deposits exactly Beta, and a walk takes at most K hops.
	maxTotal := 1.0 + opts.Beta*float64(opts.Rho*opts.K)
	assert.LessOrEqual(t, total, maxTotal+1e-9)
	assert.Greater(t, total, 1.0)
}

func TestEdgeRandomWalkKPath_SelfAvoiding(t *testing.T) {
	// A single edge can be traversed at most once per walk, so its
	// score is bounded by the initial weight plus Beta per walk.
	g := graph.NewUndirected()
	require.NoError(t, g.AddEdge(1, 2))

	opts := ERWKPathOptions{K: 30, Rho: 40, Beta: 0.5, Seed: 3}
	es, err := EdgeRandomWalkKPath(g, opts)
	require.NoError(t, err)

	score, err := es.Get(1, 2)
	require.NoError(t, err)
	// Every walk starts at one of the two endpoints and crosses once.
	assert.InDelta(t, 1.0+opts.Beta*float64(opts.Rho), score, 1e-9)
}

func TestEdgeRandomWalkKPath_EmptyGraph(t *testing.T) {
	g := graph.NewUndirected()

	es, err := EdgeRandomWalkKPath(g, DefaultERWKPathOptions())
	require.NoError(t, err)
	assert.Empty(t, es.Scores)
}

func TestEdgeRandomWalkKPath_InvalidOptions(t *testing.T) {
	g := completeGraph(t, 4)

	cases := map[string]ERWKPathOptions{
		"zero k":        {K: 0, Rho: 10, Beta: 0.01},
		"zero rho":      {K: 5, Rho: 0, Beta: 0.01},
		"zero beta":     {K: 5, Rho: 10, Beta: 0},
		"negative beta": {K: 5, Rho: 10, Beta: -0.1},
	}
	for name, opts := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := EdgeRandomWalkKPath(g, opts)
			assert.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

func TestEdgeRandomWalkKPath_DirectedRejected(t *testing.T) {
	g := graph.NewDirected()
	require.NoError(t, g.AddEdge(1, 2, 1.0))

	_, err := EdgeRandomWalkKPath(g, DefaultERWKPathOptions())
	assert.ErrorIs(t, err, ErrDirectedGraph)
}
