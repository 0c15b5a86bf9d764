package significance

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/netsig/pkg/graph"
)

func testTriangle(t *testing.T) *graph.Undirected {
	t.Helper()
	g := graph.NewUndirected()
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(1, 3))
	return g
}

func TestNodeSignificance_Get(t *testing.T) {
	ns := NewNodeSignificance(map[graph.NodeID]float64{1: 0.5, 2: 0.25}, "test", nil)

	score, err := ns.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, score)

	_, err = ns.Get(99)
	assert.True(t, graph.IsNodeNotFound(err), "expected NodeNotFoundError, got %v", err)
}

func TestNodeSignificance_Top(t *testing.T) {
	ns := NewNodeSignificance(map[graph.NodeID]float64{
		1: 0.1, 2: 0.9, 3: 0.5, 4: 0.9, 5: 0.0,
	}, "test", nil)

	top := ns.Top(3)
	require.Len(t, top, 3)
	// Ties broken by ascending node ID
	assert.Equal(t, graph.NodeID(2), top[0].ID)
	assert.Equal(t, graph.NodeID(4), top[1].ID)
	assert.Equal(t, graph.NodeID(3), top[2].ID)

	assert.Nil(t, ns.Top(0))
	assert.Len(t, ns.Top(100), 5)
}

func TestNodeSignificance_WriteJSON(t *testing.T) {
	ns := NewNodeSignificance(map[graph.NodeID]float64{1: 0.5}, "degree_product", map[string]any{"theta": 1.0})

	var buf bytes.Buffer
	require.NoError(t, ns.WriteJSON(&buf))

	var decoded struct {
		Significance map[string]float64 `json:"significance"`
		Algorithm    string             `json:"algorithm"`
		Params       map[string]any     `json:"params"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "degree_product", decoded.Algorithm)
	assert.Equal(t, 0.5, decoded.Significance["1"])
	assert.Equal(t, 1.0, decoded.Params["theta"])
}

func TestNodeSignificance_WriteJSONFile(t *testing.T) {
	ns := NewNodeSignificance(map[graph.NodeID]float64{7: 1.25}, "test", nil)

	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, ns.WriteJSONFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"7": 1.25`)
}

func TestNodeSignificance_Describe(t *testing.T) {
	ns := NewNodeSignificance(map[graph.NodeID]float64{1: 0.0, 2: 1.0}, "effc", map[string]any{"weighted": false})

	desc := ns.Describe(2)
	assert.True(t, strings.HasPrefix(desc, "effc: 2 scores"), desc)
	assert.Contains(t, desc, "min=0.00")
	assert.Contains(t, desc, "max=1.00")
	assert.Contains(t, desc, "mean=0.50")
	assert.Contains(t, desc, "weighted=false")
}

func TestEdgeSignificance_GetAndMatrix(t *testing.T) {
	g := testTriangle(t)
	scores := map[graph.EdgeKey]float64{
		graph.NewEdgeKey(1, 2): 0.4,
		graph.NewEdgeKey(2, 3): 0.6,
	}
	es := NewEdgeSignificance(scores, g, "test", nil)

	// Lookup order of endpoints must not matter
	s1, err := es.Get(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.4, s1)

	// Known nodes without a scored edge yield 0
	s2, err := es.Get(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s2)

	_, err = es.Get(1, 42)
	assert.True(t, graph.IsNodeNotFound(err))

	m := es.Matrix()
	r, c := m.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)

	i1, _ := es.NodeIndex(1)
	i2, _ := es.NodeIndex(2)
	assert.Equal(t, 0.4, m.At(i1, i2))
	assert.Equal(t, 0.4, m.At(i2, i1), "matrix must be symmetric")
}

func TestEdgeSignificance_EmptyGraphMatrix(t *testing.T) {
	// Empty graphs produce valid zero-score envelopes; the matrix view
	// of one is nil rather than a zero-dimension panic.
	es := NewEdgeSignificance(nil, graph.NewUndirected(), "test", nil)

	assert.Nil(t, es.Matrix())
	assert.Zero(t, es.Len())
	_, err := es.Get(1, 2)
	assert.True(t, graph.IsNodeNotFound(err))
}

func TestEdgeSignificance_TopAndExport(t *testing.T) {
	g := testTriangle(t)
	scores := map[graph.EdgeKey]float64{
		graph.NewEdgeKey(1, 2): 0.1,
		graph.NewEdgeKey(2, 3): 0.9,
		graph.NewEdgeKey(1, 3): 0.5,
	}
	es := NewEdgeSignificance(scores, g, "betweenness", nil)

	top := es.Top(2)
	require.Len(t, top, 2)
	assert.Equal(t, RankedEdge{U: 2, V: 3, Score: 0.9}, top[0])
	assert.Equal(t, RankedEdge{U: 1, V: 3, Score: 0.5}, top[1])

	var buf bytes.Buffer
	require.NoError(t, es.WriteJSON(&buf))

	var decoded struct {
		Significance []RankedEdge `json:"significance"`
		Algorithm    string       `json:"algorithm"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "betweenness", decoded.Algorithm)
	require.Len(t, decoded.Significance, 3)
	// Records sorted by endpoints
	assert.Equal(t, RankedEdge{U: 1, V: 2, Score: 0.1}, decoded.Significance[0])
}
