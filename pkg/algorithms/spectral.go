package algorithms

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/dd0wney/netsig/pkg/graph"
	"github.com/dd0wney/netsig/pkg/significance"
)

// ErrEigenFailed is returned when the eigendecomposition of the
// adjacency matrix does not converge.
var ErrEigenFailed = fmt.Errorf("eigendecomposition failed")

// SpectralCommunitySignificance scores how important each node is to
// the community structure of the graph, using the spectrum of the
// adjacency matrix (Wang, Di and Fan 2011). With c communities and
// v_1..v_c the eigenvectors of the c largest eigenvalues:
//
//	P_k = sum_i v_ik^2 / (v_i . v_i)    I_k = P_k / c
//
// Scores lie in [0, 1]. The adjacency matrix of an undirected graph
// is symmetric, so the decomposition is real.
func SpectralCommunitySignificance(g graph.Graph, communities int, weighted bool) (*significance.NodeSignificance, error) {
	if err := validateGraph(g, weighted); err != nil {
		return nil, err
	}

	nodes := g.Nodes()
	n := len(nodes)
	if communities < 1 || communities > n {
		return nil, fmt.Errorf("%w: communities must be in [1, %d], got %d", ErrInvalidOptions, n, communities)
	}

	finish := observe("spectral_community_significance", n, countEdges(g))

	index := make(map[graph.NodeID]int, n)
	for i, id := range nodes {
		index[id] = i
	}

	adjacency := mat.NewSymDense(n, nil)
	for _, u := range nodes {
		for _, nb := range g.Neighbors(u) {
			if u >= nb.ID {
				continue
			}
			weight := 1.0
			if weighted {
				weight = nb.Weight
			}
			adjacency.SetSym(index[u], index[nb.ID], weight)
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(adjacency, true) {
		finish(ErrEigenFailed)
		return nil, ErrEigenFailed
	}

	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	// EigenSym orders eigenvalues ascending; the c largest occupy the
	// last c columns.
	top := make([]int, 0, communities)
	for i := n - communities; i < n; i++ {
		top = append(top, i)
	}

	// Squared norm per selected eigenvector.
	norms := make(map[int]float64, len(top))
	for _, col := range top {
		total := 0.0
		for row := 0; row < n; row++ {
			v := vectors.At(row, col)
			total += v * v
		}
		norms[col] = total
	}

	scores := make(map[graph.NodeID]float64, n)
	for _, id := range nodes {
		row := index[id]
		p := 0.0
		for _, col := range top {
			v := vectors.At(row, col)
			p += v * v / norms[col]
		}
		scores[id] = p / float64(communities)
	}

	finish(nil)
	return significance.NewNodeSignificance(scores, "spectral_community_significance", map[string]any{
		"communities": communities,
		"weighted":    weighted,
	}), nil
}
