package algorithms

import (
	"errors"
	"fmt"
)

// ErrInvalidGraph is the base error for inputs the algorithms reject
// before any computation starts.
var ErrInvalidGraph = errors.New("invalid graph")

// ErrDirectedGraph is returned when a directed graph is supplied.
// Directed centrality semantics are deliberately unsupported.
var ErrDirectedGraph = fmt.Errorf("%w: directed graphs are not supported", ErrInvalidGraph)

// ErrNegativeWeight is returned when a weighted computation finds a
// negative edge weight. Shortest-path counting is undefined there.
var ErrNegativeWeight = fmt.Errorf("%w: negative edge weight", ErrInvalidGraph)

// ErrInvalidOptions wraps option validation failures.
var ErrInvalidOptions = errors.New("invalid options")
