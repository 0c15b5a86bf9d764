package graph

import (
	"errors"
	"fmt"
)

// ErrSelfLoop is returned when an edge would connect a node to itself.
var ErrSelfLoop = errors.New("self-loops are not supported")

// NodeNotFoundError reports a lookup of a node the graph does not
// contain.
type NodeNotFoundError struct {
	ID NodeID
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("node %d is not in the graph", e.ID)
}

// IsNodeNotFound reports whether err is a NodeNotFoundError.
func IsNodeNotFound(err error) bool {
	var nf *NodeNotFoundError
	return errors.As(err, &nf)
}
