// Package pools provides sized sync.Pool wrappers for the scratch
// slices the per-source centrality passes churn through. A Brandes
// run allocates a stack and a queue per source node; recycling them
// keeps the allocator out of the hot loop on large graphs.
package pools

import (
	"sync"

	"github.com/dd0wney/netsig/pkg/graph"
)

// Size classes; anything larger is allocated directly.
const (
	smallCap  = 64
	mediumCap = 1024
	largeCap  = 16384
)

// NodeIDPool pools []graph.NodeID slices used for traversal stacks,
// BFS queues and discovery-order buffers.
type NodeIDPool struct {
	small  sync.Pool
	medium sync.Pool
	large  sync.Pool
}

// NewNodeIDPool creates a new node ID slice pool.
func NewNodeIDPool() *NodeIDPool {
	newSized := func(capacity int) func() any {
		return func() any {
			s := make([]graph.NodeID, 0, capacity)
			return &s
		}
	}
	return &NodeIDPool{
		small:  sync.Pool{New: newSized(smallCap)},
		medium: sync.Pool{New: newSized(mediumCap)},
		large:  sync.Pool{New: newSized(largeCap)},
	}
}

// Get returns an empty slice with at least the requested capacity.
func (p *NodeIDPool) Get(size int) []graph.NodeID {
	var pool *sync.Pool
	switch {
	case size <= smallCap:
		pool = &p.small
	case size <= mediumCap:
		pool = &p.medium
	case size <= largeCap:
		pool = &p.large
	default:
		return make([]graph.NodeID, 0, size)
	}

	sp, ok := pool.Get().(*[]graph.NodeID)
	if !ok || cap(*sp) < size {
		return make([]graph.NodeID, 0, size)
	}
	return (*sp)[:0]
}

// Put returns a slice to the pool.
func (p *NodeIDPool) Put(s []graph.NodeID) {
	c := cap(s)
	if c > largeCap {
		return // don't hold on to very large slices
	}
	s = s[:0]

	var pool *sync.Pool
	switch {
	case c <= smallCap:
		pool = &p.small
	case c <= mediumCap:
		pool = &p.medium
	default:
		pool = &p.large
	}
	pool.Put(&s)
}

var defaultNodeIDPool = NewNodeIDPool()

// GetNodeIDs returns a node ID slice from the default pool.
func GetNodeIDs(size int) []graph.NodeID {
	return defaultNodeIDPool.Get(size)
}

// PutNodeIDs returns a node ID slice to the default pool.
func PutNodeIDs(s []graph.NodeID) {
	defaultNodeIDPool.Put(s)
}
