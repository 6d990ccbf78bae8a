// Package core: shared types, functional options and sentinel errors.
package core

import "errors"

// Sentinel errors returned by Digraph construction and mutation.
var (
	// ErrBadVertexCount indicates NewDigraph was asked for a negative
	// number of vertices.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates an edge endpoint outside 0..n-1.
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrSelfLoop indicates an edge from a vertex to itself on a graph
	// built without WithLoops.
	ErrSelfLoop = errors.New("core: self-loops are not permitted")

	// ErrNonFiniteWeight indicates an edge weight that is NaN or ±Inf.
	ErrNonFiniteWeight = errors.New("core: edge weight must be finite")
)

// Arc identifies an ordered vertex pair (From → To). It is the map key
// used by callers that attach metadata to directed edges.
type Arc struct {
	From int
	To   int
}

// Edge is a directed edge with a real weight. Weights may be negative;
// NaN and ±Inf are rejected at AddEdge time.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Options configures a Digraph at construction time.
//
// AllowLoops – permit edges with From == To. Default false: the
// exchange graph never contains self-loops, and rejecting them early
// catches builder bugs.
type Options struct {
	AllowLoops bool
}

// Option is a functional option for NewDigraph.
type Option func(*Options)

// WithLoops permits self-loop edges (From == To).
func WithLoops() Option {
	return func(o *Options) {
		o.AllowLoops = true
	}
}

// DefaultOptions returns the construction defaults: self-loops
// forbidden.
func DefaultOptions() Options {
	return Options{AllowLoops: false}
}
