package core

import (
	"fmt"
	"math"
)

// Digraph is a directed, edge-weighted graph over vertices 0..n-1.
//
// Edges are stored twice: once in a flat list preserving insertion
// order (the order relaxation-based algorithms iterate in), and once
// in an out-adjacency index for per-vertex scans. Both views refer to
// the same Edge values.
//
// A Digraph is not safe for concurrent mutation; see the package
// documentation for the ownership model.
type Digraph struct {
	n    int      // number of vertices
	opts Options  // construction-time configuration
	list []Edge   // all edges, insertion order
	out  [][]Edge // out[u] = edges with From == u
}

// NewDigraph creates a Digraph with the given number of vertices and
// no edges. A zero vertex count is valid and yields an edgeless graph.
func NewDigraph(vertices int, opts ...Option) (*Digraph, error) {
	if vertices < 0 {
		return nil, fmt.Errorf("NewDigraph(%d): %w", vertices, ErrBadVertexCount)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Digraph{
		n:    vertices,
		opts: cfg,
		list: nil,
		out:  make([][]Edge, vertices),
	}, nil
}

// AddEdge appends the directed edge from → to with the given weight.
//
// Validation order: endpoint bounds, self-loop policy, weight
// finiteness. Parallel edges are allowed; callers that need at most
// one edge per ordered pair enforce that themselves.
func (g *Digraph) AddEdge(from, to int, weight float64) error {
	if from < 0 || from >= g.n {
		return fmt.Errorf("AddEdge: from=%d of %d vertices: %w", from, g.n, ErrVertexOutOfRange)
	}
	if to < 0 || to >= g.n {
		return fmt.Errorf("AddEdge: to=%d of %d vertices: %w", to, g.n, ErrVertexOutOfRange)
	}
	if from == to && !g.opts.AllowLoops {
		return fmt.Errorf("AddEdge: %d→%d: %w", from, to, ErrSelfLoop)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("AddEdge: %d→%d weight=%v: %w", from, to, weight, ErrNonFiniteWeight)
	}

	e := Edge{From: from, To: to, Weight: weight}
	g.list = append(g.list, e)
	g.out[from] = append(g.out[from], e)

	return nil
}

// VertexCount returns the number of vertices n (indices 0..n-1).
func (g *Digraph) VertexCount() int { return g.n }

// EdgeCount returns the number of edges added so far.
func (g *Digraph) EdgeCount() int { return len(g.list) }

// HasEdges reports whether the graph contains at least one edge.
func (g *Digraph) HasEdges() bool { return len(g.list) > 0 }

// Edges returns all edges in insertion order. The slice is shared with
// the graph; callers must not modify it.
func (g *Digraph) Edges() []Edge { return g.list }

// OutEdges returns the edges leaving vertex u, in insertion order.
// Returns nil when u is out of range; callers that need the
// distinction validate u themselves.
func (g *Digraph) OutEdges(u int) []Edge {
	if u < 0 || u >= g.n {
		return nil
	}

	return g.out[u]
}
