// Package core provides the directed, edge-weighted graph primitive
// shared by the paretoflow algorithm packages.
//
// Vertices are dense integer indices 0..n-1 (player indices in the
// exchange setting), edge weights are float64 and may be negative
// (log-ratios). A Digraph is built once per computation, consumed, and
// discarded; it is not safe for concurrent mutation and carries no
// locking on purpose — each caller owns its own instance.
//
// Construction:
//
//	g, err := core.NewDigraph(4)            // 4 vertices, no self-loops
//	g, err := core.NewDigraph(4, core.WithLoops())
//
// Mutation and inspection:
//
//	err := g.AddEdge(0, 2, -0.35)           // bounds- and weight-checked
//	for _, e := range g.Edges() { ... }     // insertion order
//	for _, e := range g.OutEdges(2) { ... } // out-adjacency of vertex 2
//
// Complexity:
//
//   - AddEdge: O(1) amortized
//   - Edges / OutEdges: O(1) (slices are returned by reference)
//   - Space: O(V + E)
package core
