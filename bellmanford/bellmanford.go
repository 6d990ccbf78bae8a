package bellmanford

import (
	"errors"
	"fmt"
	"math"

	"github.com/fairdiv/paretoflow/core"
)

// FindNegativeCycle runs Bellman–Ford from source over g and returns
// one negative-weight cycle reachable from source, as a closed vertex
// sequence c where c[0] == c[len(c)-1] and every consecutive pair
// (c[i], c[i+1]) is a directed edge of g.
//
// Returns:
//
//   - cycle: the closed walk, in forward edge order.
//   - err:   ErrNilGraph / ErrSourceOutOfRange on contract violations;
//     ErrNegativeCycleNotFound when the reachable subgraph has no
//     negative cycle (including the edgeless graph).
//
// Complexity:
//
//   - Time:  O(V · E)
//   - Space: O(V)
func FindNegativeCycle(g *core.Digraph, source int) ([]int, error) {
	// 1) Validate the graph pointer.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Validate the source vertex.
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("FindNegativeCycle: source=%d of %d vertices: %w",
			source, n, ErrSourceOutOfRange)
	}

	// 3) Degenerate input: no edges means no cycle of any weight.
	if !g.HasEdges() {
		return nil, ErrNegativeCycleNotFound
	}

	// 4) Initialize distance and predecessor arrays.
	//    dist[v] = +Inf for unreached vertices, prev[v] = -1.
	inf := math.Inf(1)
	dist := make([]float64, n)
	prev := make([]int, n)
	for v := 0; v < n; v++ {
		dist[v] = inf
		prev[v] = -1
	}
	dist[source] = 0

	// 5) Relax every edge n-1 times. Each round propagates best-known
	//    distances one hop further; a round that changes nothing means
	//    all shortest paths are final and we can stop early.
	edges := g.Edges()
	var e core.Edge
	for round := 1; round < n; round++ {
		changed := false
		for _, e = range edges {
			if dist[e.From] == inf {
				continue // e.From not yet reached; nothing to propagate
			}
			if cand := dist[e.From] + e.Weight; cand < dist[e.To] {
				dist[e.To] = cand
				prev[e.To] = e.From
				changed = true
			}
		}
		if !changed {
			return nil, ErrNegativeCycleNotFound
		}
	}

	// 6) Detection round: any edge still relaxable lies on, or is
	//    reachable from, a negative cycle.
	for _, e = range edges {
		if dist[e.From] == inf {
			continue
		}
		if dist[e.From]+e.Weight < dist[e.To] {
			prev[e.To] = e.From

			return rotateToSource(extractCycle(prev, e.To, n), source), nil
		}
	}

	return nil, ErrNegativeCycleNotFound
}

// HasNegativeCycle reports whether a negative-weight cycle is
// reachable from source. Contract violations are returned as errors;
// absence of a cycle is the boolean false, not an error.
func HasNegativeCycle(g *core.Digraph, source int) (bool, error) {
	if _, err := FindNegativeCycle(g, source); err != nil {
		if errors.Is(err, ErrNegativeCycleNotFound) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// extractCycle recovers a closed walk from the predecessor array.
//
// start is the endpoint of an edge that relaxed on the detection
// round; it is reachable from a negative cycle but not necessarily on
// it. Stepping the predecessor chain n times is guaranteed to land on
// a vertex of the cycle itself, after which one lap around the chain
// collects the cycle in reverse edge order.
func extractCycle(prev []int, start, n int) []int {
	// 1) Walk n predecessor steps to land inside the cycle.
	x := start
	for i := 0; i < n; i++ {
		x = prev[x]
	}

	// 2) Collect one full lap: x, prev[x], prev[prev[x]], ... until x
	//    reappears. The chain is in reverse edge order.
	lap := []int{x}
	for v := prev[x]; v != x; v = prev[v] {
		lap = append(lap, v)
	}

	// 3) Reverse into forward edge order and close the walk, so that
	//    every consecutive pair is a directed edge.
	m := len(lap)
	cycle := make([]int, 0, m+1)
	cycle = append(cycle, x)
	for i := m - 1; i >= 1; i-- {
		cycle = append(cycle, lap[i])
	}
	cycle = append(cycle, x)

	return cycle
}

// rotateToSource normalizes a closed walk so that it begins (and ends)
// at source whenever source lies on the cycle. A closed walk is
// rotation-invariant as an edge set, so this only fixes the traversal
// origin, which downstream consumers (and tests) rely on for
// determinism. Cycles not containing source are returned unchanged.
func rotateToSource(cycle []int, source int) []int {
	// Drop the closing duplicate while searching.
	body := cycle[:len(cycle)-1]
	at := -1
	for i, v := range body {
		if v == source {
			at = i

			break
		}
	}
	if at <= 0 {
		return cycle // already source-first, or source not on the cycle
	}

	rotated := make([]int, 0, len(cycle))
	rotated = append(rotated, body[at:]...)
	rotated = append(rotated, body[:at]...)
	rotated = append(rotated, source)

	return rotated
}
