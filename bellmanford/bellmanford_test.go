// Package bellmanford_test contains unit tests for negative-cycle
// detection over hand-built graphs with known cycle structure.
package bellmanford_test

import (
	"errors"
	"testing"

	"github.com/fairdiv/paretoflow/bellmanford"
	"github.com/fairdiv/paretoflow/core"
)

// mustGraph builds a digraph from an edge list, failing the test on
// any construction error.
func mustGraph(t *testing.T, vertices int, edges []core.Edge) *core.Digraph {
	t.Helper()

	g, err := core.NewDigraph(vertices)
	if err != nil {
		t.Fatalf("NewDigraph(%d): %v", vertices, err)
	}
	for _, e := range edges {
		if err = g.AddEdge(e.From, e.To, e.Weight); err != nil {
			t.Fatalf("AddEdge(%d,%d,%v): %v", e.From, e.To, e.Weight, err)
		}
	}

	return g
}

// assertClosedWalk verifies the cycle is closed and that every
// consecutive pair is an actual edge of g with the expected total
// weight sign (negative).
func assertClosedWalk(t *testing.T, g *core.Digraph, cycle []int) {
	t.Helper()

	if len(cycle) < 2 {
		t.Fatalf("cycle too short: %v", cycle)
	}
	if cycle[0] != cycle[len(cycle)-1] {
		t.Fatalf("cycle not closed: %v", cycle)
	}

	total := 0.0
	for i := 0; i+1 < len(cycle); i++ {
		u, v := cycle[i], cycle[i+1]
		found := false
		for _, e := range g.OutEdges(u) {
			if e.To == v {
				total += e.Weight
				found = true

				break
			}
		}
		if !found {
			t.Fatalf("cycle step %d→%d is not an edge; cycle=%v", u, v, cycle)
		}
	}
	if total >= 0 {
		t.Fatalf("cycle weight = %v; want negative; cycle=%v", total, cycle)
	}
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestFindNegativeCycle_NilGraph(t *testing.T) {
	_, err := bellmanford.FindNegativeCycle(nil, 0)
	if !errors.Is(err, bellmanford.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestFindNegativeCycle_SourceOutOfRange(t *testing.T) {
	g := mustGraph(t, 2, []core.Edge{{From: 0, To: 1, Weight: 1}})
	for _, src := range []int{-1, 2, 10} {
		_, err := bellmanford.FindNegativeCycle(g, src)
		if !errors.Is(err, bellmanford.ErrSourceOutOfRange) {
			t.Fatalf("source %d: expected ErrSourceOutOfRange, got %v", src, err)
		}
	}
}

func TestFindNegativeCycle_EdgelessGraph(t *testing.T) {
	g := mustGraph(t, 3, nil)
	_, err := bellmanford.FindNegativeCycle(g, 0)
	if !errors.Is(err, bellmanford.ErrNegativeCycleNotFound) {
		t.Fatalf("expected ErrNegativeCycleNotFound, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. No negative cycle present
// ------------------------------------------------------------------------

func TestFindNegativeCycle_PositiveCycleOnly(t *testing.T) {
	// Triangle 0→1→2→0 with total weight +0.6.
	g := mustGraph(t, 3, []core.Edge{
		{From: 0, To: 1, Weight: 0.1},
		{From: 1, To: 2, Weight: 0.2},
		{From: 2, To: 0, Weight: 0.3},
	})
	_, err := bellmanford.FindNegativeCycle(g, 0)
	if !errors.Is(err, bellmanford.ErrNegativeCycleNotFound) {
		t.Fatalf("expected ErrNegativeCycleNotFound, got %v", err)
	}
}

func TestFindNegativeCycle_ZeroWeightCycle(t *testing.T) {
	// A zero-total cycle is NOT negative: 0→1 (+1), 1→0 (−1).
	g := mustGraph(t, 2, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 0, Weight: -1},
	})
	ok, err := bellmanford.HasNegativeCycle(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("zero-weight cycle reported as negative")
	}
}

func TestFindNegativeCycle_NegativeEdgesNoCycle(t *testing.T) {
	// DAG with negative edges but no cycle at all.
	g := mustGraph(t, 4, []core.Edge{
		{From: 0, To: 1, Weight: -5},
		{From: 1, To: 2, Weight: -3},
		{From: 0, To: 3, Weight: -8},
		{From: 3, To: 2, Weight: 1},
	})
	ok, err := bellmanford.HasNegativeCycle(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("acyclic graph reported a negative cycle")
	}
}

// ------------------------------------------------------------------------
// 3. Known negative cycles
// ------------------------------------------------------------------------

func TestFindNegativeCycle_TwoVertexCycle(t *testing.T) {
	// 0→1 (+1), 1→0 (−2): total −1.
	g := mustGraph(t, 2, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 0, Weight: -2},
	})
	cycle, err := bellmanford.FindNegativeCycle(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	assertClosedWalk(t, g, cycle)
	if len(cycle) != 3 {
		t.Fatalf("expected a 2-cycle (3 entries), got %v", cycle)
	}
}

func TestFindNegativeCycle_TriangleCycle(t *testing.T) {
	// 0→1→2→0 with total weight −0.5.
	g := mustGraph(t, 3, []core.Edge{
		{From: 0, To: 1, Weight: 1.0},
		{From: 1, To: 2, Weight: -2.0},
		{From: 2, To: 0, Weight: 0.5},
	})
	cycle, err := bellmanford.FindNegativeCycle(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	assertClosedWalk(t, g, cycle)
}

func TestFindNegativeCycle_CycleBehindTail(t *testing.T) {
	// Source 0 hangs off a negative cycle 1→2→3→1; the detection
	// endpoint is reachable from the cycle, the walk must still land
	// on the cycle itself.
	g := mustGraph(t, 5, []core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 1, To: 2, Weight: -1},
		{From: 2, To: 3, Weight: -1},
		{From: 3, To: 1, Weight: 1},
		{From: 3, To: 4, Weight: 10}, // tail past the cycle
	})
	cycle, err := bellmanford.FindNegativeCycle(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	assertClosedWalk(t, g, cycle)
	for _, v := range cycle {
		if v == 0 || v == 4 {
			t.Fatalf("off-cycle vertex %d in cycle %v", v, cycle)
		}
	}
}

func TestFindNegativeCycle_UnreachableCycleNotFound(t *testing.T) {
	// Negative cycle 2⇄3 exists but is unreachable from source 0.
	g := mustGraph(t, 4, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 2, To: 3, Weight: -2},
		{From: 3, To: 2, Weight: 1},
	})
	ok, err := bellmanford.HasNegativeCycle(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("unreachable cycle should not be detected from source 0")
	}

	// From source 2 the same cycle is found.
	ok, err = bellmanford.HasNegativeCycle(g, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("cycle not detected from a source on the cycle")
	}
}

func TestFindNegativeCycle_SourceOnCycleComesFirst(t *testing.T) {
	// Source 0 is on the cycle; the returned walk must start and end
	// at 0 regardless of where predecessor extraction landed.
	g := mustGraph(t, 2, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 0, Weight: -2},
	})
	cycle, err := bellmanford.FindNegativeCycle(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if cycle[0] != 0 || cycle[len(cycle)-1] != 0 {
		t.Fatalf("cycle not rotated to source: %v", cycle)
	}
	assertClosedWalk(t, g, cycle)
}

func TestFindNegativeCycle_DenseCompetingCycles(t *testing.T) {
	// Two cycles share vertex 1; only one is negative overall.
	g := mustGraph(t, 4, []core.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 0, Weight: 1}, // cycle 0⇄1: +3
		{From: 1, To: 2, Weight: -4},
		{From: 2, To: 3, Weight: 1},
		{From: 3, To: 1, Weight: 1}, // cycle 1→2→3→1: −2
	})
	cycle, err := bellmanford.FindNegativeCycle(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	assertClosedWalk(t, g, cycle)
}
