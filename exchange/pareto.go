package exchange

import (
	"errors"
	"fmt"

	"github.com/fairdiv/paretoflow/bellmanford"
	"github.com/fairdiv/paretoflow/core"
)

// IsParetoEfficient reports whether the allocation admits no
// profitable trade cycle. It never mutates its inputs.
//
// Efficiency holds exactly when the exchange graph has no
// negative-weight cycle; an edgeless graph (single player, or nothing
// allocated) is trivially efficient.
func IsParetoEfficient(valuations, allocations [][]float64) (bool, error) {
	g, err := Build(valuations, allocations)
	if err != nil {
		return false, err
	}

	if !g.Digraph.HasEdges() {
		return true, nil
	}

	found, err := bellmanford.HasNegativeCycle(g.Digraph, g.FirstSource)
	if err != nil {
		return false, fmt.Errorf("IsParetoEfficient: %w", err)
	}

	return !found, nil
}

// CheckAndImprove either confirms efficiency or applies one
// cycle-canceling step to allocations in place.
//
// Returns (true, nil) when the allocation is already Pareto efficient;
// allocations is then untouched. Returns (false, nil) after mutating
// allocations along one detected profitable cycle: aggregate utility
// strictly rises and per-item totals are conserved. One call performs
// at most one step; repeat until the first true to reach an efficient
// allocation.
//
// The caller owns allocations exclusively for the duration of the
// call (no concurrent reader or writer of the same matrix).
func CheckAndImprove(valuations, allocations [][]float64, opts ...Option) (bool, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Build the exchange graph and its critical-item map.
	g, err := Build(valuations, allocations)
	if err != nil {
		return false, err
	}
	if !g.Digraph.HasEdges() {
		return true, nil
	}

	// 3) Look for a profitable cycle from the first edge's source.
	cycle, err := bellmanford.FindNegativeCycle(g.Digraph, g.FirstSource)
	if errors.Is(err, bellmanford.ErrNegativeCycleNotFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("CheckAndImprove: %w", err)
	}

	// 4) Cancel the cycle: across each edge (u, v) trade a sliver of
	//    the critical item at the local value ratio, compounding the
	//    step size so each hop stays beneficial to both endpoints.
	eps := cfg.Epsilon
	var u, v, item int
	var delta float64
	for i := 0; i+1 < len(cycle); i++ {
		u, v = cycle[i], cycle[i+1]
		item = g.CriticalItems[core.Arc{From: u, To: v}]

		delta = eps * valuations[v][item] / valuations[u][item]
		allocations[v][item] += delta
		allocations[u][item] -= delta

		eps *= valuations[u][item] / valuations[v][item]
	}

	return false, nil
}
