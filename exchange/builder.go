package exchange

import (
	"fmt"
	"math"

	"github.com/fairdiv/paretoflow/core"
)

// Build constructs the exchange graph for the given valuation and
// allocation matrices.
//
// For every ordered pair of distinct players (i, j), the items i
// currently holds (A[i][k] ≠ 0) are scanned once: the minimum of
// ln(V[i][k]/V[j][k]) becomes the edge weight i→j and the first item
// achieving it becomes the critical item for that pair. Players
// holding nothing emit no outgoing edges.
//
// The same scan yields both the weight and the critical item, so the
// two can never disagree on tie-breaking.
//
// Complexity: O(players² · items) time, O(players²) edges worst case.
func Build(valuations, allocations [][]float64) (*Graph, error) {
	// 1) Validate shapes and the valuation domain.
	players, items, err := validate(valuations, allocations)
	if err != nil {
		return nil, err
	}

	// 2) Allocate the digraph over player indices.
	g, err := core.NewDigraph(players)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	out := &Graph{
		Digraph:       g,
		CriticalItems: make(map[core.Arc]int, players*(players-1)),
		FirstSource:   -1,
	}

	// 3) Emit edges pair by pair, rows in index order for determinism.
	var (
		i, j, k  int
		bestItem int
		bestW, w float64
	)
	for i = 0; i < players; i++ {
		for j = 0; j < players; j++ {
			if i == j {
				continue
			}

			// 3a) Scan the items i holds; track the minimum log-ratio
			//     and its first achieving index.
			bestItem = -1
			bestW = math.Inf(1)
			for k = 0; k < items; k++ {
				if allocations[i][k] == 0 {
					continue
				}
				w = math.Log(valuations[i][k] / valuations[j][k])
				if w < bestW {
					bestW = w
					bestItem = k
				}
			}

			// 3b) Nothing held means nothing to offer: no edge i→j.
			if bestItem < 0 {
				continue
			}

			// 3c) Record the edge and its critical item.
			if err = g.AddEdge(i, j, bestW); err != nil {
				return nil, fmt.Errorf("Build: edge %d→%d: %w", i, j, err)
			}
			out.CriticalItems[core.Arc{From: i, To: j}] = bestItem
			if out.FirstSource < 0 {
				out.FirstSource = i
			}
		}
	}

	return out, nil
}

// validate checks the two-matrix input contract shared by all entry
// points and returns the common dimensions.
//
// Order: emptiness, shape agreement (including ragged rows), then
// valuation positivity. Allocation column sums and the [0,1] range are
// the caller's contract and are not enforced here.
func validate(valuations, allocations [][]float64) (players, items int, err error) {
	players = len(valuations)
	if players == 0 {
		return 0, 0, ErrNoPlayers
	}
	items = len(valuations[0])
	if items == 0 {
		return 0, 0, ErrNoItems
	}
	if len(allocations) != players {
		return 0, 0, fmt.Errorf("validate: %d valuation rows vs %d allocation rows: %w",
			players, len(allocations), ErrShapeMismatch)
	}

	for i := 0; i < players; i++ {
		if len(valuations[i]) != items {
			return 0, 0, fmt.Errorf("validate: valuation row %d has %d items, want %d: %w",
				i, len(valuations[i]), items, ErrShapeMismatch)
		}
		if len(allocations[i]) != items {
			return 0, 0, fmt.Errorf("validate: allocation row %d has %d items, want %d: %w",
				i, len(allocations[i]), items, ErrShapeMismatch)
		}
		for k := 0; k < items; k++ {
			if v := valuations[i][k]; !(v > 0) || math.IsInf(v, 1) {
				return 0, 0, fmt.Errorf("validate: valuations[%d][%d]=%v: %w",
					i, k, v, ErrNonPositiveValuation)
			}
		}
	}

	return players, items, nil
}
