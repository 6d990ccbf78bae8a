// Package exchange decides Pareto efficiency of fractional allocations
// and repairs inefficient ones with a single cycle-canceling step.
//
// The setting: players assign strictly positive values to divisible
// items (valuation matrix V, players × items) and currently hold
// fractions of them (allocation matrix A, same shape, entries in
// [0,1], each item fully distributed across its column).
//
// The reduction: for every ordered pair of players (i, j) where i
// holds something, add the directed edge i→j weighted by
//
//	w(i,j) = min over {k : A[i][k] ≠ 0} of ln(V[i][k] / V[j][k])
//
// and remember the minimizing item (the “critical item” — the item
// whose transfer from i to j is most favorable). A profitable trade
// cycle exists iff the product of value ratios around some cycle
// exceeds 1; under logarithms that is exactly a negative-weight cycle,
// so Pareto efficiency reduces to negative-cycle detection
// (bellmanford package).
//
// The repair: walk the detected cycle edge by edge. Across edge (u, v)
// with critical item m, transfer eps·V[v][m]/V[u][m] of item m from u
// to v, then rescale eps by V[u][m]/V[v][m] before the next hop. The
// local ratio pricing compounds the nominal step consistently around
// the cycle, extracting the cycle's surplus: item mass is conserved
// and aggregate utility strictly rises. One call applies one step;
// iterate to reach efficiency.
//
// Entry points:
//
//	ok, err := exchange.IsParetoEfficient(valuations, allocations)
//	ok, err := exchange.CheckAndImprove(valuations, allocations)
//	ok, err := exchange.CheckAndImprove(valuations, allocations,
//	    exchange.WithEpsilon(1e-4))
//
// CheckAndImprove mutates allocations in place; the caller owns the
// matrix exclusively for the duration of the call.
//
// Complexity:
//
//   - Graph construction: O(players² · items)
//   - Cycle detection:    O(players · edges)
//   - Improvement step:   O(cycle length)
//
// Errors (sentinel):
//
//   - ErrNoPlayers / ErrNoItems       — empty matrices.
//   - ErrShapeMismatch                — V and A disagree on dimensions,
//     or a row length differs from the item count.
//   - ErrNonPositiveValuation        — a valuation entry is ≤ 0 or not
//     finite; log-ratios would be undefined.
package exchange
