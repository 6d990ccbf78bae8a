// Package bellmanford detects negative-weight cycles in directed,
// edge-weighted graphs via single-source Bellman–Ford relaxation.
//
// Bellman–Ford relaxes every edge |V|−1 times from a designated source
// vertex, tracking a predecessor for each vertex on its best-known
// path. If any edge can still be relaxed on one additional round, a
// negative-weight cycle is reachable from the source; walking the
// predecessor chain from the relaxed endpoint recovers one such cycle
// as an ordered, closed vertex sequence.
//
// Complexity:
//
//   - Time:  O(V · E)
//   - |V|−1 full passes over the edge list, plus one detection pass.
//   - Early exit when a pass relaxes nothing.
//   - Space: O(V)
//   - Distance and predecessor arrays indexed by vertex.
//
// Notes on implementation choices:
//
//   - Edges are relaxed in insertion order every round, so results are
//     deterministic for a given graph construction sequence.
//   - Only cycles reachable from the source are found; callers pick a
//     source touching the component they care about.
//   - When the source itself lies on the detected cycle, the returned
//     walk is rotated to begin and end at the source.
//   - An edgeless graph short-circuits to “no cycle”.
//
// Entry points:
//
//	cycle, err := bellmanford.FindNegativeCycle(g, 0)
//	ok, err   := bellmanford.HasNegativeCycle(g, 0)
//
// FindNegativeCycle reports absence of a cycle through the sentinel
// ErrNegativeCycleNotFound; match it with errors.Is.
package bellmanford
