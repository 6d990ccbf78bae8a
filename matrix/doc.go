// SPDX-License-Identifier: MIT

// Package matrix provides a dense row-major float64 matrix and an
// in-place Floyd–Warshall all-pairs shortest-path closure.
//
// The closure is the independent ground truth for negative-cycle
// questions: run FloydWarshall on a distance matrix (0 diagonal, +Inf
// for “no edge”) and a negative diagonal entry afterwards certifies a
// negative-weight cycle through that vertex. The exchange package's
// tests cross-check Bellman–Ford against it.
//
// Conventions:
//
//   - Row-major flat backing buffer, deterministic k→i→j loop order.
//   - +Inf means “no path”; NaN is rejected at Set/Fill time.
//   - Negative weights are allowed (log-ratio distances).
//
// Complexity: FloydWarshall is O(n³) time, O(1) extra space.
package matrix
