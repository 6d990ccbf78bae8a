// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) closure with deterministic
//     loop order; in-place, O(n³) time, O(1) extra space.
//
// Contract:
//   - Square matrix; +Inf means “no path”; diagonal must be 0 before
//     calling. Negative weights are fine; a negative diagonal entry
//     after the closure certifies a negative cycle through that vertex.

package matrix

import (
	"fmt"
	"math"
)

// FloydWarshall computes the all-pairs shortest-path closure of m
// in-place.
//
// Determinism: fixed k→i→j loop order with strict-improvement
// relaxation, so accumulation order is stable across runs.
func FloydWarshall(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c {
		return fmt.Errorf("FloydWarshall: non-square %dx%d: %w", m.r, m.c, ErrNonSquare)
	}

	n := m.r
	data := m.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue // i cannot reach k; no path via k improves i→j
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}

// HasNegativeDiagonal reports whether any diagonal entry of a closed
// distance matrix is negative, i.e. whether some vertex lies on a
// negative-weight cycle. Call after FloydWarshall.
func HasNegativeDiagonal(m *Dense) (bool, error) {
	if m == nil {
		return false, ErrNilMatrix
	}
	if m.r != m.c {
		return false, fmt.Errorf("HasNegativeDiagonal: non-square %dx%d: %w", m.r, m.c, ErrNonSquare)
	}

	for i := 0; i < m.r; i++ {
		if m.data[i*m.c+i] < 0 {
			return true, nil
		}
	}

	return false, nil
}
