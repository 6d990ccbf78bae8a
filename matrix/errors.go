// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set. Algorithms return these
// sentinels (wrapped with context where useful) and tests match them
// via errors.Is; no panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrNilMatrix indicates a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0 or cols <= 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside bounds.
	// Public indexers (At/Set) return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands (e.g. Fill with a buffer of the wrong length).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaN signals a NaN value where the numeric policy requires a
	// real or +Inf entry.
	ErrNaN = errors.New("matrix: NaN encountered")
)
