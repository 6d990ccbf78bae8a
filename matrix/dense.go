// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Dense is a row-major float64 matrix with a flat backing buffer.
// Entry (i, j) lives at data[i*c+j]. +Inf is a legal entry (the “no
// path” marker for distance matrices); NaN is rejected on write.
type Dense struct {
	r, c int
	data []float64
}

// NewDense allocates an r×c zero matrix.
func NewDense(r, c int) (*Dense, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", r, c, ErrBadShape)
	}

	return &Dense{r: r, c: c, data: make([]float64, r*c)}, nil
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.c }

// At returns entry (i, j).
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return 0, fmt.Errorf("At(%d,%d) on %dx%d: %w", i, j, d.r, d.c, ErrOutOfRange)
	}

	return d.data[i*d.c+j], nil
}

// Set writes entry (i, j). NaN is rejected; ±Inf is accepted.
func (d *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return fmt.Errorf("Set(%d,%d) on %dx%d: %w", i, j, d.r, d.c, ErrOutOfRange)
	}
	if math.IsNaN(v) {
		return fmt.Errorf("Set(%d,%d): %w", i, j, ErrNaN)
	}
	d.data[i*d.c+j] = v

	return nil
}

// Fill replaces the whole matrix with a row-major buffer of exactly
// r·c entries. NaN entries are rejected before any write happens.
func (d *Dense) Fill(rowMajor []float64) error {
	if len(rowMajor) != d.r*d.c {
		return fmt.Errorf("Fill: got %d values, want %d: %w", len(rowMajor), d.r*d.c, ErrDimensionMismatch)
	}
	for idx, v := range rowMajor {
		if math.IsNaN(v) {
			return fmt.Errorf("Fill: value %d: %w", idx, ErrNaN)
		}
	}
	copy(d.data, rowMajor)

	return nil
}
