// Package exchange: sentinel errors, options and the exchange-graph
// type shared by builder and improver.
package exchange

import (
	"errors"

	"github.com/fairdiv/paretoflow/core"
)

// DefaultEpsilon is the nominal share of the first critical item moved
// across the first cycle edge. The value is a heuristic step size, not
// a derived bound; tune it with WithEpsilon when allocations carry
// very small positive fractions.
const DefaultEpsilon = 0.001

// Sentinel errors returned by Build, IsParetoEfficient and
// CheckAndImprove.
var (
	// ErrNoPlayers indicates an empty valuation matrix.
	ErrNoPlayers = errors.New("exchange: no players")

	// ErrNoItems indicates a valuation matrix with zero-length rows.
	ErrNoItems = errors.New("exchange: no items")

	// ErrShapeMismatch indicates that valuations and allocations have
	// different dimensions, or that a row length differs from the item
	// count of the first row.
	ErrShapeMismatch = errors.New("exchange: valuations and allocations must share dimensions")

	// ErrNonPositiveValuation indicates a valuation entry that is zero,
	// negative or non-finite; the log-ratio weighting is undefined on it.
	ErrNonPositiveValuation = errors.New("exchange: valuation entries must be positive and finite")

	// ErrBadEpsilon indicates a non-positive or non-finite step size
	// passed to WithEpsilon.
	ErrBadEpsilon = errors.New("exchange: epsilon must be positive and finite")
)

// Graph is the exchange graph of one (valuations, allocations) pair:
// the weighted trade digraph plus per-edge metadata.
//
// CriticalItems maps each ordered player pair carrying an edge to the
// item achieving the minimum log-value-ratio (first index on ties).
// FirstSource is the source vertex of the first edge emitted during
// construction; cycle detection starts there. It is -1 for an
// edgeless graph.
type Graph struct {
	Digraph       *core.Digraph
	CriticalItems map[core.Arc]int
	FirstSource   int
}

// Options configures the improvement step.
//
// Epsilon – nominal fraction of the first critical item traded across
// the first cycle edge; rescaled multiplicatively along the cycle.
type Options struct {
	Epsilon float64
}

// Option is a functional option for CheckAndImprove.
type Option func(*Options)

// WithEpsilon overrides the nominal step size. Must lie in (0, 1];
// anything else panics with ErrBadEpsilon (programmer error, caught at
// configuration time like the rest of the option surface).
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0) || eps > 1 {
			panic(ErrBadEpsilon.Error())
		}
		o.Epsilon = eps
	}
}

// DefaultOptions returns the improvement defaults: Epsilon = 0.001.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}
