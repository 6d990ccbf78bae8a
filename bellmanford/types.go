// Package bellmanford: sentinel errors for negative-cycle detection.
package bellmanford

import "errors"

// Sentinel errors returned by the Bellman–Ford implementation.
var (
	// ErrNilGraph indicates that a nil *core.Digraph was passed in.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrSourceOutOfRange indicates that the source vertex index is not
	// within 0..VertexCount()-1.
	ErrSourceOutOfRange = errors.New("bellmanford: source vertex out of range")

	// ErrNegativeCycleNotFound indicates that no negative-weight cycle
	// is reachable from the source. It is a detection outcome, not a
	// failure; callers that only need the boolean use HasNegativeCycle.
	ErrNegativeCycleNotFound = errors.New("bellmanford: no negative cycle reachable from source")
)
