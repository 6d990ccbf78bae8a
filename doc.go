// Package paretoflow checks fractional allocations of divisible items
// for Pareto efficiency and repairs inefficient ones by cycle canceling.
//
// 🚀 What is paretoflow?
//
//	A small, self-contained library that reduces an economic optimality
//	question to classical graph machinery:
//	  • Build a weighted exchange digraph from valuations & holdings
//	  • A profitable trade cycle ⇔ a negative-weight cycle (log-ratio trick)
//	  • Detect it with Bellman–Ford, cancel it by shifting item slivers
//
// ✨ Why choose paretoflow?
//
//   - Pure functions – every call is self-contained, no shared state
//   - Explicit errors – sentinel errors, matched via errors.Is
//   - Deterministic – fixed iteration order, first-index tie-breaking
//
// Under the hood, everything is organized in four subpackages:
//
//	core/        — directed weighted digraph over integer player indices
//	bellmanford/ — single-source negative-cycle detection
//	exchange/    — exchange-graph builder, efficiency check, cycle improver
//	matrix/      — dense float64 matrices + Floyd–Warshall (ground truth)
//
// Quick sketch for two players and two items:
//
//	V = ⎡50   1⎤   A = ⎡0 1⎤    each holds the item the OTHER wants;
//	    ⎣ 1 100⎦       ⎣1 0⎦    the 0⇄1 trade cycle has negative log-weight,
//	                            so the allocation is not Pareto efficient.
//
// See exchange.IsParetoEfficient and exchange.CheckAndImprove for the
// two entry points, and cmd/paretocli for a JSON command-line front end.
//
//	go get github.com/fairdiv/paretoflow
package paretoflow
