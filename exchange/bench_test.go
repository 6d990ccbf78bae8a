package exchange_test

import (
	"math/rand"
	"testing"

	"github.com/fairdiv/paretoflow/exchange"
)

// benchInstance draws one players×items instance with a fixed seed so
// timings are comparable across runs.
func benchInstance(b *testing.B, players, items int) (valuations, allocations [][]float64) {
	b.Helper()

	rng := rand.New(rand.NewSource(1))
	valuations = make([][]float64, players)
	allocations = make([][]float64, players)
	for i := 0; i < players; i++ {
		valuations[i] = make([]float64, items)
		allocations[i] = make([]float64, items)
		for k := 0; k < items; k++ {
			valuations[i][k] = 1 + 99*rng.Float64()
		}
	}
	for k := 0; k < items; k++ {
		// Split each item's unit evenly over two random players.
		a, c := rng.Intn(players), rng.Intn(players)
		allocations[a][k] += 0.5
		allocations[c][k] += 0.5
	}

	return valuations, allocations
}

func BenchmarkIsParetoEfficient_10x10(b *testing.B) {
	valuations, allocations := benchInstance(b, 10, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := exchange.IsParetoEfficient(valuations, allocations); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIsParetoEfficient_50x50(b *testing.B) {
	valuations, allocations := benchInstance(b, 50, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := exchange.IsParetoEfficient(valuations, allocations); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuild_50x50(b *testing.B) {
	valuations, allocations := benchInstance(b, 50, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := exchange.Build(valuations, allocations); err != nil {
			b.Fatal(err)
		}
	}
}
