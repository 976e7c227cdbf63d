package resolve_test

import (
	"testing"

	"github.com/veltran/lexorder/alphabet"
	"github.com/veltran/lexorder/precedence"
	"github.com/veltran/lexorder/resolve"
)

// BenchmarkOrder_Chain1000 measures resolution of a linear constraint chain
// over a 1000-symbol universe: s0 → s1 → ... → s999.
// Graph construction happens once; each iteration resolves the same graph
// with fresh per-call traversal state.
//
// Complexity: each Order call is O(V + E) ≈ O(2V) with V=1000.
func BenchmarkOrder_Chain1000(b *testing.B) {
	// 1. Build a 1000-symbol universe from distinct code points.
	symbols := make([]rune, 1000)
	for i := range symbols {
		symbols[i] = rune('0' + i)
	}
	a, err := alphabet.New(symbols)
	if err != nil {
		b.Fatalf("alphabet.New: %v", err)
	}

	// 2. Chain every symbol to its successor.
	g := precedence.NewGraph(a)
	for i := 0; i+1 < len(symbols); i++ {
		g.AddConstraint(symbols[i], symbols[i+1])
	}

	// 3. Resolve repeatedly; construction time is excluded.
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = resolve.Order(g); err != nil {
			b.Fatalf("Order: %v", err)
		}
	}
}
