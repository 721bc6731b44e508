package field_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/field"
	"github.com/katalvlaran/gridpath/gridmap"
)

// BenchmarkWavefront measures the layered build on a 500×500 open grid.
// Complexity: O(W×H×8)
func BenchmarkWavefront(b *testing.B) {
	g := openGrid(b, 500)
	dest := gridmap.Cell{Row: 250, Col: 250}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = field.Build(g, dest, field.Wavefront)
	}
}

// BenchmarkExact measures the heap-based build on the same grid.
// Complexity: O(W×H×8·log(W×H))
func BenchmarkExact(b *testing.B) {
	g := openGrid(b, 500)
	dest := gridmap.Cell{Row: 250, Col: 250}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = field.Build(g, dest, field.Exact)
	}
}
