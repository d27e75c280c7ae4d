package sampler_test

import (
	"testing"

	"github.com/katalvlaran/mchain/sampler"
)

// benchCum builds a uniform cumulative row over n states.
func benchCum(n int) []float64 {
	cum := make([]float64, n)
	for i := range cum {
		cum[i] = float64(i+1) / float64(n)
	}

	return cum
}

// BenchmarkIndex_LinearScan exercises the short-row path.
func BenchmarkIndex_LinearScan(b *testing.B) {
	cum := benchCum(16)
	s := sampler.NewSeeded(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Index(cum)
	}
}

// BenchmarkIndex_BinarySearch exercises the long-row path.
func BenchmarkIndex_BinarySearch(b *testing.B) {
	cum := benchCum(4096)
	s := sampler.NewSeeded(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Index(cum)
	}
}

// BenchmarkExpTime measures the holding-time draw.
func BenchmarkExpTime(b *testing.B) {
	s := sampler.NewSeeded(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.ExpTime(2.5)
	}
}
