package prefixsum_test

import (
	"testing"

	"github.com/katalvlaran/rangekit/prefixsum"
)

// makeSequence returns a deterministic []int64 of length n for benchmarks.
func makeSequence(n int) []int64 {
	v := make([]int64, n)
	for i := range v {
		v[i] = int64(i%97 - 48) // mixed signs, predictable values
	}

	return v
}

// benchmarkBuild measures a full Build over n elements per iteration.
func benchmarkBuild(b *testing.B, n int) {
	v := makeSequence(n)
	var ps prefixsum.PrefixSum[int64]

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		ps.Build(v)
	}
}

// BenchmarkBuild_Small benchmarks building over 1,000 elements.
func BenchmarkBuild_Small(b *testing.B) {
	benchmarkBuild(b, 1_000)
}

// BenchmarkBuild_Large benchmarks building over 1,000,000 elements.
func BenchmarkBuild_Large(b *testing.B) {
	benchmarkBuild(b, 1_000_000)
}

// BenchmarkRangeSum measures the O(1) query path on a prebuilt structure.
func BenchmarkRangeSum(b *testing.B) {
	ps := prefixsum.New(makeSequence(1_000_000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ps.RangeSum(i%500_000, 500_000+i%500_000); err != nil {
			b.Fatalf("RangeSum failed: %v", err)
		}
	}
}
