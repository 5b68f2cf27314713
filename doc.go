// Package rangekit is a tiny toolbox for O(1) range arithmetic over
// one-dimensional numeric sequences.
//
// 🚀 What is rangekit?
//
//	A pure-Go, generic library that packages the two classic tricks for
//	trading one linear pass for constant-time range operations:
//		• prefixsum — build once in O(n), answer any range-sum query in O(1)
//		• diffarray — record any range-add update in O(1), materialize in O(n)
//
// ✨ Why choose rangekit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Generic – works with any integer, float or complex element type
//   - Pure Go – no cgo, no hidden machinery
//   - Predictable – explicit sentinel errors, no panics on bad ranges
//
// The two structures are exact duals:
//
//	prefixsum: point values fixed up front   → arbitrary range READS in O(1)
//	diffarray: arbitrary range WRITES in O(1) → point values read at the end
//
// Quick ASCII example:
//
//	values:  [1  2  3  4  5]
//	prefix:  [0  1  3  6 10 15]     RangeSum(1,3) = prefix[3]-prefix[1] = 5
//
//	RangeAdd(1,4,+3) on size 5:
//	diff:    [0 +3  0  0 -3  0]     Build() = [0 3 3 3 0]
//
// Dive into each package's doc.go and example_test.go for full scenarios,
// and into examples/ for runnable end-to-end programs.
//
//	go get github.com/katalvlaran/rangekit
package rangekit
