// Package prefixsum answers arbitrary range-sum queries over a fixed
// numeric sequence in O(1), after a single O(n) build pass.
//
// What:
//
//   - PrefixSum[T] wraps an input sequence with a cumulative array p of
//     length n+1, where p[0] = 0 and p[i+1] = p[i] + values[i].
//   - RangeSum(l, r) returns p[r] - p[l], the sum over the half-open
//     interval [l, r) of the original sequence.
//   - Works with any integer, float or complex element type (see Number).
//
// Why:
//
//   - Analytics: rolling totals over sales, traffic, or sensor windows.
//   - Competitive programming: the canonical O(1) range-sum trick.
//   - Precomputation stage for sliding-window and histogram algorithms.
//
// Complexity:
//
//   - Build:    O(n) time, O(n) memory.
//   - RangeSum: O(1) time.
//   - Size, Total: O(1); Prefix: O(n) (defensive copy).
//
// Errors:
//
//   - ErrInvalidRange: l < 0 or l > r.
//   - ErrOutOfBounds: r exceeds the number of built elements.
//
// Concurrency: a PrefixSum is not synchronized. Concurrent reads are safe
// once built; interleaving Build with any other call requires external
// locking.
//
// Floating-point note: sums are exact for integer types; for floats the
// usual associativity caveats apply, since p[r]-p[l] regroups additions.
//
// See examples in example_test.go.
package prefixsum
