// Package diffarray applies range-add updates to a numeric sequence in
// O(1) each, deferring all the work to a single O(n) materialization pass.
//
// What:
//
//   - DiffArray[T] maintains a delta array of length n+1: RangeAdd(l, r, v)
//     records diff[l] += v and diff[r] -= v, touching exactly two cells
//     regardless of how wide [l, r) is. The extra slot at index n is a
//     sentinel so ranges ending at n need no special case.
//   - Build() runs the deltas through one cumulative pass and returns the
//     final sequence; it never mutates the structure and may be called
//     repeatedly.
//   - Works with any integer, float or complex element type (see Number).
//
// Why:
//
//   - Batch editing: apply thousands of overlapping range increments,
//     pay the linear cost once.
//   - Scheduling and load counting: +1 over each busy interval, Build()
//     yields per-slot occupancy.
//   - The write-side dual of package prefixsum.
//
// Complexity:
//
//   - RangeAdd, Add:  O(1) time.
//   - Build:          O(n) time and memory (fresh output slice).
//   - Reset:          O(n) time; Size: O(1); Diff: O(n) (defensive copy).
//
// Errors:
//
//   - ErrNegativeSize: New or Reset called with n < 0.
//   - ErrInvalidRange: update with l < 0 or l > r.
//   - ErrOutOfBounds: update whose right bound exceeds Size().
//
// Concurrency: a DiffArray is not synchronized; callers interleaving
// RangeAdd with Build from multiple goroutines need external locking.
//
// See examples in example_test.go.
package diffarray
