package prefixsum

// New constructs a PrefixSum and builds it from values in one O(n) pass.
// A nil or empty input is valid and yields an empty (Size()==0) structure.
func New[T Number](values []T) *PrefixSum[T] {
	ps := &PrefixSum[T]{}
	ps.Build(values)

	return ps
}

// Build (re)computes the cumulative array from values, fully replacing
// any previous contents. The input is read once and never retained, so
// callers may mutate it afterwards.
// Complexity: O(n) time and memory.
func (ps *PrefixSum[T]) Build(values []T) {
	prefix := make([]T, len(values)+1)
	for i, v := range values {
		prefix[i+1] = prefix[i] + v
	}
	ps.prefix = prefix
}

// RangeSum returns the sum of the original elements in the half-open
// interval [l, r). RangeSum(i, i) is the additive zero for any valid i.
// Returns ErrInvalidRange if l < 0 or l > r, ErrOutOfBounds if r > Size().
// Complexity: O(1).
func (ps *PrefixSum[T]) RangeSum(l, r int) (T, error) {
	var zero T
	if l < 0 || l > r {
		return zero, ErrInvalidRange
	}
	if r > ps.Size() {
		return zero, ErrOutOfBounds
	}
	// Zero-value structure: the only query passing validation is (0, 0).
	if len(ps.prefix) == 0 {
		return zero, nil
	}

	return ps.prefix[r] - ps.prefix[l], nil
}

// Total returns the sum of all built elements, zero when empty.
// Equivalent to RangeSum(0, Size()) without the error path.
// Complexity: O(1).
func (ps *PrefixSum[T]) Total() T {
	if len(ps.prefix) == 0 {
		var zero T
		return zero
	}

	return ps.prefix[len(ps.prefix)-1]
}

// Size returns the number of original elements, 0 for an unbuilt or
// empty structure.
// Complexity: O(1).
func (ps *PrefixSum[T]) Size() int {
	if len(ps.prefix) == 0 {
		return 0
	}

	return len(ps.prefix) - 1
}

// Prefix returns a copy of the internal cumulative array of length
// Size()+1, with Prefix()[0] == 0. A copy is returned so callers cannot
// violate the build invariant.
// Complexity: O(n).
func (ps *PrefixSum[T]) Prefix() []T {
	if len(ps.prefix) == 0 {
		return []T{0}
	}
	out := make([]T, len(ps.prefix))
	copy(out, ps.prefix)

	return out
}
