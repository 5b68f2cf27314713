package diffarray

// New constructs a DiffArray of logical size n with all deltas zero.
// Returns ErrNegativeSize when n < 0; n == 0 is valid.
// Complexity: O(n).
func New[T Number](n int) (*DiffArray[T], error) {
	d := &DiffArray[T]{}
	if err := d.Reset(n); err != nil {
		return nil, err
	}

	return d, nil
}

// Reset reinitializes the structure to logical size n, discarding every
// recorded update. Returns ErrNegativeSize when n < 0.
// Complexity: O(n).
func (d *DiffArray[T]) Reset(n int) error {
	if n < 0 {
		return ErrNegativeSize
	}
	d.n = n
	d.diff = make([]T, n+1)

	return nil
}

// RangeAdd applies delta to every logical index in the half-open
// interval [l, r) by touching exactly two delta cells; r may equal
// Size(), landing the subtraction on the sentinel slot.
// Returns ErrInvalidRange if l < 0 or l > r, ErrOutOfBounds if r > Size().
// Complexity: O(1).
func (d *DiffArray[T]) RangeAdd(l, r int, delta T) error {
	if l < 0 || l > r {
		return ErrInvalidRange
	}
	if r > d.n {
		return ErrOutOfBounds
	}
	// Zero-value structure: diff may be nil, but then n == 0 forces
	// l == r == 0 and the update is a no-op.
	if l == r {
		return nil
	}
	d.diff[l] += delta
	d.diff[r] -= delta

	return nil
}

// Add applies delta to the single logical index i; sugar for
// RangeAdd(i, i+1, delta).
// Complexity: O(1).
func (d *DiffArray[T]) Add(i int, delta T) error {
	return d.RangeAdd(i, i+1, delta)
}

// Build materializes the final sequence of length Size() as the running
// sum of deltas: out[i] = out[i-1] + diff[i]. Build is a pure read — it
// never mutates the structure, and repeated calls without intervening
// updates return identical results.
// Complexity: O(n) time and memory.
func (d *DiffArray[T]) Build() []T {
	out := make([]T, d.n)
	var cur T
	for i := 0; i < d.n; i++ {
		cur += d.diff[i]
		out[i] = cur
	}

	return out
}

// Size returns the declared logical size n.
// Complexity: O(1).
func (d *DiffArray[T]) Size() int {
	return d.n
}

// Diff returns a copy of the raw delta array of length Size()+1,
// including the sentinel slot. A copy is returned so callers cannot
// bypass RangeAdd.
// Complexity: O(n).
func (d *DiffArray[T]) Diff() []T {
	if d.diff == nil {
		return []T{0}
	}
	out := make([]T, len(d.diff))
	copy(out, d.diff)

	return out
}
