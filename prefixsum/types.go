// Package prefixsum defines the element constraint and sentinel errors
// for the prefixsum subpackage of github.com/katalvlaran/rangekit.
package prefixsum

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for prefixsum queries.
var (
	// ErrInvalidRange indicates a query with l < 0 or l > r.
	ErrInvalidRange = errors.New("prefixsum: range bounds must satisfy 0 <= l <= r")
	// ErrOutOfBounds indicates a query whose right bound exceeds Size().
	ErrOutOfBounds = errors.New("prefixsum: range end exceeds number of elements")
)

// Number is the element constraint: any type closed under + and - whose
// zero value is the additive identity. Integers are exact; floats carry
// the usual rounding caveats; complex types are supported as-is.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// PrefixSum holds the cumulative array for O(1) range-sum queries.
// The zero value is ready to use and behaves as an empty, built sequence.
type PrefixSum[T Number] struct {
	// prefix has length n+1: prefix[0] = 0, prefix[i+1] = prefix[i] + values[i].
	prefix []T
}
