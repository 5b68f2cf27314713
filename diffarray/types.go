// Package diffarray defines the element constraint and sentinel errors
// for the diffarray subpackage of github.com/katalvlaran/rangekit.
package diffarray

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for diffarray operations.
var (
	// ErrNegativeSize indicates New or Reset was called with n < 0.
	ErrNegativeSize = errors.New("diffarray: size must be non-negative")
	// ErrInvalidRange indicates an update with l < 0 or l > r.
	ErrInvalidRange = errors.New("diffarray: range bounds must satisfy 0 <= l <= r")
	// ErrOutOfBounds indicates an update whose right bound exceeds Size().
	ErrOutOfBounds = errors.New("diffarray: range end exceeds declared size")
)

// Number is the element constraint: any type closed under + and - whose
// zero value is the additive identity.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// DiffArray accumulates range-add updates as paired point deltas.
// The zero value is a valid empty (Size()==0) structure.
type DiffArray[T Number] struct {
	// n is the declared logical size of the materialized sequence.
	n int
	// diff has length n+1; the last cell is the sentinel slot for
	// updates whose range ends exactly at n.
	diff []T
}
