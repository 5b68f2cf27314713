package prefixsum_test

import (
	"fmt"

	"github.com/katalvlaran/rangekit/prefixsum"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNew
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Build once over daily sales figures, then answer several window
//	queries in O(1) each.
//
// Use case:
//
//	Dashboard totals over arbitrary date ranges without rescanning.
//
// Complexity: O(n) build, O(1) per query.
func ExampleNew() {
	sales := []int{10, 20, 30, 40, 50}
	ps := prefixsum.New(sales)

	full, _ := ps.RangeSum(0, 5)
	mid, _ := ps.RangeSum(1, 4)
	one, _ := ps.RangeSum(2, 3)

	fmt.Printf("sum[0,5)=%d\nsum[1,4)=%d\nsum[2,3)=%d\n", full, mid, one)
	// Output:
	// sum[0,5)=150
	// sum[1,4)=90
	// sum[2,3)=30
}

// ExamplePrefixSum_Prefix shows the raw cumulative array, handy for
// serialization or debugging.
func ExamplePrefixSum_Prefix() {
	ps := prefixsum.New([]int{1, 2, 3, 4, 5})

	fmt.Println(ps.Prefix())
	// Output:
	// [0 1 3 6 10 15]
}

// ExamplePrefixSum_RangeSum demonstrates the empty-range identity and
// float elements.
func ExamplePrefixSum_RangeSum() {
	ps := prefixsum.New([]float64{0.5, 1.5, 2.5})

	empty, _ := ps.RangeSum(1, 1)
	tail, _ := ps.RangeSum(1, 3)

	fmt.Printf("empty=%.1f tail=%.1f total=%.1f\n", empty, tail, ps.Total())
	// Output:
	// empty=0.0 tail=4.0 total=4.5
}
