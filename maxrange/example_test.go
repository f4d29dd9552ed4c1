package maxrange_test

import (
	"fmt"

	"github.com/katalvlaran/pricekit/maxrange"
)

// ExampleMaxRange finds the best run of daily price changes.
func ExampleMaxRange() {
	changes := []float64{-2, 1, -3, 4, -1, 2, 1, -5, 4}

	r, err := maxrange.MaxRange(changes)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("sum=%v days=%d..%d len=%d\n", r.Sum, r.Start, r.End, r.Len())
	// Output:
	// sum=6 days=3..6 len=4
}
