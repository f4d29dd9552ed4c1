package synth_test

import (
	"fmt"

	"github.com/katalvlaran/pricekit/synth"
)

// ExampleBuildCloses generates a noiseless series with 1 % daily growth.
func ExampleBuildCloses() {
	closes, err := synth.BuildCloses(3, 0,
		synth.WithStart(100),
		synth.WithDrift(0.01),
		synth.WithVolatility(0))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, c := range closes {
		fmt.Printf("%.2f\n", c)
	}
	// Output:
	// 101.01
	// 102.02
	// 103.05
}
