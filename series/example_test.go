package series_test

import (
	"fmt"

	"github.com/katalvlaran/pricekit/series"
)

// ExampleAnomalies flags prices more than ten points away from the average.
func ExampleAnomalies() {
	prices := []float64{38, 27, 43, 3, 9, 82, 10}

	anomalies, err := series.Anomalies(prices, series.DefaultThreshold())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, a := range anomalies {
		fmt.Printf("day %d: %v (%+.1f)\n", a.Index, a.Value, a.Deviation)
	}
	// Output:
	// day 2: 43 (+12.7)
	// day 3: 3 (-27.3)
	// day 4: 9 (-21.3)
	// day 5: 82 (+51.7)
	// day 6: 10 (-20.3)
}
