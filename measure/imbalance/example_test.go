package imbalance_test

import (
	"fmt"

	"github.com/injsense/biosig/measure/imbalance"
)

func ExampleAnalyze() {
	left := make([]float64, 200)
	right := make([]float64, 200)
	for i := range left {
		left[i] = 2.0
		right[i] = 1.0
	}

	pct, err := imbalance.Analyze(left, right, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("imbalance=%.1f%%\n", pct)
	// Output:
	// imbalance=33.3%
}
