// Package temperature analyzes skin-temperature windows for
// abnormality: elevated readings or high variation flag a possible
// inflammatory response.
package temperature

import (
	"fmt"
	"math"

	"github.com/injsense/biosig/feature"
)

// Abnormality thresholds in degrees Celsius.
const (
	MaxStdDev = 0.5
	MaxTemp   = 38.0
)

// Analysis holds the aggregate statistics of one temperature window.
type Analysis struct {
	Average  float64
	Max      float64
	Min      float64
	StdDev   float64 // population standard deviation
	Abnormal bool
}

// Analyze computes the window aggregates. The window must contain at
// least one finite sample.
func Analyze(temps []float64) (Analysis, error) {
	if len(temps) == 0 {
		return Analysis{}, fmt.Errorf("%w: empty temperature window", feature.ErrInsufficientSamples)
	}

	var (
		sum    float64
		maxVal = temps[0]
		minVal = temps[0]
	)

	for _, v := range temps {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Analysis{}, fmt.Errorf("non-finite temperature sample %v", v)
		}

		sum += v
		if v > maxVal {
			maxVal = v
		}
		if v < minVal {
			minVal = v
		}
	}

	mean := sum / float64(len(temps))

	varSum := 0.0
	for _, v := range temps {
		d := v - mean
		varSum += d * d
	}
	std := math.Sqrt(varSum / float64(len(temps)))

	return Analysis{
		Average:  mean,
		Max:      maxVal,
		Min:      minVal,
		StdDev:   std,
		Abnormal: std > MaxStdDev || maxVal > MaxTemp,
	}, nil
}
