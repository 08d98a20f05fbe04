// Package window generates taper windows for spectral segmenting.
package window

import "math"

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
)

// String returns the window name.
func (t Type) String() string {
	switch t {
	case TypeHann:
		return "Hann"
	case TypeHamming:
		return "Hamming"
	default:
		return "Rectangular"
	}
}

// Generate returns the periodic form of the window, suitable for
// power-spectral framing.
func Generate(t Type, size int) []float64 {
	if size <= 0 {
		return nil
	}

	out := make([]float64, size)

	switch t {
	case TypeHann:
		for i := range out {
			out[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(size)))
		}
	case TypeHamming:
		for i := range out {
			out[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(size))
		}
	default:
		for i := range out {
			out[i] = 1
		}
	}

	return out
}

// CoherentGain is sum(w[n]) / N, the DC response of the window.
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs))
}

// SumSquares returns sum(w[n]^2), the power normalization term for
// windowed periodograms.
func SumSquares(coeffs []float64) float64 {
	sum := 0.0
	for _, c := range coeffs {
		sum += c * c
	}

	return sum
}
