package emg

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// DefaultEnvelopeWindow is the sliding RMS window used by the
// imbalance analysis (100 samples, 100 ms at the 1 kHz sEMG rate).
const DefaultEnvelopeWindow = 100

// ErrWindowTooLarge reports an envelope window that exceeds the
// signal length (or is not positive).
var ErrWindowTooLarge = errors.New("envelope window exceeds signal length")

// Envelope computes the sliding-window RMS envelope of signal into
// dst. The envelope has len(signal)-window+1 points; dst must have
// exactly that length.
func Envelope(dst, signal []float64, windowSize int) error {
	if windowSize < 1 || windowSize > len(signal) {
		return fmt.Errorf("%w: window %d, signal %d", ErrWindowTooLarge, windowSize, len(signal))
	}

	points := len(signal) - windowSize + 1
	if len(dst) != points {
		return fmt.Errorf("dst length %d, want %d", len(dst), points)
	}

	squared := make([]float64, len(signal))
	vecmath.MulBlock(squared, signal, signal)

	// Running sum over the window; recomputed in blocks to bound
	// floating-point drift on long windows.
	const rebuildEvery = 4096

	sum := 0.0
	for _, v := range squared[:windowSize] {
		sum += v
	}

	inv := 1 / float64(windowSize)
	for i := 0; i < points; i++ {
		if i > 0 {
			if i%rebuildEvery == 0 {
				sum = 0
				for _, v := range squared[i : i+windowSize] {
					sum += v
				}
			} else {
				sum += squared[i+windowSize-1] - squared[i-1]
			}
		}

		if sum < 0 {
			sum = 0
		}
		dst[i] = math.Sqrt(sum * inv)
	}

	return nil
}

// MeanEnvelope returns the average of the sliding-window RMS envelope,
// the scalar activation level used by the imbalance analysis.
func MeanEnvelope(signal []float64, windowSize int) (float64, error) {
	points := len(signal) - windowSize + 1
	if windowSize < 1 || points < 1 {
		return 0, fmt.Errorf("%w: window %d, signal %d", ErrWindowTooLarge, windowSize, len(signal))
	}

	env := make([]float64, points)
	if err := Envelope(env, signal, windowSize); err != nil {
		return 0, err
	}

	sum := 0.0
	for _, v := range env {
		sum += v
	}

	return sum / float64(points), nil
}
