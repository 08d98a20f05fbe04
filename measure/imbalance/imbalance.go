// Package imbalance quantifies left/right activation asymmetry from
// paired sEMG channels. Persistent asymmetry is a known injury
// precursor.
package imbalance

import (
	"fmt"

	"github.com/injsense/biosig/feature"
	"github.com/injsense/biosig/stats/emg"
)

// Analyze returns the imbalance percentage in [0, 100] between the
// left and right filtered sEMG windows:
//
//	100 * |L - R| / (L + R)
//
// where L and R are the mean RMS envelopes of each side. Returns 0
// when both sides are silent. The result is non-negative and
// symmetric in magnitude under a left/right swap.
func Analyze(left, right []float64, rmsWindow int) (float64, error) {
	if rmsWindow <= 0 {
		rmsWindow = emg.DefaultEnvelopeWindow
	}

	l, err := emg.MeanEnvelope(left, rmsWindow)
	if err != nil {
		return 0, fmt.Errorf("%w: left side: %w", feature.ErrInsufficientSamples, err)
	}

	r, err := emg.MeanEnvelope(right, rmsWindow)
	if err != nil {
		return 0, fmt.Errorf("%w: right side: %w", feature.ErrInsufficientSamples, err)
	}

	total := l + r
	if total <= 0 {
		return 0, nil
	}

	diff := l - r
	if diff < 0 {
		diff = -diff
	}

	return 100 * diff / total, nil
}
