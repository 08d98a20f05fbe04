// Package feature defines the signal windows and feature vectors of
// the risk pipeline.
//
// Two distinct vector spaces live here and must not be conflated: the
// low-level window features extracted from raw signals (per-channel
// EMG statistics plus heart-rate and temperature aggregates, used for
// exploratory feature engineering) and the fixed classifier schema
// consumed by the risk model. No implicit conversion exists between
// them.
package feature

import (
	"fmt"

	"github.com/injsense/biosig/dsp/core"
)

// SignalWindow is one acquisition interval of a uniformly sampled
// signal: Samples[i][c] is sample i of channel c. Windows are created
// per interval, consumed immediately by extraction, and not retained.
type SignalWindow struct {
	Samples    [][]float64
	SampleRate float64
}

// NewWindow wraps a single-channel sample slice in a SignalWindow.
func NewWindow(samples []float64, sampleRate float64) *SignalWindow {
	w := &SignalWindow{
		Samples:    make([][]float64, len(samples)),
		SampleRate: sampleRate,
	}
	for i, v := range samples {
		w.Samples[i] = []float64{v}
	}

	return w
}

// Channels returns the channel count.
func (w *SignalWindow) Channels() int {
	if len(w.Samples) == 0 {
		return 0
	}

	return len(w.Samples[0])
}

// Len returns the sample count.
func (w *SignalWindow) Len() int {
	return len(w.Samples)
}

// Channel copies channel c into a contiguous slice.
func (w *SignalWindow) Channel(c int) []float64 {
	out := make([]float64, len(w.Samples))
	for i, row := range w.Samples {
		out[i] = row[c]
	}

	return out
}

// Validate checks the window invariants: non-empty, rectangular,
// positive sample rate, and every sample finite.
func (w *SignalWindow) Validate() error {
	if w == nil || len(w.Samples) == 0 {
		return fmt.Errorf("%w: empty window", ErrInvalidWindow)
	}

	if w.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %v", ErrInvalidWindow, w.SampleRate)
	}

	channels := len(w.Samples[0])
	if channels == 0 {
		return fmt.Errorf("%w: zero channels", ErrInvalidWindow)
	}

	for i, row := range w.Samples {
		if len(row) != channels {
			return fmt.Errorf("%w: ragged row %d (%d channels, want %d)", ErrInvalidWindow, i, len(row), channels)
		}

		for c, v := range row {
			if !core.IsFinite(v) {
				return fmt.Errorf("%w: non-finite sample at [%d][%d]", ErrInvalidWindow, i, c)
			}
		}
	}

	return nil
}
