package filter

import (
	"github.com/injsense/biosig/feature"
)

// FilterWindow applies the zero-phase bandpass to every channel of w
// and returns a new window of the same shape. The input must satisfy
// the window invariants; NaN or Inf anywhere rejects the whole window.
func (b *Bandpass) FilterWindow(w *feature.SignalWindow) (*feature.SignalWindow, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	n := w.Len()
	channels := w.Channels()
	out := &feature.SignalWindow{
		Samples:    make([][]float64, n),
		SampleRate: w.SampleRate,
	}
	for i := range out.Samples {
		out.Samples[i] = make([]float64, channels)
	}

	col := make([]float64, n)
	for c := 0; c < channels; c++ {
		for i, row := range w.Samples {
			col[i] = row[c]
		}
		b.ZeroPhase(col, col)
		for i, v := range col {
			out.Samples[i][c] = v
		}
	}

	return out, nil
}
