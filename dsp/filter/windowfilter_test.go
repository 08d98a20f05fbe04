package filter

import (
	"errors"
	"math"
	"testing"

	"github.com/injsense/biosig/feature"
	"github.com/injsense/biosig/internal/testutil"
)

func TestFilterWindowMatchesPerChannel(t *testing.T) {
	bp, err := NewBandpass(DefaultSpec())
	if err != nil {
		t.Fatalf("NewBandpass() error = %v", err)
	}

	left := testutil.DeterministicSine(50, DefaultSampleRate, 1, 512)
	right := testutil.DeterministicNoise(3, 0.5, 512)

	w := &feature.SignalWindow{
		Samples:    make([][]float64, 512),
		SampleRate: DefaultSampleRate,
	}
	for i := range w.Samples {
		w.Samples[i] = []float64{left[i], right[i]}
	}

	out, err := bp.FilterWindow(w)
	if err != nil {
		t.Fatalf("FilterWindow() error = %v", err)
	}
	if out.Len() != w.Len() || out.Channels() != w.Channels() {
		t.Fatalf("shape %dx%d, want %dx%d", out.Len(), out.Channels(), w.Len(), w.Channels())
	}

	testutil.RequireSliceNearlyEqual(t, out.Channel(0), bp.Filtered(left), 1e-12)
	testutil.RequireSliceNearlyEqual(t, out.Channel(1), bp.Filtered(right), 1e-12)
}

func TestFilterWindowRejectsNonFinite(t *testing.T) {
	bp, err := NewBandpass(DefaultSpec())
	if err != nil {
		t.Fatalf("NewBandpass() error = %v", err)
	}

	w := feature.NewWindow([]float64{1, math.NaN(), 3}, DefaultSampleRate)
	if _, err := bp.FilterWindow(w); !errors.Is(err, feature.ErrInvalidWindow) {
		t.Fatalf("FilterWindow() = %v, want ErrInvalidWindow", err)
	}
}
