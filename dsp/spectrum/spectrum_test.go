package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/injsense/biosig/dsp/window"
	"github.com/injsense/biosig/internal/testutil"
)

func TestWelchPeakAtSineFrequency(t *testing.T) {
	const (
		fs   = 1000.0
		freq = 125.0 // exactly on a bin for segment length 256
	)

	in := testutil.DeterministicSine(freq, fs, 1.0, 4096)

	freqs, psd, err := Welch(in, fs)
	if err != nil {
		t.Fatalf("Welch: %v", err)
	}

	if len(freqs) != 129 || len(psd) != 129 {
		t.Fatalf("bin count %d/%d, want 129", len(freqs), len(psd))
	}

	peak := 0
	for i, p := range psd {
		if p > psd[peak] {
			peak = i
		}
	}

	if math.Abs(freqs[peak]-freq) > fs/256 {
		t.Errorf("peak at %v Hz, want ~%v Hz", freqs[peak], freq)
	}
}

func TestWelchParsevalApproximation(t *testing.T) {
	const fs = 1000.0

	in := testutil.DeterministicSine(100, fs, 2.0, 8192)

	freqs, psd, err := Welch(in, fs)
	if err != nil {
		t.Fatalf("Welch: %v", err)
	}

	// Integrated PSD should recover the signal power (A^2/2 = 2).
	binHz := freqs[1] - freqs[0]
	total := 0.0
	for _, p := range psd {
		total += p * binHz
	}

	if math.Abs(total-2) > 0.1 {
		t.Errorf("integrated PSD = %v, want ~2", total)
	}
}

func TestWelchShortSignalUsesSingleSegment(t *testing.T) {
	in := testutil.DeterministicSine(50, 1000, 1.0, 100)

	freqs, psd, err := Welch(in, 1000)
	if err != nil {
		t.Fatalf("Welch: %v", err)
	}

	if len(psd) != 51 {
		t.Errorf("bin count %d, want 51 for a 100-sample segment", len(psd))
	}

	if freqs[len(freqs)-1] != 500 {
		t.Errorf("last bin %v Hz, want Nyquist 500", freqs[len(freqs)-1])
	}
}

func TestWelchRejectsDegenerateInput(t *testing.T) {
	if _, _, err := Welch([]float64{1}, 1000); !errors.Is(err, ErrShortSignal) {
		t.Errorf("single sample: err = %v, want ErrShortSignal", err)
	}

	if _, _, err := Welch(nil, 1000); !errors.Is(err, ErrShortSignal) {
		t.Errorf("nil signal: err = %v, want ErrShortSignal", err)
	}

	if _, _, err := Welch([]float64{1, 2, 3}, 0); err == nil {
		t.Error("zero sample rate should fail")
	}
}

func TestPeriodogramWindowMismatch(t *testing.T) {
	seg := testutil.DeterministicSine(50, 1000, 1, 256)
	win := window.Generate(window.TypeHann, 128)

	if _, err := Periodogram(seg, win, 1000); err == nil {
		t.Error("mismatched window length should fail")
	}
}

func TestMedianFrequency(t *testing.T) {
	// Flat two-bin spectrum: half power reached at the first bin.
	if got := MedianFrequency([]float64{0, 10}, []float64{1, 1}); got != 0 {
		t.Errorf("flat spectrum median = %v, want 0", got)
	}

	// All power in one bin.
	if got := MedianFrequency([]float64{0, 10, 20}, []float64{0, 0, 4}); got != 20 {
		t.Errorf("single-bin median = %v, want 20", got)
	}

	if got := MedianFrequency(nil, nil); got != 0 {
		t.Errorf("empty spectrum median = %v, want 0", got)
	}

	if got := MedianFrequency([]float64{0, 10}, []float64{0, 0}); got != 0 {
		t.Errorf("zero spectrum median = %v, want 0", got)
	}
}

func TestMedianFrequencyOfSine(t *testing.T) {
	const fs = 1000.0

	in := testutil.DeterministicSine(100, fs, 1.0, 4096)

	freqs, psd, err := Welch(in, fs)
	if err != nil {
		t.Fatalf("Welch: %v", err)
	}

	got := MedianFrequency(freqs, psd)
	if math.Abs(got-100) > 2*fs/256 {
		t.Errorf("median frequency = %v Hz, want ~100 Hz", got)
	}
}
