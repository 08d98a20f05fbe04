package spectrum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/injsense/biosig/dsp/window"
)

// Welch defaults, pinned from the parameters the risk pipeline was
// validated with: 256-sample Hann segments with 50% overlap,
// per-segment mean removal, density scaling.
const (
	DefaultSegmentLength = 256
	DefaultWindowType    = window.TypeHann
)

// ErrShortSignal reports a signal too short for spectral estimation.
var ErrShortSignal = errors.New("signal too short for spectral estimation")

// Option configures Welch estimation.
type Option func(*config)

type config struct {
	segmentLength int
	windowType    window.Type
}

func defaultConfig() config {
	return config{
		segmentLength: DefaultSegmentLength,
		windowType:    DefaultWindowType,
	}
}

// WithSegmentLength sets the Welch segment length in samples.
func WithSegmentLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.segmentLength = n
		}
	}
}

// WithWindowType sets the taper applied to each segment.
func WithWindowType(t window.Type) Option {
	return func(c *config) {
		c.windowType = t
	}
}

// powerBins computes |X[k]|^2 for the one-sided bins [0..n/2] of a
// complex spectrum.
func powerBins(dst []float64, spec []complex128) {
	n := len(dst)
	re := make([]float64, n)
	im := make([]float64, n)

	for i := 0; i < n; i++ {
		re[i] = real(spec[i])
		im[i] = imag(spec[i])
	}

	vecmath.Power(dst, re, im)
}

// Periodogram computes the one-sided power spectral density of one
// windowed segment. The segment mean is removed before tapering.
// Scaling is 1/(fs * sum(w^2)) with interior bins doubled, so the
// integral of the PSD approximates the signal power density.
func Periodogram(segment, win []float64, sampleRate float64) ([]float64, error) {
	n := len(segment)
	if n < 2 {
		return nil, fmt.Errorf("%w: %d samples", ErrShortSignal, n)
	}
	if len(win) != n {
		return nil, fmt.Errorf("window length %d does not match segment length %d", len(win), n)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be > 0: %v", sampleRate)
	}

	mean := 0.0
	for _, v := range segment {
		mean += v
	}
	mean /= float64(n)

	in := make([]complex128, n)
	for i, v := range segment {
		in[i] = complex((v-mean)*win[i], 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("periodogram fft plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("periodogram fft: %w", err)
	}

	bins := n/2 + 1
	psd := make([]float64, bins)
	powerBins(psd, out)

	scale := 1 / (sampleRate * window.SumSquares(win))
	for i := range psd {
		psd[i] *= scale
		// One-sided doubling, except DC and Nyquist.
		if i != 0 && !(n%2 == 0 && i == bins-1) {
			psd[i] *= 2
		}
	}

	return psd, nil
}

// Welch estimates the power spectral density by averaging overlapped
// windowed periodograms (50% overlap). Signals shorter than one
// segment are estimated from a single full-length segment.
//
// Returns the bin frequencies in Hz and the PSD values.
func Welch(signal []float64, sampleRate float64, opts ...Option) (freqs, psd []float64, err error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if len(signal) < 2 {
		return nil, nil, fmt.Errorf("%w: %d samples", ErrShortSignal, len(signal))
	}
	if sampleRate <= 0 {
		return nil, nil, fmt.Errorf("sample rate must be > 0: %v", sampleRate)
	}

	segLen := cfg.segmentLength
	if segLen > len(signal) {
		segLen = len(signal)
	}

	win := window.Generate(cfg.windowType, segLen)
	hop := segLen / 2
	if hop < 1 {
		hop = 1
	}

	bins := segLen/2 + 1
	psd = make([]float64, bins)
	segments := 0

	for start := 0; start+segLen <= len(signal); start += hop {
		p, perr := Periodogram(signal[start:start+segLen], win, sampleRate)
		if perr != nil {
			return nil, nil, perr
		}

		for i, v := range p {
			psd[i] += v
		}
		segments++
	}

	for i := range psd {
		psd[i] /= float64(segments)
	}

	freqs = make([]float64, bins)
	binHz := sampleRate / float64(segLen)
	for i := range freqs {
		freqs[i] = float64(i) * binHz
	}

	return freqs, psd, nil
}

// MedianFrequency returns the frequency at which cumulative power
// first reaches half of the total power. Returns 0 for an empty or
// all-zero spectrum.
func MedianFrequency(freqs, psd []float64) float64 {
	if len(psd) == 0 || len(freqs) != len(psd) {
		return 0
	}

	total := 0.0
	for _, p := range psd {
		total += p
	}
	if total <= 0 || math.IsNaN(total) {
		return 0
	}

	half := total / 2
	cum := 0.0
	for i, p := range psd {
		cum += p
		if cum >= half {
			return freqs[i]
		}
	}

	return freqs[len(freqs)-1]
}
