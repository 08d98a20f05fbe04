// Package fatigue estimates muscle fatigue from the median-frequency
// shift of filtered sEMG: spectral compression toward lower
// frequencies correlates with fatigue.
package fatigue

import (
	"errors"
	"fmt"

	"github.com/injsense/biosig/dsp/core"
	"github.com/injsense/biosig/dsp/spectrum"
	"github.com/injsense/biosig/feature"
)

// The healthy-muscle median frequency band. The index maps this band
// linearly onto 0-100; the mapping is a tunable design choice, not a
// physiological law.
const (
	HealthyBandLowHz  = 30.0
	HealthyBandHighHz = 120.0
)

// Config holds fatigue estimation parameters.
type Config struct {
	SampleRate    float64
	SegmentLength int // Welch segment length; 0 selects the default (256)
}

// Index returns the fatigue index in [0, 100] for a filtered sEMG
// window. Lower median frequency yields a higher index.
func Index(filteredEMG []float64, cfg Config) (float64, error) {
	opts := []spectrum.Option{}
	if cfg.SegmentLength > 0 {
		opts = append(opts, spectrum.WithSegmentLength(cfg.SegmentLength))
	}

	freqs, psd, err := spectrum.Welch(filteredEMG, cfg.SampleRate, opts...)
	if err != nil {
		if errors.Is(err, spectrum.ErrShortSignal) {
			return 0, fmt.Errorf("%w: %w", feature.ErrInsufficientSamples, err)
		}
		return 0, err
	}

	return FromMedianFrequency(spectrum.MedianFrequency(freqs, psd)), nil
}

// FromMedianFrequency maps a median frequency in Hz onto the fatigue
// index: 100 * (1 - (mf - 30) / 90), clamped to [0, 100].
func FromMedianFrequency(medianFreq float64) float64 {
	span := HealthyBandHighHz - HealthyBandLowHz
	idx := 100 * (1 - (medianFreq-HealthyBandLowHz)/span)

	return core.Clamp(idx, 0, 100)
}
