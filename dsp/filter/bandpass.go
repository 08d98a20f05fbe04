// Package filter provides the sEMG conditioning bandpass: a Butterworth
// design applied forward and backward for zero-phase response.
//
// Zero-phase filtering doubles the effective order of the design but
// preserves waveform timing, which downstream zero-crossing and
// waveform-length features depend on. Edge transients at window
// boundaries are a known limitation and are not corrected.
package filter

import (
	"fmt"

	"github.com/injsense/biosig/dsp/filter/biquad"
	"github.com/injsense/biosig/dsp/filter/design"
)

// Default sEMG conditioning parameters: the physiological band of
// surface EMG at a typical 1 kHz acquisition rate.
const (
	DefaultLowHz      = 20.0
	DefaultHighHz     = 450.0
	DefaultSampleRate = 1000.0
	DefaultOrder      = 4
)

// Spec describes a Butterworth bandpass design.
type Spec struct {
	LowHz      float64
	HighHz     float64
	SampleRate float64
	Order      int
}

// DefaultSpec returns the sEMG conditioning band (20-450 Hz, order 4
// at 1 kHz).
func DefaultSpec() Spec {
	return Spec{
		LowHz:      DefaultLowHz,
		HighHz:     DefaultHighHz,
		SampleRate: DefaultSampleRate,
		Order:      DefaultOrder,
	}
}

// Validate reports whether the spec satisfies
// 0 < low < high < sampleRate/2 and order >= 1.
func (s Spec) Validate() error {
	return validateSpec(s)
}

// Bandpass is a designed Butterworth bandpass filter. The zero-phase
// entry points allocate fresh cascade state per call, so one Bandpass
// may be shared by concurrent callers.
type Bandpass struct {
	spec   Spec
	coeffs []biquad.Coefficients
}

// NewBandpass designs a Butterworth bandpass for the given spec.
func NewBandpass(spec Spec) (*Bandpass, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return &Bandpass{
		spec:   spec,
		coeffs: design.ButterworthBand(spec.LowHz, spec.HighHz, spec.Order, spec.SampleRate),
	}, nil
}

// Spec returns the design parameters.
func (b *Bandpass) Spec() Spec {
	return b.spec
}

// Apply runs a single causal forward pass over src into dst.
// dst and src must have the same length; dst may alias src.
func (b *Bandpass) Apply(dst, src []float64) {
	if len(dst) != len(src) {
		panic(fmt.Sprintf("filter: Apply length mismatch: dst %d, src %d", len(dst), len(src)))
	}
	if len(src) == 0 {
		return
	}

	if &dst[0] != &src[0] {
		copy(dst, src)
	}

	chain := biquad.NewChain(b.coeffs)
	chain.ProcessBlock(dst)
}

// ZeroPhase filters src forward and backward into dst, canceling the
// phase distortion of the causal pass. Output length equals input
// length. dst may alias src.
func (b *Bandpass) ZeroPhase(dst, src []float64) {
	if len(dst) != len(src) {
		panic(fmt.Sprintf("filter: ZeroPhase length mismatch: dst %d, src %d", len(dst), len(src)))
	}
	if len(src) == 0 {
		return
	}

	if &dst[0] != &src[0] {
		copy(dst, src)
	}

	forward := biquad.NewChain(b.coeffs)
	forward.ProcessBlock(dst)

	reverse(dst)

	// Fresh state for the backward pass.
	backward := biquad.NewChain(b.coeffs)
	backward.ProcessBlock(dst)

	reverse(dst)
}

// Filtered is a convenience wrapper over [Bandpass.ZeroPhase] that
// allocates the output slice.
func (b *Bandpass) Filtered(src []float64) []float64 {
	out := make([]float64, len(src))
	if len(src) == 0 {
		return out
	}
	b.ZeroPhase(out, src)
	return out
}

func reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
