// Package signal provides deterministic synthetic biosignal generators
// used by tests, demos, and the training-data fallback path.
package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithSampleRate overrides the default 1 kHz sample rate.
func WithSampleRate(fs float64) Option {
	return func(g *Generator) {
		g.sampleRate = fs
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		sampleRate: 1000,
		seed:       1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// SampleRate returns the generator sample rate in Hz.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if g.sampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", g.sampleRate)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Noise generates deterministic Gaussian noise with the given standard
// deviation.
func (g *Generator) Noise(stddev float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if stddev < 0 {
		return nil, fmt.Errorf("noise stddev must be >= 0: %f", stddev)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = rng.NormFloat64() * stddev
	}
	return out, nil
}

// EMGBurst generates a surface-EMG-like trace: a low-amplitude noise floor
// with contraction bursts of higher-amplitude band-limited activity. Burst
// placement and amplitudes are deterministic for a given seed.
func (g *Generator) EMGBurst(bursts, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("emg samples must be > 0: %d", samples)
	}
	if bursts < 0 || bursts > samples {
		return nil, fmt.Errorf("emg bursts must be in [0, samples]: %d", bursts)
	}
	rng := rand.New(rand.NewSource(g.seed))
	out := make([]float64, samples)
	for i := range out {
		out[i] = rng.NormFloat64() * 0.02
	}
	if bursts == 0 {
		return out, nil
	}
	burstLen := samples / (2 * bursts)
	if burstLen < 1 {
		burstLen = 1
	}
	spacing := samples / bursts
	for b := 0; b < bursts; b++ {
		start := b*spacing + rng.Intn(spacing-burstLen+1)
		amp := 0.3 + 0.4*rng.Float64()
		for i := 0; i < burstLen; i++ {
			// Hann-shaped burst envelope keeps onsets smooth.
			env := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(burstLen)))
			out[start+i] += amp * env * rng.NormFloat64()
		}
	}
	return out, nil
}

// HeartRate generates a beats-per-minute series around a baseline with a
// slow linear drift and sample-to-sample jitter.
func (g *Generator) HeartRate(baseline, driftPerSample float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("heart rate samples must be > 0: %d", samples)
	}
	rng := rand.New(rand.NewSource(g.seed))
	out := make([]float64, samples)
	for i := range out {
		out[i] = baseline + driftPerSample*float64(i) + rng.NormFloat64()*1.5
	}
	return out, nil
}

// Temperature generates a skin-temperature series in degrees Celsius around
// a baseline. When feverFrom is in range, samples from that index onward are
// elevated by one degree.
func (g *Generator) Temperature(baseline float64, feverFrom, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("temperature samples must be > 0: %d", samples)
	}
	rng := rand.New(rand.NewSource(g.seed))
	out := make([]float64, samples)
	for i := range out {
		out[i] = baseline + rng.NormFloat64()*0.1
		if feverFrom >= 0 && i >= feverFrom {
			out[i] += 1.0
		}
	}
	return out, nil
}

// Normalize scales data to the target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
