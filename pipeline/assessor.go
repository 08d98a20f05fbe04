// Package pipeline wires the signal-processing stages and the risk
// classifier into a single assessment flow: raw sensor windows in,
// one Assessment out. It owns the only recoverable error path,
// retraining and persisting a model when the artifact is missing.
package pipeline

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/injsense/biosig/dsp/core"
	"github.com/injsense/biosig/dsp/filter"
	"github.com/injsense/biosig/feature"
	"github.com/injsense/biosig/measure/fatigue"
	"github.com/injsense/biosig/measure/imbalance"
	"github.com/injsense/biosig/measure/temperature"
	"github.com/injsense/biosig/risk"
)

// Inputs carries one assessment window of raw sensor data plus the
// contextual metrics that are not derived from signals. Metric names
// follow the classifier schema; missing entries are imputed.
type Inputs struct {
	LeftEMG, RightEMG []float64
	HeartRate         []float64
	Temperature       []float64
	Metrics           map[string]float64
}

// Assessor runs the end-to-end flow: zero-phase bandpass filtering,
// fatigue and imbalance indices, temperature analysis, feature
// assembly, and classification.
type Assessor struct {
	bp        *filter.Bandpass
	clf       *risk.Classifier
	log       *zap.Logger
	modelPath string
}

// Option configures an Assessor.
type Option func(*Assessor)

// WithLogger sets the structured logger. The default discards output.
func WithLogger(log *zap.Logger) Option {
	return func(a *Assessor) {
		a.log = log
	}
}

// WithModelPath sets the model artifact location used by LoadOrTrain.
func WithModelPath(path string) Option {
	return func(a *Assessor) {
		a.modelPath = path
	}
}

// WithClassifier injects an already trained classifier, bypassing
// LoadOrTrain entirely.
func WithClassifier(clf *risk.Classifier) Option {
	return func(a *Assessor) {
		a.clf = clf
	}
}

// New creates an Assessor with the given filter specification.
func New(spec filter.Spec, opts ...Option) (*Assessor, error) {
	bp, err := filter.NewBandpass(spec)
	if err != nil {
		return nil, err
	}
	a := &Assessor{
		bp:        bp,
		log:       zap.NewNop(),
		modelPath: risk.DefaultArtifactName,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a, nil
}

// LoadOrTrain returns a usable classifier: the persisted artifact when
// it exists, otherwise a model freshly trained on the synthetic set and
// saved to path. A missing artifact is the only condition handled here;
// every other load failure propagates.
func (a *Assessor) LoadOrTrain(path string) (*risk.Classifier, error) {
	clf, err := risk.Load(path)
	if err == nil {
		a.log.Info("model loaded", zap.String("path", path))
		a.clf = clf
		return clf, nil
	}
	if !errors.Is(err, risk.ErrModelNotFound) {
		return nil, err
	}

	a.log.Info("model artifact missing, training on synthetic data",
		zap.String("path", path),
		zap.Int("samples", DefaultTrainingSamples))

	clf = risk.New()
	if err := clf.Train(SyntheticTrainingSet(DefaultTrainingSamples, DefaultSeed)); err != nil {
		return nil, fmt.Errorf("train fallback model: %w", err)
	}
	if err := clf.Save(path); err != nil {
		return nil, fmt.Errorf("save fallback model: %w", err)
	}
	a.log.Info("model trained and saved", zap.String("path", path))
	a.clf = clf
	return clf, nil
}

// validate rejects non-finite samples before any stage runs. NaN must
// never reach the classifier through a numeric stage that happens to
// tolerate it.
func (in Inputs) validate() error {
	channels := []struct {
		name string
		data []float64
	}{
		{"left emg", in.LeftEMG},
		{"right emg", in.RightEMG},
		{"heart rate", in.HeartRate},
		{"temperature", in.Temperature},
	}
	for _, ch := range channels {
		if !core.AllFinite(ch.data) {
			return fmt.Errorf("%w: non-finite sample in %s channel", feature.ErrInvalidWindow, ch.name)
		}
	}
	for name, v := range in.Metrics {
		if !core.IsFinite(v) {
			return fmt.Errorf("%w: non-finite metric %q", feature.ErrInvalidWindow, name)
		}
	}
	return nil
}

// Assess runs one full assessment. Any stage failure aborts the whole
// call; no partial Assessment is ever returned.
func (a *Assessor) Assess(in Inputs) (risk.Assessment, error) {
	if err := in.validate(); err != nil {
		return risk.Assessment{}, err
	}
	if a.clf == nil {
		if _, err := a.LoadOrTrain(a.modelPath); err != nil {
			return risk.Assessment{}, err
		}
	}

	left := a.bp.Filtered(in.LeftEMG)
	right := a.bp.Filtered(in.RightEMG)

	imb, err := imbalance.Analyze(left, right, 0)
	if err != nil {
		return risk.Assessment{}, fmt.Errorf("imbalance: %w", err)
	}

	fs := a.bp.Spec().SampleRate
	leftFatigue, err := fatigue.Index(left, fatigue.Config{SampleRate: fs})
	if err != nil {
		return risk.Assessment{}, fmt.Errorf("fatigue: %w", err)
	}
	rightFatigue, err := fatigue.Index(right, fatigue.Config{SampleRate: fs})
	if err != nil {
		return risk.Assessment{}, fmt.Errorf("fatigue: %w", err)
	}

	temp, err := temperature.Analyze(in.Temperature)
	if err != nil {
		return risk.Assessment{}, fmt.Errorf("temperature: %w", err)
	}

	values := make(map[string]float64, len(in.Metrics)+3)
	for k, v := range in.Metrics {
		values[k] = v
	}
	// Signal-derived values override anything supplied in Metrics.
	values[feature.SEMGImbalance] = imb
	values[feature.MuscleFatigue] = (leftFatigue + rightFatigue) / 2
	values[feature.TemperatureVariation] = temp.StdDev

	vec := feature.Assemble(values, a.clf.Schema(), feature.DefaultImputation())

	out, err := a.clf.Predict(vec)
	if err != nil {
		return risk.Assessment{}, err
	}

	a.log.Info("assessment complete",
		zap.Int("score", out.Score),
		zap.String("label", string(out.RiskLabel)),
		zap.Float64("imbalance", imb))
	return out, nil
}

// WindowFeatures extracts the time-domain feature vector for one
// input window: per-channel EMG statistics followed by heart-rate and
// temperature summaries. The EMG channels are zero-phase filtered
// first. This vector lives in the windowed feature space, not the
// classifier schema.
func (a *Assessor) WindowFeatures(in Inputs) (feature.Vector, error) {
	if err := in.validate(); err != nil {
		return feature.Vector{}, err
	}

	left := a.bp.Filtered(in.LeftEMG)
	right := a.bp.Filtered(in.RightEMG)

	n := len(left)
	if len(right) < n {
		n = len(right)
	}
	samples := make([][]float64, n)
	for i := range samples {
		samples[i] = []float64{left[i], right[i]}
	}

	w := &feature.SignalWindow{Samples: samples, SampleRate: a.bp.Spec().SampleRate}
	return feature.Extract(w, in.HeartRate, in.Temperature)
}
