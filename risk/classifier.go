// Package risk trains and serves the injury-risk classifier: a
// standardization transform feeding a bagged decision-tree ensemble,
// producing calibrated 0-100 risk scores with per-feature importance
// attribution.
package risk

import (
	"fmt"
	"math"
	"sort"

	"github.com/injsense/biosig/feature"
	"github.com/injsense/biosig/risk/forest"
)

// Sample is one labeled training observation.
type Sample struct {
	Features feature.Vector
	Label    int // 1 for injury within the observation horizon
}

// standardizer is the fitted zero-mean unit-variance transform.
// Fields are exported for gob serialization.
type standardizer struct {
	Mean  []float64
	Scale []float64
}

// fit computes per-column mean and population standard deviation.
// Constant columns get unit scale.
func (s *standardizer) fit(x [][]float64) {
	cols := len(x[0])
	s.Mean = make([]float64, cols)
	s.Scale = make([]float64, cols)

	n := float64(len(x))
	for _, row := range x {
		for j, v := range row {
			s.Mean[j] += v
		}
	}
	for j := range s.Mean {
		s.Mean[j] /= n
	}

	for _, row := range x {
		for j, v := range row {
			d := v - s.Mean[j]
			s.Scale[j] += d * d
		}
	}
	for j := range s.Scale {
		s.Scale[j] = math.Sqrt(s.Scale[j] / n)
		if s.Scale[j] == 0 {
			s.Scale[j] = 1
		}
	}
}

// transform standardizes one row into a fresh slice.
func (s *standardizer) transform(row []float64) []float64 {
	out := make([]float64, len(row))
	for j, v := range row {
		out[j] = (v - s.Mean[j]) / s.Scale[j]
	}

	return out
}

// Classifier is the injury-risk model. Its state machine is
// Untrained -> Trained with no way back; a trained classifier is
// immutable and safe for concurrent Predict calls (every call works
// on per-call allocations only).
type Classifier struct {
	schema   feature.Schema
	scaler   standardizer
	ensemble *forest.Forest
	trained  bool
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithForestConfig overrides the ensemble hyperparameters.
func WithForestConfig(cfg forest.Config) Option {
	return func(c *Classifier) {
		c.ensemble = forest.New(cfg)
	}
}

// WithSchema overrides the feature schema the classifier trains
// against. Defaults to [feature.RiskSchema].
func WithSchema(s feature.Schema) Option {
	return func(c *Classifier) {
		c.schema = s
	}
}

// New returns an untrained classifier.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		schema:   feature.RiskSchema(),
		ensemble: forest.New(forest.DefaultConfig()),
	}
	for _, o := range opts {
		o(c)
	}

	return c
}

// Schema returns the classifier's feature schema.
func (c *Classifier) Schema() feature.Schema {
	return c.schema
}

// Trained reports whether the classifier has been trained or loaded.
func (c *Classifier) Trained() bool {
	return c.trained
}

// checkSchema verifies length, names, and order against the trained
// schema. Mismatches are fatal for the call.
func (c *Classifier) checkSchema(v feature.Vector) error {
	if len(v.Values) != len(c.schema) {
		return fmt.Errorf("%w: vector has %d features, schema has %d", ErrSchemaMismatch, len(v.Values), len(c.schema))
	}
	if len(v.Names) != len(v.Values) {
		return fmt.Errorf("%w: vector has %d names for %d values", ErrSchemaMismatch, len(v.Names), len(v.Values))
	}
	for i, name := range c.schema {
		if v.Names[i] != name {
			return fmt.Errorf("%w: position %d is %q, schema expects %q", ErrSchemaMismatch, i, v.Names[i], name)
		}
	}

	return nil
}

// Train fits the standardization transform and the tree ensemble on
// the labeled set. The transform is fitted on training data only and
// never re-fitted at inference time.
func (c *Classifier) Train(samples []Sample) error {
	if len(samples) == 0 {
		return fmt.Errorf("risk: empty training set")
	}

	x := make([][]float64, len(samples))
	y := make([]int, len(samples))
	for i, s := range samples {
		if err := c.checkSchema(s.Features); err != nil {
			return fmt.Errorf("sample %d: %w", i, err)
		}

		x[i] = s.Features.Values
		y[i] = s.Label
	}

	c.scaler.fit(x)

	scaled := make([][]float64, len(x))
	for i, row := range x {
		scaled[i] = c.scaler.transform(row)
	}

	if err := c.ensemble.Fit(scaled, y); err != nil {
		return fmt.Errorf("risk: %w", err)
	}

	c.trained = true

	return nil
}

// Predict standardizes the feature vector with the stored transform
// and returns the full risk assessment. Prediction is a pure function
// of the trained state: identical input yields an identical
// Assessment.
func (c *Classifier) Predict(v feature.Vector) (Assessment, error) {
	if !c.trained {
		return Assessment{}, ErrNotTrained
	}
	if err := c.checkSchema(v); err != nil {
		return Assessment{}, err
	}

	p, err := c.ensemble.ProbOne(c.scaler.transform(v.Values))
	if err != nil {
		return Assessment{}, fmt.Errorf("risk: %w", err)
	}

	score := int(math.Round(p * 100))

	return Assessment{
		Score:      score,
		RiskLabel:  labelFor(score),
		Factors:    c.Importances(),
		Confidence: int(math.Round(2 * math.Abs(p-0.5) * 100)),
	}, nil
}

// Importances returns the per-feature impurity importances, sorted
// descending. The weights sum to at most 1.
func (c *Classifier) Importances() []Factor {
	if !c.trained {
		return nil
	}

	raw := c.ensemble.Importances
	factors := make([]Factor, len(c.schema))
	for i, name := range c.schema {
		factors[i] = Factor{Name: name, Weight: raw[i]}
	}

	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].Weight > factors[j].Weight
	})

	return factors
}
