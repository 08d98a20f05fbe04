// Package forest implements a deterministic bagged ensemble of CART
// decision trees for binary classification: bootstrap-resampled
// training sets, randomized feature subsets per split, Gini impurity
// splitting, and impurity-based feature importances.
//
// Training with the same seed and data always produces the same
// ensemble, and the fitted state round-trips through encoding/gob.
package forest

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Defaults matching the parameters the risk model was validated with.
const (
	DefaultTrees    = 100
	DefaultMaxDepth = 10
	DefaultMinLeaf  = 1
	DefaultSeed     = 42
)

// ErrNotFitted reports a prediction attempted before Fit.
var ErrNotFitted = errors.New("forest not fitted")

// Config holds ensemble hyperparameters.
type Config struct {
	Trees         int
	MaxDepth      int
	MinLeaf       int
	FeatureSubset int // features considered per split; 0 selects sqrt(p)
	Seed          int64
}

// DefaultConfig returns the standard ensemble configuration
// (100 trees, depth 10, seed 42).
func DefaultConfig() Config {
	return Config{
		Trees:    DefaultTrees,
		MaxDepth: DefaultMaxDepth,
		MinLeaf:  DefaultMinLeaf,
		Seed:     DefaultSeed,
	}
}

func (c Config) normalized() Config {
	if c.Trees <= 0 {
		c.Trees = DefaultTrees
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	if c.MinLeaf <= 0 {
		c.MinLeaf = DefaultMinLeaf
	}
	return c
}

// Node is one tree node in flattened array form. Leaf nodes have
// Left == -1 and carry the class-1 fraction of their training
// samples in Prob.
type Node struct {
	Feature   int32
	Threshold float64
	Left      int32
	Right     int32
	Prob      float64
}

// Tree is a single fitted decision tree.
type Tree struct {
	Nodes []Node
}

// Forest is the fitted ensemble. All fields are exported for gob
// serialization; treat a fitted Forest as read-only.
type Forest struct {
	Cfg         Config
	Features    int
	Trees       []Tree
	Importances []float64 // normalized impurity decrease, sums to 1
}

// New returns an unfitted forest with the given configuration.
func New(cfg Config) *Forest {
	return &Forest{Cfg: cfg.normalized()}
}

// Fit trains the ensemble on X (rows are samples) with binary labels
// y in {0, 1}.
func (f *Forest) Fit(x [][]float64, y []int) error {
	if len(x) == 0 {
		return errors.New("forest: empty training set")
	}
	if len(x) != len(y) {
		return fmt.Errorf("forest: %d samples but %d labels", len(x), len(y))
	}

	features := len(x[0])
	if features == 0 {
		return errors.New("forest: samples have no features")
	}
	for i, row := range x {
		if len(row) != features {
			return fmt.Errorf("forest: sample %d has %d features, want %d", i, len(row), features)
		}
	}
	for i, label := range y {
		if label != 0 && label != 1 {
			return fmt.Errorf("forest: label %d at sample %d is not binary", label, i)
		}
	}

	cfg := f.Cfg.normalized()
	subset := cfg.FeatureSubset
	if subset <= 0 || subset > features {
		subset = int(math.Sqrt(float64(features)))
		if subset < 1 {
			subset = 1
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	f.Features = features
	f.Trees = make([]Tree, cfg.Trees)
	rawImp := make([]float64, features)

	b := builder{
		x:        x,
		y:        y,
		maxDepth: cfg.MaxDepth,
		minLeaf:  cfg.MinLeaf,
		subset:   subset,
		features: features,
		rng:      rng,
		imp:      rawImp,
	}

	n := len(x)
	for t := range f.Trees {
		// Bootstrap sample with replacement.
		indices := make([]int, n)
		for i := range indices {
			indices[i] = rng.Intn(n)
		}

		b.nodes = nil
		b.grow(indices, 0)
		f.Trees[t].Nodes = b.nodes
	}

	// Normalize importances to sum 1.
	total := 0.0
	for _, v := range rawImp {
		total += v
	}
	f.Importances = make([]float64, features)
	if total > 0 {
		for i, v := range rawImp {
			f.Importances[i] = v / total
		}
	}

	return nil
}

// Fitted reports whether the forest has been trained.
func (f *Forest) Fitted() bool {
	return len(f.Trees) > 0
}

// ProbOne returns the class-1 probability for one sample: the mean of
// the per-tree leaf probabilities.
func (f *Forest) ProbOne(sample []float64) (float64, error) {
	if !f.Fitted() {
		return 0, ErrNotFitted
	}
	if len(sample) != f.Features {
		return 0, fmt.Errorf("forest: sample has %d features, model expects %d", len(sample), f.Features)
	}

	sum := 0.0
	for i := range f.Trees {
		sum += f.Trees[i].prob(sample)
	}

	return sum / float64(len(f.Trees)), nil
}

func (t *Tree) prob(sample []float64) float64 {
	i := int32(0)
	for {
		n := &t.Nodes[i]
		if n.Left < 0 {
			return n.Prob
		}

		if sample[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}
