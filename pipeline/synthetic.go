package pipeline

import (
	"math/rand"

	"github.com/injsense/biosig/dsp/core"
	"github.com/injsense/biosig/feature"
	"github.com/injsense/biosig/risk"
)

// Fallback training defaults used when no model artifact exists.
const (
	DefaultTrainingSamples = 1000
	DefaultSeed            = 42
)

// SyntheticTrainingSet generates n labeled samples from the documented
// synthetic-risk recipe: features drawn uniformly from their reference
// ranges, risk computed as a weighted sum of the normalized features
// plus gaussian noise, and the binary label set by thresholding risk
// at 0.5. Identical n and seed produce identical samples.
func SyntheticTrainingSet(n int, seed int64) []risk.Sample {
	rng := rand.New(rand.NewSource(seed))
	schema := feature.RiskSchema()
	samples := make([]risk.Sample, n)

	for i := range samples {
		imb := rng.Float64() * 50
		fat := rng.Float64() * 100
		load := rng.Float64() * 100
		rec := rng.Float64() * 72
		prev := float64(rng.Intn(6))
		tempVar := rng.Float64() * 3
		age := float64(18 + rng.Intn(18))
		games := float64(rng.Intn(16))

		score := 0.3*imb +
			0.2*fat/100 +
			0.15*load/100 +
			0.15*(72-rec)/72 +
			0.1*prev/5 +
			0.05*tempVar/3 +
			0.025*(age-18)/17 +
			0.025*games/15
		score += rng.NormFloat64() * 0.1
		score = core.Clamp(score, 0, 1)

		label := 0
		if score > 0.5 {
			label = 1
		}

		samples[i] = risk.Sample{
			Features: feature.Vector{
				Names:  schema,
				Values: []float64{imb, fat, load, rec, prev, tempVar, age, games},
			},
			Label: label,
		}
	}
	return samples
}
