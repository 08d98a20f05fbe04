package risk

// Label is the categorical risk level.
type Label string

const (
	LabelLow    Label = "Low"
	LabelMedium Label = "Medium"
	LabelHigh   Label = "High"
)

// Score thresholds for the categorical labels.
const (
	MediumThreshold = 30
	HighThreshold   = 60
)

// Factor is one feature's contribution to the model's decisions.
type Factor struct {
	Name   string
	Weight float64
}

// Assessment is the outcome of one prediction. It is immutable and
// all-or-nothing: no partial assessments are produced.
type Assessment struct {
	// Score is the class-1 probability scaled to 0-100.
	Score int
	// RiskLabel is High for scores >= 60, Medium for >= 30, else Low.
	RiskLabel Label
	// Factors ranks features by normalized importance, descending.
	// Weights sum to at most 1.
	Factors []Factor
	// Confidence is the distance from the decision boundary scaled
	// to 0-100: maximal for extreme probabilities, zero at 0.5.
	Confidence int
}

func labelFor(score int) Label {
	switch {
	case score >= HighThreshold:
		return LabelHigh
	case score >= MediumThreshold:
		return LabelMedium
	default:
		return LabelLow
	}
}
