package feature

// Canonical risk feature names.
const (
	SEMGImbalance        = "semg_imbalance"
	MuscleFatigue        = "muscle_fatigue"
	TrainingLoad         = "training_load"
	RecoveryTime         = "recovery_time"
	PreviousInjuries     = "previous_injuries"
	TemperatureVariation = "temperature_variation"
	Age                  = "age"
	ConsecutiveGames     = "consecutive_games"
)

// Schema is the canonical ordered list of feature names a classifier
// is trained against.
type Schema []string

// RiskSchema returns the injury-risk classifier schema. The order is
// part of the trained model contract.
func RiskSchema() Schema {
	return Schema{
		SEMGImbalance,
		MuscleFatigue,
		TrainingLoad,
		RecoveryTime,
		PreviousInjuries,
		TemperatureVariation,
		Age,
		ConsecutiveGames,
	}
}

// Equal reports whether two schemas have identical names in identical
// order.
func (s Schema) Equal(other Schema) bool {
	if len(s) != len(other) {
		return false
	}
	for i, name := range s {
		if other[i] != name {
			return false
		}
	}

	return true
}

// Imputation maps feature names to the fixed default used when an
// upstream value is missing. Fixed defaults keep predictions
// reproducible; sensor dropout is expected in live acquisition, so
// missing keys are filled rather than rejected.
type Imputation map[string]float64

// DefaultImputation returns the documented per-feature defaults: the
// midpoints of each feature's plausible range.
func DefaultImputation() Imputation {
	return Imputation{
		SEMGImbalance:        17.5, // percent, plausible range 5-30
		MuscleFatigue:        50,   // index, range 20-80
		TrainingLoad:         60,   // arbitrary units, range 30-90
		RecoveryTime:         30,   // hours, range 12-48
		PreviousInjuries:     0,    // absent history means none recorded
		TemperatureVariation: 0.8,  // degrees C, range 0.1-1.5
		Age:                  26,   // years, range 18-35
		ConsecutiveGames:     5,    // games, range 0-10
	}
}

// Assemble builds an ordered Vector for the given schema from a
// name-to-value mapping, filling missing names from the imputation
// table. Values present in the mapping always win.
func Assemble(values map[string]float64, schema Schema, imp Imputation) Vector {
	v := Vector{
		Names:  make([]string, len(schema)),
		Values: make([]float64, len(schema)),
	}

	for i, name := range schema {
		v.Names[i] = name
		if val, ok := values[name]; ok {
			v.Values[i] = val
		} else {
			v.Values[i] = imp[name]
		}
	}

	return v
}
