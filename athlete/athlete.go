// Package athlete provides the roster and per-athlete profile data
// consumed by the assessment flow. Profiles are synthesized
// deterministically per athlete ID so repeated lookups agree.
package athlete

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/injsense/biosig/feature"
	"github.com/injsense/biosig/risk"
)

// ErrUnknownAthlete is returned by Get for IDs not on the roster.
var ErrUnknownAthlete = errors.New("athlete: unknown athlete")

// Athlete identifies one roster entry.
type Athlete struct {
	ID       int
	Name     string
	Team     string
	Position string
}

// Profile extends a roster entry with the physical attributes and
// baseline metrics used for risk assessment.
type Profile struct {
	Athlete
	Age      int
	HeightCm int
	WeightKg int
	// Injuries holds the recorded injury history, most recent first.
	Injuries []string
	// Baseline carries the contextual metrics in classifier schema
	// naming: training load, recovery time, consecutive games.
	Baseline map[string]float64
}

// Provider serves the roster. The zero value is not usable; construct
// with NewProvider.
type Provider struct {
	roster []Athlete
}

// NewProvider returns a Provider backed by the default roster.
func NewProvider() *Provider {
	return &Provider{roster: defaultRoster()}
}

func defaultRoster() []Athlete {
	return []Athlete{
		{ID: 1, Name: "Khalid Ahmed", Team: "Team A", Position: "Forward"},
		{ID: 2, Name: "Sarah Wilson", Team: "Team A", Position: "Midfielder"},
		{ID: 3, Name: "Ahmed Hassan", Team: "Team B", Position: "Defender"},
		{ID: 4, Name: "Maria Rodriguez", Team: "Team B", Position: "Forward"},
		{ID: 5, Name: "James Smith", Team: "Team A", Position: "Goalkeeper"},
		{ID: 6, Name: "Layla Mahmoud", Team: "Team C", Position: "Midfielder"},
		{ID: 7, Name: "David Chen", Team: "Team C", Position: "Defender"},
	}
}

// List returns the roster ordered by ID.
func (p *Provider) List() []Athlete {
	out := make([]Athlete, len(p.roster))
	copy(out, p.roster)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get returns the full profile for one athlete. The profile is a pure
// function of the ID: the same ID always yields the same attributes.
func (p *Provider) Get(id int) (Profile, error) {
	var entry Athlete
	found := false
	for _, a := range p.roster {
		if a.ID == id {
			entry = a
			found = true
			break
		}
	}
	if !found {
		return Profile{}, fmt.Errorf("%w: id %d", ErrUnknownAthlete, id)
	}

	rng := rand.New(rand.NewSource(int64(id)))
	prof := Profile{
		Athlete:  entry,
		Age:      18 + rng.Intn(18),
		HeightCm: 160 + rng.Intn(41),
		WeightKg: 60 + rng.Intn(41),
	}
	if rng.Float64() > 0.5 {
		prof.Injuries = []string{"Hamstring strain (2021)", "Ankle sprain (2020)"}
	}
	prof.Baseline = map[string]float64{
		feature.TrainingLoad:     float64(rng.Intn(101)),
		feature.RecoveryTime:     float64(rng.Intn(73)),
		feature.ConsecutiveGames: float64(rng.Intn(16)),
	}
	return prof, nil
}

// Metrics flattens a profile into the classifier metric map. Signal
// derived features (imbalance, fatigue, temperature variation) are
// absent here; the assessment flow fills those from sensor data.
func Metrics(p Profile) map[string]float64 {
	m := make(map[string]float64, len(p.Baseline)+2)
	for k, v := range p.Baseline {
		m[k] = v
	}
	m[feature.Age] = float64(p.Age)
	m[feature.PreviousInjuries] = float64(len(p.Injuries))
	return m
}

// Summary aggregates assessment outcomes across the roster.
type Summary struct {
	Total        int
	Low          int
	Medium       int
	High         int
	AverageScore float64
}

// TeamSummary assesses every athlete on the roster with the supplied
// function and aggregates label counts and the mean score. The first
// assessment failure aborts the summary.
func (p *Provider) TeamSummary(assess func(Profile) (risk.Assessment, error)) (Summary, error) {
	var s Summary
	total := 0.0
	for _, a := range p.List() {
		prof, err := p.Get(a.ID)
		if err != nil {
			return Summary{}, err
		}
		out, err := assess(prof)
		if err != nil {
			return Summary{}, fmt.Errorf("athlete %d: %w", a.ID, err)
		}
		s.Total++
		total += float64(out.Score)
		switch out.RiskLabel {
		case risk.LabelHigh:
			s.High++
		case risk.LabelMedium:
			s.Medium++
		default:
			s.Low++
		}
	}
	if s.Total > 0 {
		s.AverageScore = total / float64(s.Total)
	}
	return s, nil
}
