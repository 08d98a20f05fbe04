package forest

import (
	"bytes"
	"encoding/gob"
	"errors"
	"math"
	"math/rand"
	"testing"
)

// separableSet builds a linearly separable training set: label 1 when
// the sum of features exceeds 1.
func separableSet(n int, seed int64) (x [][]float64, y []int) {
	rng := rand.New(rand.NewSource(seed))

	x = make([][]float64, n)
	y = make([]int, n)
	for i := range x {
		row := []float64{rng.Float64(), rng.Float64()}
		x[i] = row
		if row[0]+row[1] > 1 {
			y[i] = 1
		}
	}

	return x, y
}

func TestFitRejectsBadInput(t *testing.T) {
	f := New(DefaultConfig())

	if err := f.Fit(nil, nil); err == nil {
		t.Error("empty training set should fail")
	}

	if err := f.Fit([][]float64{{1}}, []int{0, 1}); err == nil {
		t.Error("mismatched lengths should fail")
	}

	if err := f.Fit([][]float64{{1}, {2, 3}}, []int{0, 1}); err == nil {
		t.Error("ragged samples should fail")
	}

	if err := f.Fit([][]float64{{1}}, []int{2}); err == nil {
		t.Error("non-binary label should fail")
	}
}

func TestPredictBeforeFit(t *testing.T) {
	f := New(DefaultConfig())

	if _, err := f.ProbOne([]float64{1, 2}); !errors.Is(err, ErrNotFitted) {
		t.Errorf("err = %v, want ErrNotFitted", err)
	}
}

func TestSeparableAccuracy(t *testing.T) {
	x, y := separableSet(600, 1)

	f := New(Config{Trees: 50, MaxDepth: 8, Seed: 42})
	if err := f.Fit(x, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	correct := 0
	tx, ty := separableSet(200, 2)
	for i, row := range tx {
		p, err := f.ProbOne(row)
		if err != nil {
			t.Fatalf("ProbOne: %v", err)
		}

		pred := 0
		if p >= 0.5 {
			pred = 1
		}
		if pred == ty[i] {
			correct++
		}
	}

	if acc := float64(correct) / float64(len(tx)); acc < 0.9 {
		t.Errorf("held-out accuracy %v, want >= 0.9", acc)
	}
}

func TestDeterministicUnderFixedSeed(t *testing.T) {
	x, y := separableSet(300, 3)

	a := New(DefaultConfig())
	if err := a.Fit(x, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	b := New(DefaultConfig())
	if err := b.Fit(x, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	for _, row := range x[:50] {
		pa, _ := a.ProbOne(row)
		pb, _ := b.ProbOne(row)
		if pa != pb {
			t.Fatalf("same seed, different predictions: %v vs %v", pa, pb)
		}
	}

	for i := range a.Importances {
		if a.Importances[i] != b.Importances[i] {
			t.Fatalf("same seed, different importances: %v vs %v", a.Importances, b.Importances)
		}
	}
}

func TestImportancesNormalized(t *testing.T) {
	x, y := separableSet(400, 4)

	f := New(DefaultConfig())
	if err := f.Fit(x, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	sum := 0.0
	for _, v := range f.Importances {
		if v < 0 {
			t.Errorf("negative importance %v", v)
		}
		sum += v
	}

	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("importances sum to %v, want 1", sum)
	}
}

func TestFeatureDimensionCheck(t *testing.T) {
	x, y := separableSet(100, 5)

	f := New(Config{Trees: 10})
	if err := f.Fit(x, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	if _, err := f.ProbOne([]float64{1, 2, 3}); err == nil {
		t.Error("wrong sample dimension should fail")
	}
}

func TestGobRoundTrip(t *testing.T) {
	x, y := separableSet(300, 6)

	f := New(DefaultConfig())
	if err := f.Fit(x, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(f); err != nil {
		t.Fatalf("encode: %v", err)
	}

	var loaded Forest
	if err := gob.NewDecoder(&buf).Decode(&loaded); err != nil {
		t.Fatalf("decode: %v", err)
	}

	for _, row := range x[:50] {
		want, _ := f.ProbOne(row)
		got, err := loaded.ProbOne(row)
		if err != nil {
			t.Fatalf("loaded ProbOne: %v", err)
		}
		if got != want {
			t.Fatalf("round-trip prediction %v, want %v", got, want)
		}
	}
}

func TestPureClassTrainingSet(t *testing.T) {
	x := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	y := []int{1, 1, 1}

	f := New(Config{Trees: 5})
	if err := f.Fit(x, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	p, err := f.ProbOne([]float64{2, 3})
	if err != nil {
		t.Fatalf("ProbOne: %v", err)
	}

	if p != 1 {
		t.Errorf("pure class-1 training should predict 1, got %v", p)
	}
}
