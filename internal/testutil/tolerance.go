// Package testutil holds assertion and signal helpers shared by the
// package test suites.
package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t unless got and want have the same
// length and every element pair is within eps of each other.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v exceeds %v)", i, got[i], want[i], d, eps)
		}
	}
}

// RequireFinite fails t if data contains a NaN or an infinity.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireWithin fails t unless got is within eps of want.
func RequireWithin(t *testing.T, got, want, eps float64) {
	t.Helper()

	if d := math.Abs(got - want); d > eps {
		t.Fatalf("got %v, want %v (diff %v exceeds %v)", got, want, d, eps)
	}
}
