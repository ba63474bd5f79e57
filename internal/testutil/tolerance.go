package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails tb unless got and want have the same
// length and every pair is within eps.
func RequireSliceNearlyEqual(tb testing.TB, got, want []float64, eps float64) {
	tb.Helper()
	if len(got) != len(want) {
		tb.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
		return
	}
	for i := range got {
		if diff := math.Abs(got[i] - want[i]); !(diff <= eps) {
			tb.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
			return
		}
	}
}

// RequireSliceRelative fails tb if any element differs from want by more
// than rel·max(|want|, floor).
func RequireSliceRelative(tb testing.TB, got, want []float64, rel, floor float64) {
	tb.Helper()
	if len(got) != len(want) {
		tb.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
		return
	}
	for i := range got {
		tol := rel * math.Max(math.Abs(want[i]), floor)
		if diff := math.Abs(got[i] - want[i]); !(diff <= tol) {
			tb.Fatalf("index %d: got %v, want %v (diff %v > %v)", i, got[i], want[i], diff, tol)
			return
		}
	}
}

// RequireFinite fails tb if any element is NaN or ±Inf.
func RequireFinite(tb testing.TB, data []float64) {
	tb.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			tb.Fatalf("index %d: non-finite value %v", i, v)
			return
		}
	}
}
