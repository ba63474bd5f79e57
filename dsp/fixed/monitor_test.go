package fixed

import "testing"

func TestScan(t *testing.T) {
	m := Scan([]float64{0.2, -0.9, 1.0, -1.5, 0.999})
	if m.PeakAbs != 1.5 {
		t.Fatalf("PeakAbs = %v, want 1.5", m.PeakAbs)
	}
	if m.Overflows != 2 {
		t.Fatalf("Overflows = %d, want 2", m.Overflows)
	}
}

func TestScanClampsPeak(t *testing.T) {
	m := Scan([]float64{0.5, 7, -3})
	if m.PeakAbs != 1.999 {
		t.Fatalf("PeakAbs = %v, want 1.999", m.PeakAbs)
	}
	if m.Overflows != 2 {
		t.Fatalf("Overflows = %d, want 2", m.Overflows)
	}
}

func TestScanEmpty(t *testing.T) {
	m := Scan(nil)
	if m != (Monitor{}) {
		t.Fatalf("Scan(nil) = %#v, want zero monitor", m)
	}
}
