package decision

import (
	"math"
	"testing"

	"github.com/cwbudde/rotorfd/diagnose/peak"
)

func TestDecide(t *testing.T) {
	found := func(snr float64) peak.Hit { return peak.Hit{Found: true, SNRDB: snr} }

	tests := []struct {
		name      string
		hits      []peak.Hit
		wantClass string
		wantConf  float64
	}{
		{"nothing", nil, ClassUnknown, 0},
		{"not found", []peak.Hit{{SNRDB: 30}}, ClassUnknown, 0},
		{"at offset", []peak.Hit{found(6)}, ClassUnknown, 0},
		{"midway", []peak.Hit{found(12)}, ClassOuterRace, 0.5},
		{"saturates", []peak.Hit{found(40)}, ClassOuterRace, 1},
		{"best of hz and order", []peak.Hit{found(9), found(15)}, ClassOuterRace, 0.75},
		{"order only", []peak.Hit{{}, found(9)}, ClassOuterRace, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.hits...)
			if got.Class != tt.wantClass {
				t.Fatalf("class: got %q, want %q", got.Class, tt.wantClass)
			}
			if math.Abs(got.Confidence-tt.wantConf) > 1e-12 {
				t.Fatalf("confidence: got %v, want %v", got.Confidence, tt.wantConf)
			}
			wantRationale := RationaleUnknown
			if tt.wantClass == ClassOuterRace {
				wantRationale = RationaleOuterRace
			}
			if got.Rationale != wantRationale {
				t.Fatalf("rationale: got %q", got.Rationale)
			}
		})
	}
}

func TestDecide_ConfidenceInRange(t *testing.T) {
	for snr := -20.0; snr <= 60; snr += 0.5 {
		c := Decide(peak.Hit{Found: true, SNRDB: snr}).Confidence
		if c < 0 || c > 1 {
			t.Fatalf("snr %v: confidence %v outside [0,1]", snr, c)
		}
	}
}
