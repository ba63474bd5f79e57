// Package decision turns characteristic-line detections into a fault call.
package decision

import (
	"github.com/cwbudde/rotorfd/diagnose/peak"
	"github.com/cwbudde/rotorfd/dsp/core"
)

// Fault classes.
const (
	ClassOuterRace = "outer_race"
	ClassUnknown   = "unknown"
)

const (
	// Rationale strings reported with each class.
	RationaleOuterRace = "BPFO matched in spectrum"
	RationaleUnknown   = "no characteristic lines matched with SNR"

	snrOffsetDB = 6.0
	snrSpanDB   = 12.0
)

// FaultCall is the outcome of [Decide].
type FaultCall struct {
	Class      string
	Confidence float64
	Rationale  string
}

// Decide scores the outer-race channel. The score is the best SNR among the
// found BPFO hits, mapped linearly from 6 dB (0) to 18 dB (1) and clamped.
// Any positive score yields an outer-race call with that confidence.
func Decide(bpfo ...peak.Hit) FaultCall {
	var score float64
	for _, h := range bpfo {
		if h.Found {
			score = max(score, (h.SNRDB-snrOffsetDB)/snrSpanDB)
		}
	}
	score = core.Clamp(score, 0, 1)

	if score > 0 {
		return FaultCall{Class: ClassOuterRace, Confidence: score, Rationale: RationaleOuterRace}
	}
	return FaultCall{Class: ClassUnknown, Rationale: RationaleUnknown}
}
