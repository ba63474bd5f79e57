package pipeline

import (
	"github.com/cwbudde/rotorfd/diagnose/bearing"
	"github.com/cwbudde/rotorfd/diagnose/condition"
	"github.com/cwbudde/rotorfd/diagnose/decision"
	"github.com/cwbudde/rotorfd/diagnose/peak"
	"github.com/cwbudde/rotorfd/dsp/fixed"
)

// OrderResult holds the order-domain pass. Tracked is false when order
// tracking was disabled, no tachometer was supplied, or the tachometer did
// not yield enough revolutions; Hits are then all absent.
type OrderResult struct {
	Tracked              bool
	Edges                int
	SamplesPerRevolution int
	SegmentLength        int
	Predictions          bearing.Frequencies
	Hits                 peak.Hits
}

// Result is the outcome of one analysis.
type Result struct {
	Predictions   bearing.Frequencies
	Hz            peak.Hits
	Order         OrderResult
	Condition     condition.Indicators // of the raw samples
	Monitor       *fixed.Monitor       // nil unless Q15 simulation was enabled
	Call          decision.FaultCall
	SegmentLength int
	PaddedLength  int
}
