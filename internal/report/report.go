// Package report renders an analysis result as a JSON or YAML diagnostic
// document.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/rotorfd/diagnose/bearing"
	"github.com/cwbudde/rotorfd/diagnose/peak"
	"github.com/cwbudde/rotorfd/diagnose/pipeline"
)

// Format selects the document encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Document is the diagnostic report.
type Document struct {
	Run             Run         `json:"run" yaml:"run"`
	Signal          Signal      `json:"signal" yaml:"signal"`
	Geometry        Geometry    `json:"geometry" yaml:"geometry"`
	PredictionsHz   Predictions `json:"predictions_hz" yaml:"predictions_hz"`
	DetectionsHz    Detections  `json:"detections_hz" yaml:"detections_hz"`
	DetectionsOrder *Detections `json:"detections_order,omitempty" yaml:"detections_order,omitempty"`
	Condition       Condition   `json:"condition" yaml:"condition"`
	Q15             *Q15        `json:"q15,omitempty" yaml:"q15,omitempty"`
	Decision        Decision    `json:"decision" yaml:"decision"`
}

// Run identifies the analysis.
type Run struct {
	Timestamp int64  `json:"timestamp" yaml:"timestamp"`
	Name      string `json:"name" yaml:"name"`
}

// Signal describes the input and the processing settings.
type Signal struct {
	SampleRateHz  float64    `json:"fs_hz" yaml:"fs_hz"`
	DurationS     float64    `json:"duration_s" yaml:"duration_s"`
	Window        string     `json:"window" yaml:"window"`
	SegmentLength int        `json:"nperseg" yaml:"nperseg"`
	BandHz        [2]float64 `json:"band_hz" yaml:"band_hz,flow"`
	OrderTracking bool       `json:"order_tracking" yaml:"order_tracking"`
	Fixed         bool       `json:"fixed" yaml:"fixed"`
}

// Geometry echoes the bearing description.
type Geometry struct {
	N       int     `json:"n" yaml:"n"`
	D       float64 `json:"d" yaml:"d"`
	Pitch   float64 `json:"D" yaml:"D"`
	BetaDeg float64 `json:"beta_deg" yaml:"beta_deg"`
	RPM     float64 `json:"rpm" yaml:"rpm"`
}

// Predictions lists the expected line frequencies.
type Predictions struct {
	Shaft float64 `json:"fr" yaml:"fr"`
	BPFO  float64 `json:"BPFO" yaml:"BPFO"`
	BPFI  float64 `json:"BPFI" yaml:"BPFI"`
	BSF   float64 `json:"BSF" yaml:"BSF"`
	FTF   float64 `json:"FTF" yaml:"FTF"`
}

// Detections holds one entry per line; nil renders as null.
type Detections struct {
	BPFO *Detection `json:"BPFO" yaml:"BPFO"`
	BPFI *Detection `json:"BPFI" yaml:"BPFI"`
	BSF  *Detection `json:"BSF" yaml:"BSF"`
	FTF  *Detection `json:"FTF" yaml:"FTF"`
}

// Detection is a found line. In the order domain Freq and DF are in orders.
type Detection struct {
	Freq     float64 `json:"freq" yaml:"freq"`
	SNRDB    float64 `json:"snr_db" yaml:"snr_db"`
	DF       float64 `json:"df" yaml:"df"`
	Harmonic int     `json:"harmonic" yaml:"harmonic"`
}

// Condition holds time-domain indicators of the raw acceleration.
type Condition struct {
	RMS         float64 `json:"rms" yaml:"rms"`
	Peak        float64 `json:"peak" yaml:"peak"`
	CrestFactor float64 `json:"crest_factor" yaml:"crest_factor"`
	Kurtosis    float64 `json:"kurtosis" yaml:"kurtosis"`
	Skewness    float64 `json:"skewness" yaml:"skewness"`
}

// Q15 summarizes the fixed-point headroom scan.
type Q15 struct {
	PeakAbs        float64 `json:"peak_abs" yaml:"peak_abs"`
	OverflowEvents int     `json:"overflow_events" yaml:"overflow_events"`
}

// Decision is the fault call.
type Decision struct {
	FaultClass string  `json:"fault_class" yaml:"fault_class"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
	Rationale  string  `json:"rationale" yaml:"rationale"`
}

// Input carries what Build needs beyond the result.
type Input struct {
	Name      string
	Duration  float64
	Geometry  bearing.Geometry
	Config    pipeline.Config
	Timestamp time.Time
}

// Build assembles the document for one analysis.
func Build(in Input, res pipeline.Result) Document {
	cfg := in.Config
	doc := Document{
		Run: Run{Timestamp: in.Timestamp.Unix(), Name: in.Name},
		Signal: Signal{
			SampleRateHz:  cfg.SampleRate,
			DurationS:     in.Duration,
			Window:        "hann",
			SegmentLength: res.SegmentLength,
			BandHz:        [2]float64{cfg.BandLowHz, cfg.BandHighHz},
			OrderTracking: res.Order.Tracked,
			Fixed:         cfg.Fixed,
		},
		Geometry: Geometry{
			N:       in.Geometry.Elements,
			D:       in.Geometry.BallDiameter,
			Pitch:   in.Geometry.PitchDiameter,
			BetaDeg: in.Geometry.ContactAngleDeg,
			RPM:     in.Geometry.ShaftRPM,
		},
		PredictionsHz: Predictions{
			Shaft: res.Predictions.Shaft,
			BPFO:  res.Predictions.BPFO,
			BPFI:  res.Predictions.BPFI,
			BSF:   res.Predictions.BSF,
			FTF:   res.Predictions.FTF,
		},
		DetectionsHz: detections(res.Hz),
		Condition: Condition{
			RMS:         res.Condition.RMS,
			Peak:        res.Condition.Peak,
			CrestFactor: res.Condition.CrestFactor,
			Kurtosis:    res.Condition.Kurtosis,
			Skewness:    res.Condition.Skewness,
		},
		Decision: Decision{
			FaultClass: res.Call.Class,
			Confidence: res.Call.Confidence,
			Rationale:  res.Call.Rationale,
		},
	}
	if res.Order.Tracked {
		d := detections(res.Order.Hits)
		doc.DetectionsOrder = &d
	}
	if res.Monitor != nil {
		doc.Q15 = &Q15{PeakAbs: res.Monitor.PeakAbs, OverflowEvents: res.Monitor.Overflows}
	}
	return doc
}

func detections(hits peak.Hits) Detections {
	return Detections{
		BPFO: detection(hits[bearing.BPFO]),
		BPFI: detection(hits[bearing.BPFI]),
		BSF:  detection(hits[bearing.BSF]),
		FTF:  detection(hits[bearing.FTF]),
	}
}

// detection maps a hit to its report entry, nil when not found.
func detection(h peak.Hit) *Detection {
	if !h.Found {
		return nil
	}
	return &Detection{Freq: h.Frequency, SNRDB: h.SNRDB, DF: h.BinSpacing, Harmonic: h.Harmonic}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("report: unknown format %q", s)
	}
}

// Write encodes doc to w.
func Write(w io.Writer, doc Document, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("report: unknown format %q", f)
	}
}
