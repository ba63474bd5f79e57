package peak

import (
	"github.com/cwbudde/rotorfd/diagnose/bearing"
	"github.com/cwbudde/rotorfd/dsp/spectrum"
)

// Settings bundles the matching thresholds. Tolerance is relative to the
// target frequency; MaxHarmonic is the highest multiple tried by
// [MatchHarmonics].
type Settings struct {
	Tolerance   float64
	MinSNRDB    float64
	MaxHarmonic int
}

// DefaultSettings returns 2% tolerance, 6 dB minimum SNR and fallback up to
// the third harmonic.
func DefaultSettings() Settings {
	return Settings{
		Tolerance:   0.02,
		MinSNRDB:    6,
		MaxHarmonic: 3,
	}
}

// MatchHarmonics matches target and, if that is not found, each multiple
// 2·target through MaxHarmonic·target, returning the first found hit with
// its harmonic recorded. If nothing is found the fundamental's hit is
// returned.
func MatchHarmonics(s spectrum.Spectrum, target float64, cfg Settings) Hit {
	hit := Match(s, target, cfg.Tolerance, cfg.MinSNRDB)
	if hit.Found {
		return hit
	}
	for h := 2; h <= cfg.MaxHarmonic; h++ {
		if hh := Match(s, float64(h)*target, cfg.Tolerance, cfg.MinSNRDB); hh.Found {
			hh.Harmonic = h
			return hh
		}
	}
	return hit
}

// Hits holds one result per characteristic line, indexed by [bearing.Line].
type Hits [len(bearing.Lines)]Hit

// Detect matches every characteristic line of predicted against s. BPFO and
// BPFI fall back to their harmonics; BSF and FTF are matched at the
// fundamental only.
func Detect(s spectrum.Spectrum, predicted bearing.Frequencies, cfg Settings) Hits {
	var hits Hits
	for _, l := range bearing.Lines {
		target := predicted.Line(l)
		switch l {
		case bearing.BPFO, bearing.BPFI:
			hits[l] = MatchHarmonics(s, target, cfg)
		default:
			hits[l] = Match(s, target, cfg.Tolerance, cfg.MinSNRDB)
		}
	}
	return hits
}
