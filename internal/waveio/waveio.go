// Package waveio loads captured vibration waveforms.
package waveio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/rotorfd/dsp/core"
)

// ErrNoSamples is returned when a source yields no parseable rows.
var ErrNoSamples = errors.New("waveio: no samples")

// Waveform is an acceleration capture with an optional tachometer channel of
// the same length.
type Waveform struct {
	Samples    []float64
	Tach       []float64 // nil when the source had no tachometer column
	SampleRate float64
}

// Duration returns the capture length in seconds.
func (w Waveform) Duration() float64 {
	return core.Acquisition{SampleRate: w.SampleRate}.Duration(len(w.Samples))
}

// LoadCSV reads rows of "acc" or "acc,tach". Surrounding whitespace is
// ignored. Reading stops silently at the first row that is not one or two
// numbers, so trailing junk does not discard the capture.
//
// The tachometer channel is returned when any row had two columns; rows
// without one then carry NaN, which never registers as an edge.
func LoadCSV(r io.Reader, sampleRate float64) (Waveform, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	w := Waveform{SampleRate: sampleRate}
	var tach []float64
	hasTach := false
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				break
			}
			return Waveform{}, fmt.Errorf("waveio: read csv: %w", err)
		}

		acc, t, ok := parseRow(rec)
		if !ok {
			break
		}
		if !math.IsNaN(t) {
			hasTach = true
		}
		w.Samples = append(w.Samples, acc)
		tach = append(tach, t)
	}

	if len(w.Samples) == 0 {
		return Waveform{}, ErrNoSamples
	}
	if hasTach {
		w.Tach = tach
	}
	return w, nil
}

// LoadCSVFile is [LoadCSV] on a file.
func LoadCSVFile(path string, sampleRate float64) (Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return Waveform{}, fmt.Errorf("waveio: %w", err)
	}
	defer f.Close()

	w, err := LoadCSV(f, sampleRate)
	if err != nil {
		return Waveform{}, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// parseRow returns the acceleration and tachometer values of one record;
// the tachometer is NaN for single-column rows.
func parseRow(rec []string) (acc, tach float64, ok bool) {
	if len(rec) < 1 || len(rec) > 2 {
		return 0, 0, false
	}
	acc, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	if len(rec) == 1 {
		return acc, math.NaN(), true
	}
	tach, err = strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	return acc, tach, true
}
