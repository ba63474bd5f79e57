package pipeline

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/rotorfd/diagnose/bearing"
	"github.com/cwbudde/rotorfd/diagnose/condition"
	"github.com/cwbudde/rotorfd/diagnose/decision"
	"github.com/cwbudde/rotorfd/diagnose/order"
	"github.com/cwbudde/rotorfd/diagnose/peak"
	"github.com/cwbudde/rotorfd/dsp/core"
	"github.com/cwbudde/rotorfd/dsp/envelope"
	"github.com/cwbudde/rotorfd/dsp/fft"
	"github.com/cwbudde/rotorfd/dsp/filter/fir"
	"github.com/cwbudde/rotorfd/dsp/fixed"
	"github.com/cwbudde/rotorfd/dsp/numeric"
	"github.com/cwbudde/rotorfd/dsp/spectrum"
)

// ErrNoSamples is returned when the waveform is empty.
var ErrNoSamples = errors.New("pipeline: no samples")

// Analyzer runs the diagnosis with a fixed configuration. It is safe for
// concurrent use.
type Analyzer struct {
	cfg Config
	t   fft.Transformer
	log *zap.Logger
}

// NewAnalyzer validates cfg and prepares the transform backend. A nil
// logger disables logging.
func NewAnalyzer(cfg Config, log *zap.Logger) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t, err := fft.NewTransformer(cfg.Backend)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{cfg: cfg, t: t, log: log}, nil
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Analyze is a one-shot analysis with a configuration built from opts.
func Analyze(samples, tach []float64, g bearing.Geometry, opts ...Option) (Result, error) {
	a, err := NewAnalyzer(ApplyOptions(opts...), nil)
	if err != nil {
		return Result{}, err
	}
	return a.Analyze(samples, tach, g)
}

// Analyze diagnoses one waveform. tach may be nil. Insufficient data for a
// stage leaves the affected detections absent rather than failing the run.
func (a *Analyzer) Analyze(samples, tach []float64, g bearing.Geometry) (Result, error) {
	cfg := a.cfg
	if len(samples) == 0 {
		return Result{}, ErrNoSamples
	}
	if err := g.Validate(); err != nil {
		return Result{}, err
	}

	var res Result
	res.Condition = condition.Compute(samples)
	a.log.Debug("condition indicators",
		zap.Float64("rms", res.Condition.RMS),
		zap.Float64("crest_factor", res.Condition.CrestFactor),
		zap.Float64("kurtosis", res.Condition.Kurtosis))

	if cfg.Q15Simulate {
		m := fixed.Scan(samples)
		res.Monitor = &m
		a.log.Debug("q15 headroom",
			zap.Float64("peak_abs", m.PeakAbs),
			zap.Int("overflow_events", m.Overflows))
	}

	h, err := fir.DesignBandpass(cfg.Taps, cfg.SampleRate, cfg.BandLowHz, cfg.BandHighHz)
	if err != nil {
		return Result{}, err
	}

	var env []float64
	var psd spectrum.Spectrum
	if cfg.Fixed {
		env, psd = a.fixedPath(samples, h, &res)
	} else {
		env, psd = a.floatPath(samples, h, &res)
	}
	a.log.Debug("envelope spectrum",
		zap.Int("samples", len(samples)),
		zap.Int("padded", res.PaddedLength),
		zap.Int("nperseg", res.SegmentLength),
		zap.Float64("df_hz", psd.BinSpacing()),
		zap.Bool("fixed", cfg.Fixed))

	res.Predictions = g.Frequencies()
	res.Hz = peak.Detect(psd, res.Predictions, cfg.Peak)

	if cfg.OrderTracking {
		res.Order = a.trackOrders(env, tach, g)
	}

	res.Call = decision.Decide(res.Hz[bearing.BPFO], res.Order.Hits[bearing.BPFO])
	a.log.Info("analysis complete",
		zap.String("fault_class", res.Call.Class),
		zap.Float64("confidence", res.Call.Confidence),
		zap.Bool("order_tracked", res.Order.Tracked))
	return res, nil
}

func (a *Analyzer) floatPath(samples, h []float64, res *Result) ([]float64, spectrum.Spectrum) {
	y := core.ZeroPad(fir.Convolve(samples, h))
	env := envelope.WithTransformer(a.t, y)

	seg := spectrum.SegmentLength(a.cfg.SegmentLength, len(env))
	res.PaddedLength, res.SegmentLength = len(env), seg
	return env, spectrum.Float64WithTransformer(a.t, env, seg, seg/2, a.cfg.SampleRate)
}

func (a *Analyzer) fixedPath(samples, h []float64, res *Result) ([]float64, spectrum.Spectrum) {
	y := core.ZeroPad(fir.ConvolveQ15(fixed.Quantize(samples), fixed.Quantize(h)))
	envQ := envelope.Extract(numeric.Q15, y)

	seg := spectrum.SegmentLength(a.cfg.SegmentLength, len(envQ))
	res.PaddedLength, res.SegmentLength = len(envQ), seg
	psd := spectrum.Welch(numeric.Q15, envQ, seg, seg/2, a.cfg.SampleRate)
	return fixed.Floats(envQ), psd
}

// trackOrders resamples env into the angle domain and repeats the line
// match in orders.
func (a *Analyzer) trackOrders(env, tach []float64, g bearing.Geometry) OrderResult {
	cfg := a.cfg
	out := OrderResult{SamplesPerRevolution: cfg.SamplesPerRevolution}
	if tach == nil {
		a.log.Debug("order tracking skipped: no tachometer")
		return out
	}

	angle, edges, err := order.Track(env, tach, cfg.SampleRate, cfg.TachThreshold, cfg.SamplesPerRevolution)
	out.Edges = len(edges)
	if err != nil {
		a.log.Debug("order tracking skipped", zap.Error(err))
		return out
	}

	seg := spectrum.SegmentLength(cfg.SegmentLength, len(angle))
	fs := float64(cfg.SamplesPerRevolution)
	var psd spectrum.Spectrum
	if cfg.Fixed {
		psd = spectrum.Welch(numeric.Q15, fixed.Quantize(angle), seg, seg/2, fs)
	} else {
		psd = spectrum.Float64WithTransformer(a.t, angle, seg, seg/2, fs)
	}

	out.Tracked = true
	out.SegmentLength = seg
	out.Predictions = g.Orders()
	out.Hits = peak.Detect(psd, out.Predictions, cfg.Peak)
	a.log.Debug("order spectrum",
		zap.Int("edges", len(edges)),
		zap.Int("samples", len(angle)),
		zap.Int("nperseg", seg))
	return out
}
