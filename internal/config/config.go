// Package config loads rotorfd settings from defaults, a YAML file,
// ROTORFD_* environment variables and command line flags, in increasing
// precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/cwbudde/rotorfd/diagnose/bearing"
	"github.com/cwbudde/rotorfd/diagnose/pipeline"
	"github.com/cwbudde/rotorfd/dsp/core"
	"github.com/cwbudde/rotorfd/dsp/fft"
	"github.com/cwbudde/rotorfd/internal/report"
)

const (
	AppName    = "rotorfd"
	EnvPrefix  = "ROTORFD"
	ConfigType = "yaml"

	DefaultConfig = `# rotorfd configuration

# Acquisition
fs: 51200              # sample rate in Hz
duration: 4            # synthetic signal length in seconds (ignored with input)
input: ""              # CSV file with acc[,tach] rows; empty synthesizes a signal

# Processing
band_low: 4000         # band-pass lower edge in Hz
band_high: 8000        # band-pass upper edge in Hz
taps: 257              # FIR length, odd
nperseg: 65536         # requested Welch segment, shrunk to fit the signal
fft_backend: radix2    # radix2 or planned
order: false           # order tracking from the tachometer channel
q15simulate: false     # scan raw samples for Q15 headroom
fixed: false           # run the Q15 fixed-point path

# Bearing
geometry:
  n: 8                 # rolling elements
  ball_diameter: 0.010 # d
  pitch_diameter: 0.050 # D, same unit as d
  beta_deg: 0          # contact angle
  rpm: 1800            # shaft speed
geom: ""               # overrides as n=..,d=..,D=..,beta_deg=..,rpm=..

# Output
out: diagnostic.json
format: json           # json or yaml
name: run
debug: false
`
)

// Geometry holds the bearing keys. Viper keys are case-insensitive, so the
// diameters use descriptive names instead of d and D.
type Geometry struct {
	N             int     `mapstructure:"n"`
	BallDiameter  float64 `mapstructure:"ball_diameter"`
	PitchDiameter float64 `mapstructure:"pitch_diameter"`
	BetaDeg       float64 `mapstructure:"beta_deg"`
	RPM           float64 `mapstructure:"rpm"`
}

// Settings holds all application configuration.
type Settings struct {
	SampleRate float64 `mapstructure:"fs"`
	Duration   float64 `mapstructure:"duration"`
	Input      string  `mapstructure:"input"`

	BandLow       float64 `mapstructure:"band_low"`
	BandHigh      float64 `mapstructure:"band_high"`
	Taps          int     `mapstructure:"taps"`
	SegmentLength int     `mapstructure:"nperseg"`
	FFTBackend    string  `mapstructure:"fft_backend"`
	Order         bool    `mapstructure:"order"`
	Q15Simulate   bool    `mapstructure:"q15simulate"`
	Fixed         bool    `mapstructure:"fixed"`

	Geometry Geometry `mapstructure:"geometry"`
	Geom     string   `mapstructure:"geom"`

	Out    string `mapstructure:"out"`
	Format string `mapstructure:"format"`
	Name   string `mapstructure:"name"`
	Debug  bool   `mapstructure:"debug"`
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	pc := pipeline.DefaultConfig()
	g := bearing.DefaultGeometry()

	v.SetDefault("fs", pc.SampleRate)
	v.SetDefault("duration", 4.0)
	v.SetDefault("input", "")
	v.SetDefault("band_low", pc.BandLowHz)
	v.SetDefault("band_high", pc.BandHighHz)
	v.SetDefault("taps", pc.Taps)
	v.SetDefault("nperseg", pc.SegmentLength)
	v.SetDefault("fft_backend", string(fft.BackendRadix2))
	v.SetDefault("order", false)
	v.SetDefault("q15simulate", false)
	v.SetDefault("fixed", false)
	v.SetDefault("geometry.n", g.Elements)
	v.SetDefault("geometry.ball_diameter", g.BallDiameter)
	v.SetDefault("geometry.pitch_diameter", g.PitchDiameter)
	v.SetDefault("geometry.beta_deg", g.ContactAngleDeg)
	v.SetDefault("geometry.rpm", g.ShaftRPM)
	v.SetDefault("geom", "")
	v.SetDefault("out", "diagnostic.json")
	v.SetDefault("format", string(report.FormatJSON))
	v.SetDefault("name", "run")
	v.SetDefault("debug", false)
}

// Init sets defaults, environment binding and reads the config file.
// An explicit configFile must exist; otherwise rotorfd.yaml is searched in
// the current directory, then the user config directory, and a missing file
// is not an error.
func Init(v *viper.Viper, configFile string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(AppName)
		v.SetConfigType(ConfigType)
		v.AddConfigPath(".")

		configDir, err := os.UserConfigDir()
		if err != nil {
			configDir = filepath.Join(os.Getenv("HOME"), ".config")
		}
		v.AddConfigPath(filepath.Join(configDir, AppName))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// WriteDefault writes the commented default configuration to path. It
// refuses to replace an existing file unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(DefaultConfig), 0o644); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}

// Load returns the validated settings held by v, with the geom overrides
// applied to the geometry keys.
func Load(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := s.OverlayGeometry(s.Geom); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &s, nil
}

// Validate checks that all settings are within acceptable ranges.
func (s *Settings) Validate() error {
	var errs []error

	if s.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("fs must be > 0, got %v", s.SampleRate))
	}
	if s.Input == "" && s.Duration <= 0 {
		errs = append(errs, fmt.Errorf("duration must be > 0, got %v", s.Duration))
	}
	if s.BandLow <= 0 || s.BandLow >= s.BandHigh {
		errs = append(errs, fmt.Errorf("band must satisfy 0 < band_low < band_high, got [%v, %v]", s.BandLow, s.BandHigh))
	}
	if nyq := (core.Acquisition{SampleRate: s.SampleRate}).Nyquist(); s.SampleRate > 0 && s.BandHigh >= nyq {
		errs = append(errs, fmt.Errorf("band_high (%v Hz) must be below Nyquist (%v Hz)", s.BandHigh, nyq))
	}
	if s.Taps < 3 || s.Taps%2 == 0 {
		errs = append(errs, fmt.Errorf("taps must be odd and >= 3, got %d", s.Taps))
	}
	if s.SegmentLength < 1 {
		errs = append(errs, fmt.Errorf("nperseg must be >= 1, got %d", s.SegmentLength))
	}
	if _, err := fft.NewTransformer(fft.Backend(s.FFTBackend)); err != nil {
		errs = append(errs, err)
	}
	if _, err := report.ParseFormat(s.Format); err != nil {
		errs = append(errs, err)
	}
	if s.Out == "" {
		errs = append(errs, errors.New("out must not be empty"))
	}
	if err := s.Bearing().Validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Bearing returns the configured geometry.
func (s *Settings) Bearing() bearing.Geometry {
	return bearing.Geometry{
		Elements:        s.Geometry.N,
		BallDiameter:    s.Geometry.BallDiameter,
		PitchDiameter:   s.Geometry.PitchDiameter,
		ContactAngleDeg: s.Geometry.BetaDeg,
		ShaftRPM:        s.Geometry.RPM,
	}
}

// Pipeline returns the analysis configuration.
func (s *Settings) Pipeline() pipeline.Config {
	return pipeline.ApplyOptions(
		pipeline.WithSampleRate(s.SampleRate),
		pipeline.WithBand(s.BandLow, s.BandHigh),
		pipeline.WithTaps(s.Taps),
		pipeline.WithSegmentLength(s.SegmentLength),
		pipeline.WithOrderTracking(s.Order),
		pipeline.WithQ15Simulate(s.Q15Simulate),
		pipeline.WithFixed(s.Fixed),
		pipeline.WithBackend(fft.Backend(s.FFTBackend)),
	)
}

// OverlayGeometry applies a comma-separated key=value list with the keys
// n, d, D, beta_deg and rpm on top of the configured geometry. Keys are
// case-sensitive.
func (s *Settings) OverlayGeometry(list string) error {
	for field := range strings.SplitSeq(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		key, val, ok := strings.Cut(field, "=")
		if !ok {
			return fmt.Errorf("geom: missing '=' in %q", field)
		}
		key = strings.TrimSpace(key)
		x, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return fmt.Errorf("geom: %s: %w", key, err)
		}
		switch key {
		case "n":
			if x != float64(int(x)) {
				return fmt.Errorf("geom: n must be an integer, got %v", x)
			}
			s.Geometry.N = int(x)
		case "d":
			s.Geometry.BallDiameter = x
		case "D":
			s.Geometry.PitchDiameter = x
		case "beta_deg":
			s.Geometry.BetaDeg = x
		case "rpm":
			s.Geometry.RPM = x
		default:
			return fmt.Errorf("geom: unknown key %q", key)
		}
	}
	return nil
}
