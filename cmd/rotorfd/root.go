package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cwbudde/rotorfd/diagnose/bearing"
	"github.com/cwbudde/rotorfd/diagnose/pipeline"
	"github.com/cwbudde/rotorfd/dsp/core"
	"github.com/cwbudde/rotorfd/dsp/signal"
	"github.com/cwbudde/rotorfd/internal/config"
	"github.com/cwbudde/rotorfd/internal/logging"
	"github.com/cwbudde/rotorfd/internal/report"
	"github.com/cwbudde/rotorfd/internal/waveio"
)

// stdoutPath selects standard output for --out.
const stdoutPath = "-"

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"input":       "input",
	"fs":          "fs",
	"duration":    "duration",
	"band-low":    "band_low",
	"band-high":   "band_high",
	"taps":        "taps",
	"nperseg":     "nperseg",
	"geom":        "geom",
	"order":       "order",
	"q15simulate": "q15simulate",
	"fixed":       "fixed",
	"fft-backend": "fft_backend",
	"out":         "out",
	"format":      "format",
	"name":        "name",
	"debug":       "debug",
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "rotorfd",
		Short: "Bearing fault detection from vibration envelopes",
		Long: `rotorfd band-passes a vibration capture, extracts its envelope, estimates the
envelope spectrum with Welch's method and looks for the bearing defect lines
predicted from the geometry. With a tachometer channel the envelope can also
be resampled to the shaft angle for order analysis.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Init(v, cfgFile); err != nil {
				return err
			}
			s, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(s, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default ./rotorfd.yaml or $XDG_CONFIG_HOME/rotorfd/rotorfd.yaml)")
	registerFlags(flags)
	for name, key := range flagKeys {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}

	cmd.AddCommand(newInitConfigCmd())
	return cmd
}

func registerFlags(flags *pflag.FlagSet) {
	pc := pipeline.DefaultConfig()

	flags.StringP("input", "i", "", "CSV capture with acc[,tach] rows; empty synthesizes a fault signal")
	flags.Float64("fs", pc.SampleRate, "sample rate in Hz")
	flags.Float64("duration", 4, "synthetic signal duration in seconds")
	flags.Float64("band-low", pc.BandLowHz, "band-pass lower edge in Hz")
	flags.Float64("band-high", pc.BandHighHz, "band-pass upper edge in Hz")
	flags.Int("taps", pc.Taps, "band-pass FIR length (odd)")
	flags.Int("nperseg", pc.SegmentLength, "requested Welch segment length")
	flags.String("geom", "", "bearing geometry as n=..,d=..,D=..,beta_deg=..,rpm=..")
	flags.Bool("order", false, "enable order tracking from the tachometer channel")
	flags.Bool("q15simulate", false, "report Q15 headroom of the raw samples")
	flags.Bool("fixed", false, "run the Q15 fixed-point path")
	flags.String("fft-backend", "radix2", "float FFT backend: radix2 or planned")
	flags.StringP("out", "o", "diagnostic.json", "report path, - for standard output")
	flags.StringP("format", "f", "json", "report format: json or yaml")
	flags.String("name", "run", "run label")
	flags.BoolP("debug", "d", false, "enable debug logging")
}

func newInitConfigCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write the default configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.AppName + "." + config.ConfigType
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

// run performs one analysis and writes the report.
func run(s *config.Settings, stdout, stderr io.Writer) error {
	log := logging.New(stderr, s.Debug)
	defer func() { _ = log.Sync() }()

	g := s.Bearing()
	wf, err := acquire(s, g)
	if err != nil {
		return err
	}
	log.Info("waveform ready",
		zap.String("source", sourceName(s.Input)),
		zap.Int("samples", len(wf.Samples)),
		zap.Bool("tach", wf.Tach != nil),
		zap.Float64("fs", wf.SampleRate))

	pc := s.Pipeline()
	an, err := pipeline.NewAnalyzer(pc, log)
	if err != nil {
		return err
	}
	res, err := an.Analyze(wf.Samples, wf.Tach, g)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	doc := report.Build(report.Input{
		Name:      s.Name,
		Duration:  wf.Duration(),
		Geometry:  g,
		Config:    pc,
		Timestamp: time.Now(),
	}, res)

	format, err := report.ParseFormat(s.Format)
	if err != nil {
		return err
	}
	if err := writeReport(s.Out, stdout, doc, format); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(stderr, "Wrote %s (fault=%s, conf=%.2f)\n", s.Out, res.Call.Class, res.Call.Confidence)
	return nil
}

// acquire loads the capture or synthesizes an outer-race fault at the
// predicted BPFO with a shaft-rate tachometer.
func acquire(s *config.Settings, g bearing.Geometry) (waveio.Waveform, error) {
	if s.Input != "" {
		return waveio.LoadCSVFile(s.Input, s.SampleRate)
	}

	gen := signal.NewGenerator(core.WithSampleRate(s.SampleRate))
	f := g.Frequencies()
	acc, tach, err := gen.FaultSignal(signal.DefaultFaultScenario(f.BPFO, f.Shaft), gen.Samples(s.Duration))
	if err != nil {
		return waveio.Waveform{}, fmt.Errorf("synthesize: %w", err)
	}
	return waveio.Waveform{Samples: acc, Tach: tach, SampleRate: s.SampleRate}, nil
}

func writeReport(path string, stdout io.Writer, doc report.Document, format report.Format) error {
	if path == stdoutPath {
		return report.Write(stdout, doc, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := report.Write(f, doc, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	return nil
}

func sourceName(input string) string {
	if input == "" {
		return "synthetic"
	}
	return input
}
