package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tsawler/ocrsift"
	"github.com/tsawler/ocrsift/config"
	"github.com/tsawler/ocrsift/internal/logging"
	"github.com/tsawler/ocrsift/internal/report"
	"github.com/tsawler/ocrsift/internal/version"
)

var (
	configFile     string
	logLevel       string
	headerZone     float64
	signatureZone  float64
	lineSpacingMin float64
	lineSpacingMax float64
	workers        int
	quiet          bool
)

var rootCmd = &cobra.Command{
	Use:   "ocrsift",
	Short: "Separate running headers and signatures from FineReader XML",
	Long: `ocrsift reads ABBYY FineReader XML exports and writes two documents:
the body, flattened into <pb/> and <lb/> markers, and a guard file holding
the running headers and signature marks that were removed from it.

Lines that look like headers or signatures but were kept are reported as
warnings.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("ocrsift %s\n", version.String()))

	defaults := config.Default().Classify
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "YAML configuration file")
	flags.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.Float64Var(&headerZone, "header-zone", defaults.HeaderZone, "Fraction of the page height holding header candidates")
	flags.Float64Var(&signatureZone, "signature-zone", defaults.SignatureZone, "Fraction of the page height below which lines are signature candidates")
	flags.Float64Var(&lineSpacingMin, "linespacing-min", defaults.LineSpacingMin, "Lowest paragraph line spacing confirming a header")
	flags.Float64Var(&lineSpacingMax, "linespacing-max", defaults.LineSpacingMax, "Highest paragraph line spacing confirming a header")
	flags.IntVar(&workers, "workers", 0, "Pages processed at once (0 = one per CPU)")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Do not print warnings or written files")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		report.Error(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig builds the effective configuration: defaults, then the
// config file, then the environment, then flags set on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("header-zone") {
		cfg.Classify.HeaderZone = headerZone
	}
	if flags.Changed("signature-zone") {
		cfg.Classify.SignatureZone = signatureZone
	}
	if flags.Changed("linespacing-min") {
		cfg.Classify.LineSpacingMin = lineSpacingMin
	}
	if flags.Changed("linespacing-max") {
		cfg.Classify.LineSpacingMax = lineSpacingMax
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}

	return cfg, cfg.Validate()
}

// process runs the pipeline on one input and writes its outputs. Warnings
// are printed before anything is written.
func process(ctx context.Context, cfg config.Config, logger zerolog.Logger, input, output string, out io.Writer) error {
	res, err := ocrsift.Open(input).
		WithConfig(cfg).
		WithLogger(logger).
		Process(ctx)
	if err != nil {
		return err
	}

	if !quiet {
		report.Warnings(out, res.Warnings())
	}

	paths := ocrsift.OutputPathsFor(input, output)
	if err := res.Write(paths, cfg.Output.Indent); err != nil {
		return err
	}

	if !quiet {
		report.Written(out, "body", paths.Body)
		report.Written(out, "guard", paths.Guard)
		stats := res.Stats()
		report.Summary(out, input, stats.Pages, stats.BodyLines, stats.ExtractedLines, stats.Warnings)
	}
	return nil
}

func newLogger(cfg config.Config, cmd *cobra.Command) zerolog.Logger {
	return logging.New(cfg.Log, cmd.ErrOrStderr())
}
