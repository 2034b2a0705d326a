// Package main is the entry point for locheck, the localization verification
// engine. It prints the report on stdout and exits 0 when every check passes,
// 1 when any check fails and 2 on invalid invocation or configuration.
//
// Import Path: wsl-ui.dev/locheck/cmd/locheck
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"wsl-ui.dev/locheck/internal/app"
	"wsl-ui.dev/locheck/internal/config"
	"wsl-ui.dev/locheck/internal/pkg/logger"
	"wsl-ui.dev/locheck/internal/report"
)

// Set at build time via -ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

const appName = "locheck"

const (
	exitPass  = 0
	exitFail  = 1
	exitUsage = 2
)

// errChecksFailed marks a completed run with at least one failing check.
var errChecksFailed = errors.New("checks failed")

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	cmd := rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		return exitPass
	case errors.Is(err, errChecksFailed):
		return exitFail
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
}

type flags struct {
	configPath  string
	localesDir  string
	sourceDir   string
	reference   string
	format      string
	maxExamples int
	logLevel    string
}

func rootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Verify translation resources against the reference locale",
		Long: `locheck loads every locale's namespace files, compares them with the
reference locale and scans the UI sources for hardcoded strings.

Checks: structural integrity, key completeness, interpolation variables,
placeholder leakage, untranslated strings, translation quality and source
coverage.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.Flags(), f, cmd.OutOrStdout())
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "Config file path (YAML)")
	fs.StringVar(&f.localesDir, "locales-dir", "", "Locale resource directory")
	fs.StringVar(&f.sourceDir, "source-dir", "", "UI source directory to scan (empty disables the scan)")
	fs.StringVar(&f.reference, "reference", "", "Reference locale")
	fs.StringVar(&f.format, "format", "", "Report format (text, json)")
	fs.IntVar(&f.maxExamples, "max-examples", 0, "Issues printed per check in text output")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func run(ctx context.Context, fs *pflag.FlagSet, f flags, stdout io.Writer) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlags(fs, f, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	// Init is once-only; the level still follows this invocation.
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("set log level: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting locheck",
		zap.String("version", Version),
		zap.String("locales_dir", cfg.Locales.Dir),
		zap.String("source_dir", cfg.Source.Dir),
	)

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.Bootstrap(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	defer application.Shutdown()

	rep, err := application.Run(ctx)
	if err != nil {
		return err
	}

	if err := report.Write(stdout, rep, report.Options{
		Format:      cfg.Report.Format,
		MaxExamples: cfg.Report.MaxExamples,
	}); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if !rep.Passed {
		return errChecksFailed
	}
	return nil
}

// applyFlags overrides configuration with explicitly set flags only, so an
// unset flag never masks a file or environment value.
func applyFlags(fs *pflag.FlagSet, f flags, cfg *config.Config) {
	if fs.Changed("locales-dir") {
		cfg.Locales.Dir = f.localesDir
	}
	if fs.Changed("source-dir") {
		cfg.Source.Dir = f.sourceDir
	}
	if fs.Changed("reference") {
		cfg.Locales.Reference = f.reference
	}
	if fs.Changed("format") {
		cfg.Report.Format = f.format
	}
	if fs.Changed("max-examples") {
		cfg.Report.MaxExamples = f.maxExamples
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
}
