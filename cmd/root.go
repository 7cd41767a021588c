// Package cmd implements the openmeteo command tree: one subcommand per
// API endpoint plus geocoding and version. All state lives in an app
// struct captured by the command closures; there are no package-level
// mutable globals.
package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/lstpsche/openmeteo-cli/config"
	"github.com/lstpsche/openmeteo-cli/endpoint"
	"github.com/lstpsche/openmeteo-cli/errs"
	"github.com/lstpsche/openmeteo-cli/render"
	"github.com/lstpsche/openmeteo-cli/request"
)

// version is set at build time via -ldflags.
var version = "dev"

// globalFlags holds the persistent flag values for one invocation.
type globalFlags struct {
	apiKey     string
	configPath string
	format     string
	porcelain  bool
	llm        bool
	raw        bool
	verbose    bool
	noColor    bool
	timeout    time.Duration
}

// app wires the dependencies every command needs. Tests construct it
// with buffers and a fixed clock; Execute uses the real thing.
type app struct {
	flags   globalFlags
	cfg     config.Config
	log     *zap.Logger
	out     io.Writer
	errOut  io.Writer
	now     func() time.Time
	fetcher request.Fetcher
	isTTY   func() bool
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	a := &app{
		out:    os.Stdout,
		errOut: os.Stderr,
		now:    time.Now,
		isTTY: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
	root := newRootCmd(a)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(a.errOut, "error: %s\n", err)
		return errs.ExitCode(err)
	}
	return errs.ExitOK
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "openmeteo",
		Short: "openmeteo - Open-Meteo weather API client",
		Long: `openmeteo is a command-line client for the Open-Meteo API family:
weather forecasts, historical data, ensemble and climate models, marine
weather, air quality, flood discharge, elevation and satellite radiation.

Locations can be given as coordinates (--lat/--lon) or as a city name
(--city, optionally with an ISO country code in --country).

Quick start:
  openmeteo forecast --current --city Berlin
  openmeteo forecast --daily --forecast-days 7 --lat 52.52 --lon 13.41
  openmeteo air-quality --current --city London --country GB`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.apiKey, "api-key", "", "commercial API key")
	pf.StringVar(&a.flags.configPath, "config", "", "config file path")
	pf.StringVar(&a.flags.format, "format", "", "output format (human, porcelain, llm, raw)")
	pf.BoolVar(&a.flags.porcelain, "porcelain", false, "machine-readable key=value output")
	pf.BoolVar(&a.flags.llm, "llm", false, "compact tabular output")
	pf.BoolVar(&a.flags.raw, "raw", false, "raw JSON passthrough")
	pf.BoolVar(&a.flags.verbose, "verbose", false, "log request details to stderr")
	pf.BoolVar(&a.flags.noColor, "no-color", false, "disable colors and emoji")
	pf.DurationVar(&a.flags.timeout, "timeout", 0, "HTTP request timeout")

	for _, spec := range endpoint.All() {
		switch spec.Name {
		case "geocoding":
			root.AddCommand(newGeocodingCmd(a))
		case "elevation":
			root.AddCommand(newElevationCmd(a, spec))
		default:
			root.AddCommand(newEndpointCmd(a, spec))
		}
	}
	root.AddCommand(newVersionCmd(a))

	return root
}

// setup resolves configuration and constructs the shared dependencies.
// Runs once per invocation before the subcommand.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.flags.configPath
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path, explicit)
	if err != nil {
		return errs.Usagef("%s", err)
	}

	if a.flags.apiKey != "" {
		cfg.APIKey = a.flags.apiKey
	}
	if a.flags.verbose {
		cfg.Verbose = true
	}
	if a.flags.noColor {
		cfg.NoColor = true
	}
	if a.flags.timeout > 0 {
		cfg.Timeout = a.flags.timeout
	}

	format, err := a.resolveFormat(cfg.Format)
	if err != nil {
		return err
	}
	cfg.Format = format

	a.cfg = cfg
	if a.log == nil {
		a.log = config.NewLogger(cfg.Verbose)
	}
	if a.fetcher == nil {
		f := request.NewFetcher(a.log)
		f.SetTimeout(cfg.Timeout)
		// Open-Meteo's free tier tolerates short bursts; the limiter
		// keeps the resolver call plus the data call polite.
		a.fetcher = request.NewRateLimitedFetcher(f, 5, 5)
	}
	return nil
}

// resolveFormat merges the format shorthands with --format; the boolean
// shorthands are mutually exclusive.
func (a *app) resolveFormat(fromConfig render.Format) (render.Format, error) {
	set := 0
	format := fromConfig
	if a.flags.porcelain {
		set++
		format = render.FormatPorcelain
	}
	if a.flags.llm {
		set++
		format = render.FormatCompact
	}
	if a.flags.raw {
		set++
		format = render.FormatRaw
	}
	if set > 1 {
		return format, errs.Usagef("--porcelain, --llm and --raw are mutually exclusive")
	}
	if a.flags.format != "" {
		if set > 0 {
			return format, errs.Usagef("--format conflicts with --porcelain/--llm/--raw")
		}
		parsed, err := config.ParseFormat(a.flags.format)
		if err != nil {
			return format, errs.Usagef("%s", err)
		}
		format = parsed
	}
	return format, nil
}

// renderOptions derives presentation switches: color only on a terminal
// and only for the formats meant for eyes.
func (a *app) renderOptions() render.Options {
	color := !a.cfg.NoColor && a.isTTY != nil && a.isTTY()
	if a.cfg.Format == render.FormatPorcelain || a.cfg.Format == render.FormatCompact {
		color = false
	}
	return render.Options{Color: color}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.out, "openmeteo %s\n", version)
			return nil
		},
	}
}
