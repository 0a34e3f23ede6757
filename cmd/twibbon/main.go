package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/moklet-dev/twibbon/internal/config"
	"github.com/moklet-dev/twibbon/internal/errors"
	"github.com/moklet-dev/twibbon/internal/telemetry"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// needsConfig marks commands that load twibbon.json and get tracing.
const needsConfig = "twibbon/config"

// spanExporter overrides the OTLP exporter; set by tests.
var spanExporter sdktrace.SpanExporter

// globals holds state shared by every subcommand.
type globals struct {
	configPath string
	debug      bool
	noColor    bool
	stdout     io.Writer
	stderr     io.Writer
	logger     *slog.Logger
	cfg        *config.Config
	tracing    *telemetry.Provider
}

// loadConfig returns the configuration loaded before the command ran.
// Commands apply their flag overrides and then validate.
func (g *globals) loadConfig() (*config.Config, error) {
	if g.cfg == nil {
		return config.LoadFile(g.configPath)
	}
	return g.cfg, nil
}

// setup loads the configuration and installs the tracer provider so
// render spans are exported by every command, not only serve.
func (g *globals) setup(ctx context.Context) error {
	cfg, err := config.LoadFile(g.configPath)
	if err != nil {
		return err
	}
	g.cfg = cfg

	tp, err := telemetry.NewProvider(ctx, telemetry.Config{
		Enabled:        cfg.Tracing.Enabled,
		ServiceName:    "twibbon",
		ServiceVersion: version,
		Endpoint:       cfg.Tracing.Endpoint,
		SamplingRate:   *cfg.Tracing.SampleRate,
		Exporter:       spanExporter,
	})
	if err != nil {
		return errors.New(errors.CodeConfigInvalid).WithDetail("tracing setup").Wrap(err)
	}
	g.tracing = tp
	return nil
}

// shutdown flushes pending spans. Export failures are logged only.
func (g *globals) shutdown() {
	if err := g.tracing.Shutdown(context.Background()); err != nil && g.logger != nil {
		g.logger.Warn("trace export failed", "error", err)
	}
}

func newRootCmd(g *globals) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "twibbon",
		Short: "Render and publish the Moklet Twibbon landing page",
		Long: `twibbon renders the "Why Choose Moklet Twibbon" features section
and the landing page around it.

  • render   write the page or section as HTML
  • serve    preview the page with live metrics
  • publish  upload the rendered page to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if g.debug {
				level = slog.LevelDebug
			}
			g.logger = slog.New(slog.NewTextHandler(g.stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(g.logger)

			if g.noColor || os.Getenv("NO_COLOR") != "" {
				errors.DisableColors()
			}
			if cmd.Annotations[needsConfig] == "" {
				return nil
			}
			return g.setup(cmd.Context())
		},
	}
	rootCmd.SetOut(g.stdout)
	rootCmd.SetErr(g.stderr)

	rootCmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", config.ConfigFileName, "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "Disable colored error output")

	rootCmd.AddCommand(
		renderCmd(g),
		serveCmd(g),
		publishCmd(g),
		versionCmd(g),
	)
	return rootCmd
}

// run executes the CLI and always flushes tracing, including after a
// failed command, which cobra's post-run hooks would skip.
func run(args []string, stdout, stderr io.Writer) error {
	g := &globals{stdout: stdout, stderr: stderr}
	defer g.shutdown()

	cmd := newRootCmd(g)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var e *errors.Error
		if errors.As(err, &e) {
			fmt.Fprint(os.Stderr, e.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}
