package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/san-kum/combviz/internal/config"
	"github.com/san-kum/combviz/internal/logging"
)

// Set via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries the persistent flags and the configuration they resolve to.
type app struct {
	configFile string
	locale     string
	logLevel   string
	logFile    string
	debug      bool
	noColor    bool

	cfg     *config.Config
	logSink io.Closer
}

// main is the entry point for the combviz CLI. With no subcommand it opens
// the interactive player.
func main() {
	a := &app{}
	if err := a.execute(a.rootCmd()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// execute runs cmd and releases the log file even when the command fails;
// cobra skips post-run hooks after a RunE error.
func (a *app) execute(cmd *cobra.Command) error {
	defer a.close()
	return cmd.Execute()
}

func newRootCmd() *cobra.Command {
	return (&app{}).rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	in := &inputFlags{}
	pf := &playFlags{}

	rootCmd := &cobra.Command{
		Use:   "combviz",
		Short: "comb sort step tracer and player",
		Long: `combviz records every step of a Comb Sort run and plays it back.

With no subcommand it opens the interactive terminal player.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlay(cmd, in, pf)
		},
	}
	addInputFlags(rootCmd, in)
	addPlayFlags(rootCmd, pf)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file path (yaml)")
	flags.StringVar(&a.locale, "locale", "", "description locale (en, ja)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFile, "log-file", "", "write logs to this file instead of stderr")
	flags.BoolVar(&a.debug, "debug", false, "shorthand for --log-level debug")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colour output")

	rootCmd.AddCommand(
		a.playCmd(),
		a.traceCmd(),
		a.plotCmd(),
		a.statsCmd(),
		a.verifyCmd(),
		a.exportJSONCmd(),
		a.exportCSVCmd(),
		a.exportSVGCmd(),
		a.exportGIFCmd(),
		a.batchCmd(),
		a.serveCmd(),
		presetsCmd(),
		versionCmd(),
	)
	return rootCmd
}

// setup resolves configuration in order: defaults, config file, COMBVIZ_*
// environment, persistent flags. Subcommand flags are applied later by
// each command.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("locale") {
		cfg.Locale = a.locale
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if a.debug {
		cfg.LogLevel = logging.LevelDebug
	}
	a.cfg = cfg

	if err := a.configureLogging(cmd); err != nil {
		return err
	}

	if a.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	slog.Debug("config resolved", "file", a.configFile, "preset", cfg.Preset, "locale", cfg.Locale)
	return nil
}

// configureLogging sends logs to stderr, or to --log-file. The interactive
// player owns the terminal, so without a log file its logs are dropped.
func (a *app) configureLogging(cmd *cobra.Command) error {
	if a.logFile != "" {
		f, err := os.OpenFile(a.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logSink = f
		return logging.ConfigureWriter(f, a.cfg.LogLevel)
	}
	if cmd.Name() == "play" || cmd.Parent() == nil {
		return logging.ConfigureWriter(io.Discard, a.cfg.LogLevel)
	}
	return logging.ConfigureWriter(cmd.ErrOrStderr(), a.cfg.LogLevel)
}

func (a *app) close() {
	if a.logSink != nil {
		a.logSink.Close()
		a.logSink = nil
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "combviz %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
