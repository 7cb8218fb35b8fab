package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"go.arith.dev/internal/config"
	"go.arith.dev/pkg"
)

type options struct {
	configFile string
	format     string
	logLevel   string
	noColor    bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "arith",
		Short: "Parse integer arithmetic into syntax trees",
		Long: `Read one arithmetic expression per line and print its syntax tree.

An empty line or end of input ends the session. Expressions use integers,
unary minus, + - * / and parentheses.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}

			log := newLogger(cmd.ErrOrStderr(), cfg.Level())

			session := arith.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(),
				arith.WithPrompt(cfg.Prompt),
				arith.WithFormat(cfg.OutputFormat()),
				arith.WithStyle(diagnosticStyle(cfg.NoColor)),
				arith.WithLogger(log),
			)

			if _, err := session.Run(cmd.Context()); err != nil {
				log.Error().Err(err).Msg("session failed")
				return err
			}

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default: ./arith.toml, then the user config dir)")
	cmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", "output format (debug, source, json, yaml, ir)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable coloured diagnostics")

	cmd.AddCommand(newParseCmd(&opts))
	cmd.AddCommand(newIRCmd())

	return cmd
}

// load reads the config file and applies any flags set on the command line.
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if o.configFile != "" {
		cfg, err = config.Load(o.configFile)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("no-color") {
		cfg.NoColor = o.noColor
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		With().Timestamp().Str("service", "arith").Logger().
		Level(level)
}

var (
	colorError  = lipgloss.Color("#EF4444")
	colorGutter = lipgloss.Color("#06B6D4")
)

func diagnosticStyle(noColor bool) arith.DiagnosticStyle {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return arith.PlainStyle
	}

	return arith.DiagnosticStyle{
		Header: lipgloss.NewStyle().Foreground(colorError).Bold(true).Render,
		Gutter: lipgloss.NewStyle().Foreground(colorGutter).Render,
		Caret:  lipgloss.NewStyle().Foreground(colorError).Render,
	}
}
