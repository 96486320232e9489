// Package main provides the stylecheck binary entry point.
// Stylecheck scans Python source text line by line and prints style violations.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sirkon/stylecheck/internal/report"
	"github.com/sirkon/stylecheck/internal/rules"
	"github.com/sirkon/stylecheck/internal/scanning"
	"github.com/sirkon/stylecheck/internal/walk"
	"github.com/sirkon/stylecheck/internal/watch"
)

const (
	Version = "0.1.0"
	appName = "stylecheck"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		logLevel string
		watchFor bool
	)

	cmd := &cobra.Command{
		Use:   appName + " [path]",
		Short: "Line based Python style checker",
		Long: `Stylecheck checks Python source files line by line and reports:

  S001  lines longer than 79 characters
  S002  indentation that is not a multiple of four
  S003  unnecessary semicolons after statements
  S004  less than two spaces before inline comments
  S005  TODO markers in comments
  S006  more than two blank lines preceding a code line

A directory is searched recursively for *.py files, a file is checked
regardless of its extension. Without a path nothing is checked.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), logLevel)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return nil
			}
			if len(args) > 1 {
				logger.Debug("extra arguments ignored", "args", args[1:])
			}

			return run(cmd.Context(), cmd.OutOrStdout(), logger, args[0], watchFor)
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&watchFor, "watch", false, "Keep checking files as they change")

	cmd.AddCommand(rulesCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func run(ctx context.Context, out io.Writer, logger *slog.Logger, path string, watchFor bool) error {
	printer := report.NewPrinter(out)
	scanner := scanning.New(printer, logger)

	if err := walk.New(scanner, logger).Run(path); err != nil {
		logger.Warn("failed to check path", "path", path, "error", err)
	}
	if err := printer.Err(); err != nil {
		return err
	}

	if !watchFor {
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(watch.Config{Root: path, Logger: logger}, scanner)
	if err != nil {
		return fmt.Errorf("start watching: %w", err)
	}
	if err := w.Run(ctx); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	return printer.Err()
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

type ruleEntry struct {
	Code        rules.Rule `yaml:"code"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
}

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the rules catalog as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var catalog []ruleEntry
			for _, r := range rules.All() {
				catalog = append(catalog, ruleEntry{
					Code:        r,
					Name:        r.Name(),
					Description: r.Description(),
				})
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(catalog); err != nil {
				return fmt.Errorf("encode rules: %w", err)
			}
			if err := enc.Close(); err != nil {
				return fmt.Errorf("flush rules: %w", err)
			}

			return nil
		},
	}
}
