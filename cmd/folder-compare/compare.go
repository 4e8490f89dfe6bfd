package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/taigrr/folder-compare/internal/compare"
	"github.com/taigrr/folder-compare/internal/config"
	"github.com/taigrr/folder-compare/internal/output"
	"github.com/taigrr/folder-compare/internal/pathfilter"
	"github.com/taigrr/folder-compare/internal/types"
	"github.com/taigrr/folder-compare/internal/watch"
)

var errDifferencesFound = errors.New("differences found")

type compareFlags struct {
	exclude    []string
	configPath string
	workers    int
	strict     bool
	format     string
	unchanged  bool
	failOnDiff bool
	watch      bool
	verbose    bool
}

// resolveConfig loads the config file, if any, and applies the flags the
// user set on top of it. Exclusion patterns from both sources are combined.
func resolveConfig(cmd *cobra.Command, flags *compareFlags) (types.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		var err error
		cfg, err = config.Load(flags.configPath)
		if err != nil {
			return types.Config{}, err
		}
	}

	cfg.Exclude = append(cfg.Exclude, flags.exclude...)

	changed := cmd.Flags().Changed
	if changed("workers") {
		cfg.Workers = flags.workers
	}
	if changed("strict") {
		cfg.Strict = flags.strict
	}
	if changed("format") || cfg.Format == "" {
		cfg.Format = flags.format
	}
	if changed("unchanged") {
		cfg.Unchanged = flags.unchanged
	}
	if changed("fail-on-diff") {
		cfg.FailOnDiff = flags.failOnDiff
	}

	if err := config.Validate(cfg); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runCompare(cmd *cobra.Command, base, target string, flags *compareFlags) error {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), flags.verbose)

	opts := []compare.Option{
		compare.WithLogger(logger),
		compare.WithWorkers(cfg.Workers),
		compare.WithStrict(cfg.Strict),
	}

	render := func() (*types.CompareResult, error) {
		result, err := compare.Compare(base, target, cfg.Exclude, opts...)
		if err != nil {
			return nil, err
		}
		if err := output.Render(cmd.OutOrStdout(), result, cfg.Format, target, cfg.Unchanged); err != nil {
			return nil, fmt.Errorf("failed to write output: %w", err)
		}
		return result, nil
	}

	result, err := render()
	if err != nil {
		return err
	}

	if !flags.watch {
		if cfg.FailOnDiff && result.HasDifferences() {
			return errDifferencesFound
		}
		return nil
	}

	// patterns already compiled once inside Compare
	pf, _ := pathfilter.New(cfg.Exclude)
	w, err := watch.New([]string{base, target}, pf, watch.DefaultDebounce, logger)
	if err != nil {
		return err
	}

	logger.Info("watching for changes", "base", base, "target", target)
	return w.Run(cmd.Context(), func() {
		fmt.Fprintln(cmd.OutOrStdout(), "---")
		if _, err := render(); err != nil {
			logger.Error("comparison failed", "error", err)
		}
	})
}
