package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	workbook "github.com/alnah/go-workbook"
	"github.com/alnah/go-workbook/internal/config"
	"github.com/alnah/go-workbook/internal/hints"
)

// documentBuilder is the interface the CLI needs from the library.
type documentBuilder interface {
	Build(ctx context.Context, input workbook.Input) (*workbook.Result, error)
}

// run resolves configuration, applies flag overrides, and executes one
// build.
func run(ctx context.Context, flags *cliFlags, svc documentBuilder, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}
	applyFlags(cfg, flags)

	input, err := cfg.Input()
	if err != nil {
		return err
	}

	if flags.verbose {
		fmt.Fprintf(stderr, "Building %d exercise sections (mode: %s)\n", len(input.Works), modeLabel(input.Mode))
	}

	result, err := svc.Build(ctx, input)
	if err != nil {
		return withHint(err)
	}

	if flags.verbose {
		printSummary(stderr, input.Works, result)
	}
	if !flags.quiet {
		printAdvisories(stderr, result)
	}
	fmt.Fprintf(stdout, "Created %s\n", result.OutputPath)
	return nil
}

// loadConfig returns the named config, or built-in defaults when no
// config was requested.
func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.Default()
	}
	cfg, err := config.Load(nameOrPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchedPaths(nameOrPath)))
		}
		return nil, err
	}
	return cfg, nil
}

// applyFlags overlays non-zero flag values onto the config.
func applyFlags(cfg *config.Config, flags *cliFlags) {
	if flags.out != "" {
		cfg.Output.Path = flags.out
	}
	if flags.mode != "" {
		cfg.Fetch.Mode = flags.mode
	}
	if flags.dpi != 0 {
		cfg.Fetch.DPI = flags.dpi
	}
	if flags.pageSize != "" {
		cfg.Page.Size = flags.pageSize
	}
	if flags.margin != 0 {
		cfg.Page.Margin = flags.margin
	}
}

// withHint appends an actionable hint to known failure classes.
func withHint(err error) error {
	switch {
	case errors.Is(err, workbook.ErrPopplerNotFound):
		return fmt.Errorf("%w%s", err, hints.ForPopplerNotFound())
	case errors.Is(err, workbook.ErrFetchFailed):
		return fmt.Errorf("%w%s", err, hints.ForFetchFailure())
	case errors.Is(err, workbook.ErrWriteOutput):
		return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
	}
	return err
}

func modeLabel(mode string) string {
	if mode == "" {
		return workbook.FetchModeStrict
	}
	return mode
}
