package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line flags.
type cliFlags struct {
	config   string
	out      string
	mode     string
	dpi      int
	pageSize string
	margin   float64
	verbose  bool
	quiet    bool
	version  bool
}

// parseFlags parses args (without the program name).
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("workbook", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file path or name")
	fs.StringVarP(&f.out, "out", "o", "", "output PDF path (default: fixed workbook name)")
	fs.StringVar(&f.mode, "mode", "", "fetch mode: strict or placeholder (default: strict)")
	fs.IntVar(&f.dpi, "dpi", 0, "rasterization DPI (default: 300)")
	fs.StringVar(&f.pageSize, "page-size", "", "page size: letter or a4 (default: letter)")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (default: 0.75)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress advisories")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", rest)
	}
	return f, nil
}
