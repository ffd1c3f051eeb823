// Package cli implements the laxjson command: argument parsing and the
// per-file parse/dump loop.
package cli

import (
	"errors"
	"flag"
	"io"

	"github.com/jacoelho/laxjson/internal/exit"
)

var (
	ErrNoArguments   = errors.New("no arguments provided")
	ErrNoInputFiles  = errors.New("no input files specified")
	ErrInvalidFormat = errors.New("format must be text or yaml")
	ErrNegativeTab   = errors.New("tab size cannot be negative")
)

// Format selects how a parsed tree is printed.
type Format int

const (
	FormatText Format = iota
	FormatYAML
)

// Config is the complete configuration for the laxjson tool.
type Config struct {
	Files []string

	TabSize int
	Strict  bool
	Format  Format

	Query      string
	ReportFile string
	Quiet      bool
}

// Validate returns an error when the configuration is unusable.
func (c *Config) Validate() error {
	if len(c.Files) == 0 {
		return ErrNoInputFiles
	}
	if c.TabSize < 0 {
		return ErrNegativeTab
	}

	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	var (
		tabSize    = fs.Int("tab", 4, "Indentation width for dumped output")
		strict     = fs.Bool("strict", false, "Emit conformant JSON instead of the lenient dump form")
		format     = fs.String("format", "text", "Output format: text or yaml")
		query      = fs.String("query", "", "JSONPath expression printed instead of the full tree")
		reportFile = fs.String("report", "", "Path for a YAML diagnostics report")
		quiet      = fs.Bool("quiet", false, "Suppress diagnostic messages on stderr")
	)

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Errorf("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	var outputFormat Format
	switch *format {
	case "text":
		outputFormat = FormatText
	case "yaml":
		outputFormat = FormatYAML
	default:
		return nil, exit.Errorf("Error: %v, got: %s\n\n%s", ErrInvalidFormat, *format, Usage())
	}

	config := &Config{
		Files:      fs.Args(),
		TabSize:    *tabSize,
		Strict:     *strict,
		Format:     outputFormat,
		Query:      *query,
		ReportFile: *reportFile,
		Quiet:      *quiet,
	}

	if err := config.Validate(); err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	return config, nil
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `laxjson - lenient JSON reader and dumper

Usage: laxjson [options] <file1> [file2] ...

Options:
  --tab N            Indentation width for dumped output (default: 4)
  --strict           Emit conformant JSON instead of the lenient dump form
  --format FORMAT    Output format: text or yaml (default: text)
  --query PATH       JSONPath expression printed instead of the full tree
  --report FILE      Write a YAML diagnostics report to FILE
  --quiet            Suppress diagnostic messages on stderr
  -h, --help         Show this help message

Examples:
  laxjson config.json                    # Parse and dump one file
  laxjson --strict config.json           # Dump as conformant JSON
  laxjson --format yaml config.json      # Re-encode the tree as YAML
  laxjson --query '$.server.port' a.json # Print a single selection
  laxjson --report out.yaml *.json       # Record diagnostics per file`
}
