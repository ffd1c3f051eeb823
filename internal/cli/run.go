package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/laxjson"
	"github.com/jacoelho/laxjson/diag"
	"github.com/jacoelho/laxjson/internal/report"
)

// Run parses every configured file and prints its tree. The exit code is
// nonzero when any file produced diagnostics.
func Run(cfg *Config) int {
	return run(cfg, os.Stdout, os.Stderr)
}

func run(cfg *Config, stdout, stderr io.Writer) int {
	sink := stderr
	if cfg.Quiet {
		sink = io.Discard
	}

	code := 0
	outcomes := make([]report.File, 0, len(cfg.Files))

	for _, name := range cfg.Files {
		reporter := diag.NewReporter(sink)
		root := laxjson.ParseFileReporter(name, reporter)

		if err := printTree(cfg, stdout, root); err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", name, err)
			code = 1
		}

		outcomes = append(outcomes, report.File{
			Name:   name,
			Issues: reporter.Issues(),
		})
		if reporter.HasIssues() {
			code = 1
		}
	}

	if cfg.ReportFile != "" {
		if err := report.Write(cfg.ReportFile, report.New(outcomes)); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			code = 1
		}
	}

	return code
}

func printTree(cfg *Config, w io.Writer, root *laxjson.Node) error {
	if cfg.Query != "" {
		results, err := laxjson.Select(root, cfg.Query)
		if err != nil {
			return err
		}
		for _, result := range results {
			fmt.Fprintf(w, "%v\n", result)
		}
		return nil
	}

	if cfg.Format == FormatYAML {
		payload, err := encodeYAML(root)
		if err != nil {
			return err
		}
		_, err = w.Write(payload)
		return err
	}

	if cfg.Strict {
		fmt.Fprintln(w, laxjson.DumpStrict(root, cfg.TabSize))
		return nil
	}

	fmt.Fprintln(w, laxjson.Dump(root, cfg.TabSize))
	return nil
}
