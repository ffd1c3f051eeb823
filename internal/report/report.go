// Package report renders parse diagnostics as a YAML report file.
package report

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"

	"github.com/jacoelho/laxjson/diag"
)

var (
	nowFunc   = time.Now
	runIDFunc = func() string { return uuid.New().String() }
)

// SetNowForTest overrides the clock source and returns a restore function.
func SetNowForTest(fn func() time.Time) func() {
	previous := nowFunc
	nowFunc = fn
	return func() {
		nowFunc = previous
	}
}

// SetRunIDForTest overrides the run id source and returns a restore function.
func SetRunIDForTest(fn func() string) func() {
	previous := runIDFunc
	runIDFunc = fn
	return func() {
		runIDFunc = previous
	}
}

// File is the outcome for one parsed input.
type File struct {
	Name   string       `yaml:"name"`
	Issues []diag.Issue `yaml:"issues,omitempty"`
}

// Report aggregates the outcomes of one run.
type Report struct {
	RunID       string `yaml:"run_id"`
	GeneratedAt string `yaml:"generated_at"`
	Files       []File `yaml:"files"`
}

// New stamps a report with a fresh run id and timestamp.
func New(files []File) Report {
	return Report{
		RunID:       runIDFunc(),
		GeneratedAt: nowFunc().UTC().Format(time.RFC3339),
		Files:       files,
	}
}

// Write renders the report as YAML into the named file.
func Write(name string, r Report) error {
	payload, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := os.WriteFile(name, payload, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
