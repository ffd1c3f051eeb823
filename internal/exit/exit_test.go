package exit

import (
	"bytes"
	"os"
	"testing"
)

func TestSuccess(t *testing.T) {
	result := Success("done")

	if result.ExitCode != 0 {
		t.Errorf("Success() ExitCode = %d, want 0", result.ExitCode)
	}
	if result.Message != "done" {
		t.Errorf("Success() Message = %q, want %q", result.Message, "done")
	}
	if result.Output != os.Stdout {
		t.Error("Success() expected output to stdout")
	}
}

func TestError(t *testing.T) {
	result := Error("failed")

	if result.ExitCode != 1 {
		t.Errorf("Error() ExitCode = %d, want 1", result.ExitCode)
	}
	if result.Output != os.Stderr {
		t.Error("Error() expected output to stderr")
	}
}

func TestErrorf(t *testing.T) {
	result := Errorf("cannot parse %s: %d issues", "config.json", 3)

	if result.ExitCode != 1 {
		t.Errorf("Errorf() ExitCode = %d, want 1", result.ExitCode)
	}
	if result.Message != "cannot parse config.json: 3 issues" {
		t.Errorf("Errorf() Message = %q", result.Message)
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	result := &Result{
		Output:   &buf,
		ExitCode: 0,
		Message:  "test output",
	}

	result.Print()

	if buf.String() != "test output" {
		t.Errorf("Print() output = %q, want %q", buf.String(), "test output")
	}
}
