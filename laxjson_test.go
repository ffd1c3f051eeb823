package laxjson

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jacoelho/laxjson/diag"
)

func TestParseFile(t *testing.T) {
	t.Parallel()

	name := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(name, []byte(`{"debug": true, "level": 3}`), 0o600); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	root, issues := ParseFileResult(name)
	if len(issues) != 0 {
		t.Fatalf("issues = %+v", issues)
	}

	debug, err := root.Key("debug")
	if err != nil {
		t.Fatalf("Key(debug) error = %v", err)
	}
	b, err := debug.Bool()
	if err != nil || !*b {
		t.Fatalf("debug = %v, %v, want true", b, err)
	}
}

func TestParseFileMissing(t *testing.T) {
	t.Parallel()

	var sink strings.Builder
	reporter := diag.NewReporter(&sink)

	root := ParseFileReporter(filepath.Join(t.TempDir(), "absent.json"), reporter)

	if !root.IsNull() {
		t.Fatalf("root = %s, want Null", root.Kind())
	}

	issues := reporter.Issues()
	if len(issues) != 1 || issues[0].Code != diag.CodeFileUnreadable {
		t.Fatalf("issues = %+v", issues)
	}
	if !strings.HasPrefix(sink.String(), "[JSON] cannot read file") {
		t.Fatalf("sink = %q", sink.String())
	}
}

func TestParseTextResultAggregatesIssues(t *testing.T) {
	t.Parallel()

	_, issues := ParseTextResult([]byte(`{"ok": 1}`))
	if len(issues) != 0 {
		t.Fatalf("issues = %+v", issues)
	}
}
