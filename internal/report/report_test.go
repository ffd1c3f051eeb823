package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jacoelho/laxjson/diag"
)

func TestNewStampsRunMetadata(t *testing.T) {
	restoreID := SetRunIDForTest(func() string { return "fixed-id" })
	defer restoreID()

	restoreNow := SetNowForTest(func() time.Time {
		return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	})
	defer restoreNow()

	r := New([]File{{Name: "a.json"}})

	if r.RunID != "fixed-id" {
		t.Fatalf("RunID = %q, want fixed-id", r.RunID)
	}
	if r.GeneratedAt != "2024-03-01T12:30:00Z" {
		t.Fatalf("GeneratedAt = %q", r.GeneratedAt)
	}
	if len(r.Files) != 1 || r.Files[0].Name != "a.json" {
		t.Fatalf("Files = %+v", r.Files)
	}
}

func TestWrite(t *testing.T) {
	restoreID := SetRunIDForTest(func() string { return "run-1" })
	defer restoreID()

	name := filepath.Join(t.TempDir(), "report.yaml")
	r := New([]File{
		{
			Name: "broken.json",
			Issues: []diag.Issue{
				{
					Code:     diag.CodeUnbalancedBrackets,
					Stage:    diag.StageLex,
					Severity: diag.SeverityError,
					Message:  "brackets were not balanced",
				},
			},
		},
	})

	if err := Write(name, r); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	payload, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile error = %v", err)
	}

	content := string(payload)
	for _, want := range []string{"run_id: run-1", "broken.json", "unbalanced_brackets", "brackets were not balanced"} {
		if !strings.Contains(content, want) {
			t.Fatalf("report missing %q:\n%s", want, content)
		}
	}
}
