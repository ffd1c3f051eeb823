package laxjson

import (
	"os"

	"github.com/jacoelho/laxjson/diag"
)

// ParseText parses raw as a lenient JSON document and returns the root node.
// Diagnostics are written to standard error; a malformed document yields a
// best-effort partial tree.
func ParseText(raw []byte) *Node {
	root, _ := ParseTextResult(raw)
	return root
}

// ParseTextResult is ParseText plus the collected diagnostics, so callers
// can tell whether the tree is trustworthy without scraping stderr.
func ParseTextResult(raw []byte) (*Node, []diag.Issue) {
	reporter := diag.NewReporter(nil)
	return ParseTextReporter(raw, reporter), reporter.Issues()
}

// ParseTextReporter parses raw, reporting diagnostics to reporter.
func ParseTextReporter(raw []byte, reporter *diag.Reporter) *Node {
	parser := NewParser(reporter)
	root := &Node{}

	parser.Reset(raw)
	parser.Parse(root)

	return root
}

// ParseFile reads the named file fully and parses its contents. A missing or
// unreadable file yields a Null root; no error is returned at this boundary.
func ParseFile(name string) *Node {
	root, _ := ParseFileResult(name)
	return root
}

// ParseFileResult is ParseFile plus the collected diagnostics.
func ParseFileResult(name string) (*Node, []diag.Issue) {
	reporter := diag.NewReporter(nil)
	return ParseFileReporter(name, reporter), reporter.Issues()
}

// ParseFileReporter reads and parses the named file, reporting diagnostics
// to reporter.
func ParseFileReporter(name string, reporter *diag.Reporter) *Node {
	raw, err := os.ReadFile(name)
	if err != nil {
		reporter.Report(diag.CodeFileUnreadable, nil, "cannot read file %s: %v", name, err)
		return &Node{}
	}

	return ParseTextReporter(raw, reporter)
}
