package diag

import (
	"fmt"
	"io"
	"os"
)

const messagePrefix = "[JSON] "

// Reporter collects issues and mirrors each message to a sink. The collected
// list is the aggregated "parse produced diagnostics" signal; the sink keeps
// the human-readable stderr channel.
type Reporter struct {
	sink   io.Writer
	issues []Issue
}

// NewReporter returns a reporter writing messages to sink. A nil sink
// defaults to os.Stderr.
func NewReporter(sink io.Writer) *Reporter {
	if sink == nil {
		sink = os.Stderr
	}

	return &Reporter{sink: sink}
}

// Report records an issue for code, filling stage and severity from the code
// definition, and writes the formatted message to the sink.
func (r *Reporter) Report(code Code, span *Span, format string, args ...any) {
	definition := DefinitionFor(code)
	message := fmt.Sprintf(format, args...)

	r.issues = append(r.issues, Issue{
		Code:     code,
		Stage:    definition.DefaultStage,
		Severity: definition.DefaultSeverity,
		Message:  message,
		Span:     span,
	})

	fmt.Fprintf(r.sink, "%s%s\n", messagePrefix, message)
}

// Issues returns the issues recorded so far, in report order.
func (r *Reporter) Issues() []Issue {
	return r.issues
}

// HasIssues reports whether any diagnostic was recorded.
func (r *Reporter) HasIssues() bool {
	return len(r.issues) > 0
}
