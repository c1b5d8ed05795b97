package check

import (
	"encoding/json"
	"fmt"
	"io"
)

// Formatter renders a Result for humans or machines.
type Formatter struct {
	format string // "text" or "json"
}

// NewFormatter creates a formatter for the given output format.
func NewFormatter(format string) *Formatter {
	return &Formatter{format: format}
}

// Format writes the result to w.
func (f *Formatter) Format(w io.Writer, result *Result) error {
	if f.format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return f.formatText(w, result)
}

func (f *Formatter) formatText(w io.Writer, result *Result) error {
	for _, issue := range result.Issues {
		loc := issue.Path
		if loc == "" {
			loc = "site descriptor"
		}
		if _, err := fmt.Fprintf(w, "%s: %s [%s] %s\n", issue.Severity, loc, issue.Rule, issue.Message); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d files checked: %d errors, %d warnings\n",
		result.FilesTotal, result.ErrorCount(), result.WarningCount())
	return err
}
