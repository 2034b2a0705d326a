// Package report aggregates check results and renders them for humans (text)
// or machines (JSON).
//
// Import Path: wsl-ui.dev/locheck/internal/report
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"wsl-ui.dev/locheck/internal/check"
	apperrors "wsl-ui.dev/locheck/internal/pkg/errors"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultMaxExamples is the per-check display cap used when none is set.
const DefaultMaxExamples = 10

// Report is the aggregate of one run.
type Report struct {
	Passed  bool           `json:"passed"`
	Checks  []check.Result `json:"checks"`
	Summary []SummaryRow   `json:"summary"`
}

// SummaryRow is one line of the summary table.
type SummaryRow struct {
	Check  check.ID `json:"check"`
	Title  string   `json:"title"`
	Passed bool     `json:"passed"`
	Issues int      `json:"issues"`
}

// New aggregates results. The run passes iff every check passed; an empty
// run passes.
func New(results []check.Result) *Report {
	r := &Report{Passed: true, Checks: results, Summary: make([]SummaryRow, 0, len(results))}
	if r.Checks == nil {
		r.Checks = []check.Result{}
	}
	for _, res := range results {
		r.Passed = r.Passed && res.Passed
		r.Summary = append(r.Summary, SummaryRow{
			Check:  res.Check,
			Title:  res.Title,
			Passed: res.Passed,
			Issues: len(res.Issues),
		})
	}
	return r
}

// Options controls rendering.
type Options struct {
	Format string
	// MaxExamples caps the issues printed per check in text output.
	// JSON output always carries every issue.
	MaxExamples int
}

// Write renders r to w.
func Write(w io.Writer, r *Report, opts Options) error {
	switch opts.Format {
	case "", FormatText:
		return writeText(w, r, opts.MaxExamples)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(r)
	default:
		return apperrors.ErrUnsupportedFormatf(opts.Format)
	}
}

func status(passed bool) string {
	if passed {
		return "PASS"
	}
	return "FAIL"
}

func writeText(w io.Writer, r *Report, maxExamples int) error {
	if maxExamples <= 0 {
		maxExamples = DefaultMaxExamples
	}
	var b strings.Builder

	for _, res := range r.Checks {
		fmt.Fprintf(&b, "== %s ==\n", res.Title)
		if res.Passed {
			b.WriteString("PASS\n\n")
			continue
		}
		fmt.Fprintf(&b, "FAIL: %d issue(s)\n", len(res.Issues))
		shown := res.Issues
		if len(shown) > maxExamples {
			shown = shown[:maxExamples]
		}
		for _, is := range shown {
			b.WriteString("  - ")
			if is.Locale != "" {
				fmt.Fprintf(&b, "[%s] ", is.Locale)
			}
			b.WriteString(is.Message)
			b.WriteByte('\n')
		}
		if rest := len(res.Issues) - len(shown); rest > 0 {
			fmt.Fprintf(&b, "  ...and %d more\n", rest)
		}
		b.WriteByte('\n')
	}

	b.WriteString("SUMMARY\n")
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CHECK\tSTATUS\tISSUES")
	for _, row := range r.Summary {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", row.Title, status(row.Passed), row.Issues)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(&b, "\nOVERALL: %s\n", status(r.Passed))

	_, err := io.WriteString(w, b.String())
	return err
}
