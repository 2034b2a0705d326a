// Package check implements the independent verification passes over a loaded
// resource set. Checks only read the set and the exemption rules; each
// returns an append-only list of issues.
//
// Import Path: wsl-ui.dev/locheck/internal/check
package check

import (
	"unicode/utf8"

	"wsl-ui.dev/locheck/internal/resource"
)

// ID identifies a check in reports.
type ID string

// Check identifiers, in report order.
const (
	IDStructure     ID = "structure"
	IDCompleteness  ID = "completeness"
	IDInterpolation ID = "interpolation"
	IDPlaceholders  ID = "placeholders"
	IDUntranslated  ID = "untranslated"
	IDQuality       ID = "quality"
	IDCoverage      ID = "coverage"
)

// Issue kinds produced by the resource checks. Structural issues reuse the
// loader's resource.ProblemKind values; coverage kinds live in package scan.
const (
	KindMissing               = "MISSING"
	KindOrphan                = "ORPHAN"
	KindInterpolationMismatch = "interpolation-mismatch"
	KindPlaceholder           = "placeholder"
	KindSuspiciousIdentical   = "suspicious-identical"
	KindNoExpectedScript      = "no-expected-script"
	KindIdenticalToEnglish    = "identical-to-english"
)

// Issue is one finding. Key holds the key path for resource checks and the
// file path (with line) for source coverage.
type Issue struct {
	Check     ID       `json:"check"`
	Kind      string   `json:"kind"`
	Locale    string   `json:"locale,omitempty"`
	Namespace string   `json:"namespace,omitempty"`
	Key       string   `json:"key,omitempty"`
	Message   string   `json:"message"`
	Missing   []string `json:"missing,omitempty"`
	Extra     []string `json:"extra,omitempty"`
	Reference string   `json:"reference,omitempty"`
	Value     string   `json:"value,omitempty"`
}

// Result is the outcome of one check. Passed is true iff Issues is empty.
type Result struct {
	Check  ID      `json:"check"`
	Title  string  `json:"title"`
	Passed bool    `json:"passed"`
	Issues []Issue `json:"issues"`
}

// NewResult builds a Result whose pass flag follows from issues.
func NewResult(id ID, title string, issues []Issue) Result {
	if issues == nil {
		issues = []Issue{}
	}
	return Result{Check: id, Title: title, Passed: len(issues) == 0, Issues: issues}
}

// LocaleChecker is a check that evaluates one target locale at a time against
// the reference. Implementations must not mutate the set.
type LocaleChecker interface {
	ID() ID
	Title() string
	CheckLocale(set *resource.Set, target resource.Locale) []Issue
}

// displayLimit bounds raw strings quoted in issue messages.
const displayLimit = 60

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	if n <= 3 {
		return string([]rune(s)[:n])
	}
	return string([]rune(s)[:n-3]) + "..."
}
