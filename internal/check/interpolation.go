package check

import (
	"fmt"
	"strings"

	"wsl-ui.dev/locheck/internal/resource"
	"wsl-ui.dev/locheck/internal/rules"
)

// Interpolation compares the {{token}} sets of every key both locales hold
// as strings. A dropped token renders as nothing; an invented one renders
// literally, so both are defects.
type Interpolation struct{}

func (Interpolation) ID() ID        { return IDInterpolation }
func (Interpolation) Title() string { return "Interpolation Variables" }

func (Interpolation) CheckLocale(set *resource.Set, target resource.Locale) []Issue {
	var issues []Issue
	for _, ns := range set.Namespaces {
		set.SharedStrings(target.ID, ns, func(path, ref, value string) {
			missing, extra := rules.Diff(ref, value)
			if len(missing) == 0 && len(extra) == 0 {
				return
			}
			issues = append(issues, Issue{
				Check:     IDInterpolation,
				Kind:      KindInterpolationMismatch,
				Locale:    target.ID,
				Namespace: ns,
				Key:       path,
				Message: fmt.Sprintf("%s:%s missing [%s] extra [%s]: %q vs %q",
					ns, path,
					strings.Join(missing, ", "), strings.Join(extra, ", "),
					Truncate(ref, displayLimit), Truncate(value, displayLimit)),
				Missing:   missing,
				Extra:     extra,
				Reference: ref,
				Value:     value,
			})
		})
	}
	return issues
}
