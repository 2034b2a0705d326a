package check

import (
	"fmt"
	"strings"

	"wsl-ui.dev/locheck/internal/resource"
)

// PlaceholderMarker prefixes machine-seeded values awaiting translation.
const PlaceholderMarker = "[EN]"

// Placeholders flags every target string still carrying the placeholder
// marker. Exemptions never apply.
type Placeholders struct{}

func (Placeholders) ID() ID        { return IDPlaceholders }
func (Placeholders) Title() string { return "Placeholder Leakage" }

func (Placeholders) CheckLocale(set *resource.Set, target resource.Locale) []Issue {
	var issues []Issue
	for _, ns := range set.Namespaces {
		flat := set.Namespace(target.ID, ns)
		for _, path := range flat.Paths {
			value, ok := flat.String(path)
			if !ok || !strings.HasPrefix(value, PlaceholderMarker) {
				continue
			}
			issues = append(issues, Issue{
				Check:     IDPlaceholders,
				Kind:      KindPlaceholder,
				Locale:    target.ID,
				Namespace: ns,
				Key:       path,
				Message:   fmt.Sprintf("%s:%s placeholder value %q", ns, path, Truncate(value, displayLimit)),
				Value:     value,
			})
		}
	}
	return issues
}
