package check

import (
	"fmt"
	"unicode/utf8"

	"wsl-ui.dev/locheck/internal/resource"
	"wsl-ui.dev/locheck/internal/rules"
)

// Untranslated flags target strings identical to the reference that are
// longer than MinLength runes and not exempted by the rule set.
type Untranslated struct {
	Rules     *rules.Set
	MinLength int
}

func (Untranslated) ID() ID        { return IDUntranslated }
func (Untranslated) Title() string { return "Untranslated Strings" }

func (u Untranslated) CheckLocale(set *resource.Set, target resource.Locale) []Issue {
	var issues []Issue
	for _, ns := range set.Namespaces {
		set.SharedStrings(target.ID, ns, func(path, ref, value string) {
			if value != ref || utf8.RuneCountInString(value) <= u.MinLength {
				return
			}
			if u.Rules.IsKnownIdentical(value, target.ID) {
				return
			}
			issues = append(issues, Issue{
				Check:     IDUntranslated,
				Kind:      KindSuspiciousIdentical,
				Locale:    target.ID,
				Namespace: ns,
				Key:       path,
				Message:   fmt.Sprintf("%s:%s identical to reference: %q", ns, path, Truncate(value, displayLimit)),
				Reference: ref,
				Value:     value,
			})
		})
	}
	return issues
}
