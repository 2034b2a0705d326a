package check

import (
	"fmt"
	"unicode/utf8"

	"wsl-ui.dev/locheck/internal/resource"
	"wsl-ui.dev/locheck/internal/rules"
)

// Quality checks that locales written in CJK, Arabic or Devanagari script
// actually use it. Latin-script locales share loanwords with English too
// often for identity to mean anything, so they are skipped.
type Quality struct {
	Rules *rules.Set
	// IdenticalLength is the rune length above which an unchanged reference
	// string is reported for these scripts.
	IdenticalLength int
}

func (Quality) ID() ID        { return IDQuality }
func (Quality) Title() string { return "Translation Quality" }

func (q Quality) CheckLocale(set *resource.Set, target resource.Locale) []Issue {
	if target.Family.Table() == nil {
		return nil
	}
	var issues []Issue
	for _, ns := range set.Namespaces {
		set.SharedStrings(target.ID, ns, func(path, ref, value string) {
			if q.Rules.IsKnownIdentical(ref, target.ID) || q.Rules.IsKnownIdentical(value, target.ID) {
				return
			}
			if !resource.ContainsScript(value, target.Family) {
				issues = append(issues, Issue{
					Check:     IDQuality,
					Kind:      KindNoExpectedScript,
					Locale:    target.ID,
					Namespace: ns,
					Key:       path,
					Message: fmt.Sprintf("%s:%s has no %s characters: %q",
						ns, path, target.Family, Truncate(value, displayLimit)),
					Reference: ref,
					Value:     value,
				})
			}
			if value == ref && utf8.RuneCountInString(value) > q.IdenticalLength {
				issues = append(issues, Issue{
					Check:     IDQuality,
					Kind:      KindIdenticalToEnglish,
					Locale:    target.ID,
					Namespace: ns,
					Key:       path,
					Message: fmt.Sprintf("%s:%s identical to reference: %q",
						ns, path, Truncate(value, displayLimit)),
					Reference: ref,
					Value:     value,
				})
			}
		})
	}
	return issues
}
