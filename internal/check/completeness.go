package check

import (
	"wsl-ui.dev/locheck/internal/resource"
)

// Completeness reports reference keys missing from a target (MISSING) and
// target keys unknown to the reference (ORPHAN). It never looks at values.
type Completeness struct{}

func (Completeness) ID() ID        { return IDCompleteness }
func (Completeness) Title() string { return "Key Completeness" }

func (Completeness) CheckLocale(set *resource.Set, target resource.Locale) []Issue {
	var issues []Issue
	for _, ns := range set.Namespaces {
		ref := set.Ref(ns)
		refKeys := set.RefKeys(ns)
		tgt := set.Namespace(target.ID, ns)

		for _, path := range ref.Paths {
			if !tgt.Has(path) {
				issues = append(issues, Issue{
					Check:     IDCompleteness,
					Kind:      KindMissing,
					Locale:    target.ID,
					Namespace: ns,
					Key:       path,
					Message:   "Missing key " + ns + ":" + path,
				})
			}
		}
		for _, path := range tgt.Paths {
			if _, ok := refKeys[path]; !ok {
				issues = append(issues, Issue{
					Check:     IDCompleteness,
					Kind:      KindOrphan,
					Locale:    target.ID,
					Namespace: ns,
					Key:       path,
					Message:   "Orphan key " + ns + ":" + path + " (not in reference)",
				})
			}
		}
	}
	return issues
}
