package check

import (
	"wsl-ui.dev/locheck/internal/resource"
)

// StructureTitle is the report title of the structural integrity check.
const StructureTitle = "Structural Integrity"

// Structure converts the loader's problems into issues. It is the only check
// that needs no reference comparison, so it still runs when the reference
// locale itself is missing.
func Structure(set *resource.Set) Result {
	issues := make([]Issue, 0, len(set.Problems))
	for _, p := range set.Problems {
		issues = append(issues, Issue{
			Check:     IDStructure,
			Kind:      string(p.Kind),
			Locale:    p.Locale,
			Namespace: p.Namespace,
			Key:       p.Path,
			Message:   p.Message,
		})
	}
	return NewResult(IDStructure, StructureTitle, issues)
}
