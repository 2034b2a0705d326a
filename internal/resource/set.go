package resource

// ProblemKind identifies a structural defect found while loading.
type ProblemKind string

// Structural problem kinds.
const (
	ProblemMissingReference ProblemKind = "missing-reference"
	ProblemMissingLocale    ProblemKind = "missing-locale"
	ProblemMissingFile      ProblemKind = "missing-file"
	ProblemReadError        ProblemKind = "read-error"
	ProblemParseError       ProblemKind = "parse-error"
	ProblemInvalidValue     ProblemKind = "invalid-value"
	ProblemDuplicateKey     ProblemKind = "duplicate-key"
	ProblemFileCount        ProblemKind = "file-count"
	ProblemMissingIndex     ProblemKind = "missing-index"
)

// Problem is a structural defect recorded by the loader. Namespace and Path
// are empty for locale-level problems.
type Problem struct {
	Kind      ProblemKind
	Locale    string
	Namespace string
	Path      string
	Message   string
}

// Set is the loaded resource set: every locale's flattened namespaces plus the
// reference locale's key index. A Set is read-only once Load returns.
type Set struct {
	Reference  Locale
	Targets    []Locale
	Namespaces []string

	// Problems are in configured locale order, reference first.
	Problems []Problem

	flats   map[string]map[string]*Flat
	refKeys map[string]map[string]struct{}
}

func newSet(reference Locale, targets []Locale, namespaces []string) *Set {
	return &Set{
		Reference:  reference,
		Targets:    targets,
		Namespaces: namespaces,
		flats:      make(map[string]map[string]*Flat),
		refKeys:    make(map[string]map[string]struct{}),
	}
}

func (s *Set) put(locale string, flats map[string]*Flat) {
	s.flats[locale] = flats
	if locale == s.Reference.ID {
		for ns, flat := range flats {
			s.refKeys[ns] = flat.KeySet()
		}
	}
}

// Namespace returns the flattened namespace for locale. Absent or unparsable
// namespaces come back as an empty Flat, never nil.
func (s *Set) Namespace(locale, namespace string) *Flat {
	if flat, ok := s.flats[locale][namespace]; ok && flat != nil {
		return flat
	}
	return EmptyFlat()
}

// Ref returns the reference locale's flattened namespace.
func (s *Set) Ref(namespace string) *Flat {
	return s.Namespace(s.Reference.ID, namespace)
}

// RefKeys returns the reference locale's key set for namespace.
func (s *Set) RefKeys(namespace string) map[string]struct{} {
	if keys, ok := s.refKeys[namespace]; ok {
		return keys
	}
	return map[string]struct{}{}
}

// SharedStrings calls fn for every key of namespace that holds a string in
// both the reference and the target, in reference document order.
func (s *Set) SharedStrings(target, namespace string, fn func(path, ref, value string)) {
	ref := s.Ref(namespace)
	tgt := s.Namespace(target, namespace)
	for _, path := range ref.Paths {
		refValue, ok := ref.String(path)
		if !ok {
			continue
		}
		value, ok := tgt.String(path)
		if !ok {
			continue
		}
		fn(path, refValue, value)
	}
}
