// Package rules holds the exemption rule set: the knowledge of which strings
// may legitimately stay identical to the reference locale.
//
// A Set is built once at startup and passed to every checker that needs it.
// Its rules form an ordered chain of named predicates evaluated until one
// matches, so each heuristic can be tested and extended on its own.
//
// Import Path: wsl-ui.dev/locheck/internal/rules
package rules

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Predicate reports whether value is expected to be identical across locales.
// locale is empty when no locale context applies.
type Predicate func(value, locale string) bool

// Rule is one named predicate of the chain.
type Rule struct {
	Name  string
	Match Predicate
}

// Options tunes a Set.
type Options struct {
	// ExtraTerms are added to the global technical-term list.
	ExtraTerms []string
	// MaxTitleWords caps the capitalized multi-word heuristic. Values below 2
	// fall back to DefaultMaxTitleWords.
	MaxTitleWords int
}

// DefaultMaxTitleWords is the default cap of the title-case heuristic.
const DefaultMaxTitleWords = 4

// Set is an immutable exemption rule set.
type Set struct {
	rules         []Rule
	terms         map[string]struct{}
	localeTerms   map[string]map[string]struct{}
	commonWords   map[string]struct{}
	maxTitleWords int
}

// Default returns the rule set with the built-in tables.
func Default() *Set {
	return New(Options{})
}

// New builds a rule set from the built-in tables plus opts.
func New(opts Options) *Set {
	s := &Set{
		terms:         toSet(append(append([]string{}, technicalTerms...), opts.ExtraTerms...)),
		localeTerms:   make(map[string]map[string]struct{}, len(localeTerms)),
		commonWords:   toSet(commonWords),
		maxTitleWords: opts.MaxTitleWords,
	}
	if s.maxTitleWords < 2 {
		s.maxTitleWords = DefaultMaxTitleWords
	}
	for loc, words := range localeTerms {
		s.localeTerms[loc] = toSet(words)
	}

	s.rules = []Rule{
		{Name: "trivial", Match: isTrivial},
		{Name: "technical-term", Match: func(v, _ string) bool { return s.IsTechnicalTerm(v) }},
		{Name: "locale-term", Match: s.isLocaleTerm},
		{Name: "interpolation-only", Match: s.isInterpolationOnly},
		{Name: "duration", Match: matches(durationPattern)},
		{Name: "url", Match: matches(urlPattern)},
		{Name: "path", Match: matches(pathPattern)},
		{Name: "shortcut", Match: matches(shortcutPattern)},
		{Name: "semver", Match: matches(semverPattern)},
		{Name: "number", Match: matches(numberPattern)},
		{Name: "env-var", Match: matches(envVarPattern)},
		{Name: "executable", Match: matches(executablePattern)},
		{Name: "cli-flag", Match: matches(cliFlagPattern)},
		{Name: "email", Match: matches(emailPattern)},
		{Name: "title-case", Match: s.isTitleCasePhrase},
	}
	return s
}

// IsKnownIdentical reports whether value may legitimately equal the reference
// text in locale.
func (s *Set) IsKnownIdentical(value, locale string) bool {
	_, ok := s.Match(value, locale)
	return ok
}

// Match returns the name of the first rule that exempts value.
func (s *Set) Match(value, locale string) (string, bool) {
	for _, r := range s.rules {
		if r.Match(value, locale) {
			return r.Name, true
		}
	}
	return "", false
}

// Rules returns the rule chain in evaluation order.
func (s *Set) Rules() []Rule {
	return append([]Rule(nil), s.rules...)
}

// IsTechnicalTerm reports an exact match in the global term list.
func (s *Set) IsTechnicalTerm(value string) bool {
	_, ok := s.terms[value]
	return ok
}

func (s *Set) isLocaleTerm(value, locale string) bool {
	if locale == "" {
		return false
	}
	if words, ok := s.localeTerms[locale]; ok {
		if _, hit := words[value]; hit {
			return true
		}
	}
	base, _, found := strings.Cut(locale, "-")
	if !found {
		return false
	}
	_, hit := s.localeTerms[base][value]
	return hit
}

func isTrivial(value, _ string) bool {
	return utf8.RuneCountInString(value) < 3
}

// isInterpolationOnly exempts strings dominated by tokens, e.g. "in {{hours}}h".
func (s *Set) isInterpolationOnly(value, _ string) bool {
	if !strings.Contains(value, "{{") {
		return false
	}
	rest := strings.TrimSpace(StripTokens(value))
	if rest == "" || s.IsTechnicalTerm(rest) {
		return true
	}
	letters := 0
	for _, r := range rest {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return letters <= 3
}

// isTitleCasePhrase treats 2..maxTitleWords capitalized words without any
// function word as a proper noun or brand phrase ("Windows Update Service").
func (s *Set) isTitleCasePhrase(value, _ string) bool {
	words := strings.Fields(value)
	if len(words) < 2 || len(words) > s.maxTitleWords {
		return false
	}
	for _, w := range words {
		if !titleWordPattern.MatchString(w) {
			return false
		}
		if _, common := s.commonWords[strings.ToLower(w)]; common {
			return false
		}
	}
	return true
}

func matches(re *regexp.Regexp) Predicate {
	return func(value, _ string) bool {
		return re.MatchString(value)
	}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
