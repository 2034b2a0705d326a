package rules

import "regexp"

// tokenPattern matches an interpolation token: "{{" through the next "}}".
var tokenPattern = regexp.MustCompile(`(?s)\{\{.*?\}\}`)

// Tokens returns the distinct interpolation tokens of s in first-seen order.
// Tokens are opaque: "{{count}}" and "{{ count }}" are different tokens.
func Tokens(s string) []string {
	matches := tokenPattern.FindAllString(s, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// StripTokens removes every interpolation token from s.
func StripTokens(s string) string {
	return tokenPattern.ReplaceAllString(s, "")
}

// Diff returns the tokens of ref absent from value (missing) and the tokens
// of value absent from ref (extra).
func Diff(ref, value string) (missing, extra []string) {
	refTokens := Tokens(ref)
	valueTokens := Tokens(value)
	missing = subtract(refTokens, valueTokens)
	extra = subtract(valueTokens, refTokens)
	return missing, extra
}

func subtract(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, t := range b {
		inB[t] = struct{}{}
	}
	var out []string
	for _, t := range a {
		if _, ok := inB[t]; !ok {
			out = append(out, t)
		}
	}
	return out
}
