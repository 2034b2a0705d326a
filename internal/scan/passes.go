package scan

import (
	"html"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"wsl-ui.dev/locheck/internal/check"
	"wsl-ui.dev/locheck/internal/resource"
)

var (
	// Text between a closing '>' and the next '<' with no expression braces.
	jsxTextPattern = regexp.MustCompile(">([^<>{}`]+)<")

	attrPattern = regexp.MustCompile(`(?:^|\s)(title|placeholder|aria-label|label)\s*=\s*(?:"([^"{}]*)"|'([^'{}]*)')`)

	// Signals that a '>'...'<' match straddles TypeScript rather than markup,
	// e.g. a generic's closing '>' followed by an assignment.
	codeSignalPattern = regexp.MustCompile(`^\s*=|=>|&&|\|\||[!=]==|\n\s*(?:const|let|var|return|if|function|import|export|type|interface)\b`)

	stringLiteralPattern = regexp.MustCompile(`'([^'\n]*)'|"([^"\n]*)"`)
	localeTagPattern     = regexp.MustCompile(`['"][a-z]{2,3}(?:[-_][A-Za-z]{4})?(?:[-_](?:[A-Z]{2}|\d{3}))?['"]`)

	lowerIdentPattern  = regexp.MustCompile(`^[a-z][A-Za-z0-9_.\-]*$`)
	allCapsPattern     = regexp.MustCompile(`^[A-Z0-9_]+$`)
	numericUnitPattern = regexp.MustCompile(`^[\d\s.,:/+\-x×]*(px|em|rem|vh|vw|%|ms|s|KB|MB|GB|TB)?$`)
	classTokensPattern = regexp.MustCompile(`^[a-z0-9:/_\[\]\-.]+(\s+[a-z0-9:/_\[\]\-.]+)*$`)
)

const foreignLiteralLimit = 120

type candidate struct {
	offset int
	kind   string
	text   string
}

// scanContent runs the JSX-text and attribute passes over one file, plus the
// foreign-script literal pass when enabled. Each distinct string is reported
// once, at its first occurrence.
func (s *Scanner) scanContent(rel, content string) []Finding {
	var cands []candidate
	lines := newLineIndex(content)

	for _, m := range jsxTextPattern.FindAllStringSubmatchIndex(content, -1) {
		raw := content[m[2]:m[3]]
		decoded := html.UnescapeString(raw)
		if codeSignalPattern.MatchString(decoded) {
			continue
		}
		text := normalizeSpace(decoded)
		if !s.isUserText(text) {
			continue
		}
		cands = append(cands, candidate{offset: m[2] + leadingSpace(raw), kind: KindHardcodedText, text: text})
	}

	for _, m := range attrPattern.FindAllStringSubmatchIndex(content, -1) {
		start, end := m[4], m[5]
		if start < 0 {
			start, end = m[6], m[7]
		}
		text := normalizeSpace(html.UnescapeString(content[start:end]))
		if !s.isAttributeText(text) {
			continue
		}
		cands = append(cands, candidate{offset: m[2], kind: KindHardcodedAttribute, text: text})
	}

	if s.opts.ForeignScript {
		cands = append(cands, foreignLiterals(content, lines)...)
	}

	sort.SliceStable(cands, func(i, j int) bool { return cands[i].offset < cands[j].offset })

	seen := make(map[string]struct{}, len(cands))
	findings := make([]Finding, 0, len(cands))
	for _, c := range cands {
		if _, dup := seen[c.text]; dup {
			continue
		}
		seen[c.text] = struct{}{}
		findings = append(findings, Finding{File: rel, Line: lines.lineOf(c.offset), Kind: c.kind, Text: c.text})
	}
	return findings
}

// foreignLiterals returns quoted string literals carrying CJK text. Comment
// lines and lines that pair the literal with a locale tag, as in a language
// picker, are skipped.
func foreignLiterals(content string, lines lineIndex) []candidate {
	var cands []candidate
	for _, m := range stringLiteralPattern.FindAllStringSubmatchIndex(content, -1) {
		start, end := m[2], m[3]
		if start < 0 {
			start, end = m[4], m[5]
		}
		text := strings.TrimSpace(content[start:end])
		if !resource.ContainsCJK(text) {
			continue
		}
		line := lines.text(content, m[0])
		if isCommentLine(line) || localeTagPattern.MatchString(line) {
			continue
		}
		cands = append(cands, candidate{
			offset: m[0],
			kind:   KindForeignScript,
			text:   check.Truncate(text, foreignLiteralLimit),
		})
	}
	return cands
}

func isCommentLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range []string{"//", "/*", "*", "{/*"} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// isUserText decides whether JSX text looks like prose a user would read.
func (s *Scanner) isUserText(text string) bool {
	switch {
	case text == "" || !hasLetter(text):
		return false
	case numericUnitPattern.MatchString(text):
		return false
	case lowerIdentPattern.MatchString(text), allCapsPattern.MatchString(text):
		return false
	case isClassTokens(text):
		return false
	case s.rules.IsTechnicalTerm(text):
		return false
	}
	return true
}

func (s *Scanner) isAttributeText(text string) bool {
	switch {
	case utf8.RuneCountInString(text) < 3 || !hasLetter(text):
		return false
	case lowerIdentPattern.MatchString(text), isClassTokens(text):
		return false
	case s.rules.IsTechnicalTerm(text):
		return false
	}
	return true
}

func isClassTokens(text string) bool {
	return strings.ContainsAny(text, "-:") && classTokensPattern.MatchString(text)
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func leadingSpace(s string) int {
	return len(s) - len(strings.TrimLeftFunc(s, unicode.IsSpace))
}

// lineIndex maps byte offsets to 1-based line numbers.
type lineIndex []int

func newLineIndex(content string) lineIndex {
	starts := lineIndex{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func (li lineIndex) lineOf(offset int) int {
	return sort.Search(len(li), func(i int) bool { return li[i] > offset })
}

// text returns the content of the line holding offset, without its newline.
func (li lineIndex) text(content string, offset int) string {
	n := li.lineOf(offset)
	start := li[n-1]
	end := len(content)
	if n < len(li) {
		end = li[n] - 1
	}
	return content[start:end]
}
