package resource

import "unicode"

// Code-point ranges that count as "written in the expected script". One CJK
// table covers Korean, Japanese and Chinese: Korean may mix Hanja, Japanese
// mixes Kanji with both Kana, and fullwidth forms appear in all three.
var (
	cjkTable = &unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: 0x1100, Hi: 0x11FF, Stride: 1}, // Hangul Jamo
			{Lo: 0x3040, Hi: 0x309F, Stride: 1}, // Hiragana
			{Lo: 0x30A0, Hi: 0x30FF, Stride: 1}, // Katakana
			{Lo: 0x3130, Hi: 0x318F, Stride: 1}, // Hangul Compatibility Jamo
			{Lo: 0x31F0, Hi: 0x31FF, Stride: 1}, // Katakana Phonetic Extensions
			{Lo: 0x3400, Hi: 0x4DBF, Stride: 1}, // CJK Unified Ideographs Extension A
			{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1}, // CJK Unified Ideographs
			{Lo: 0xAC00, Hi: 0xD7AF, Stride: 1}, // Hangul Syllables
			{Lo: 0xF900, Hi: 0xFAFF, Stride: 1}, // CJK Compatibility Ideographs
			{Lo: 0xFF00, Hi: 0xFFEF, Stride: 1}, // Halfwidth and Fullwidth Forms
		},
	}

	arabicTable = &unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: 0x0600, Hi: 0x06FF, Stride: 1}, // Arabic
			{Lo: 0x0750, Hi: 0x077F, Stride: 1}, // Arabic Supplement
			{Lo: 0x08A0, Hi: 0x08FF, Stride: 1}, // Arabic Extended-A
			{Lo: 0xFB50, Hi: 0xFDFF, Stride: 1}, // Arabic Presentation Forms-A
			{Lo: 0xFE70, Hi: 0xFEFF, Stride: 1}, // Arabic Presentation Forms-B
		},
	}

	devanagariTable = &unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: 0x0900, Hi: 0x097F, Stride: 1}, // Devanagari
			{Lo: 0xA8E0, Hi: 0xA8FF, Stride: 1}, // Devanagari Extended
		},
	}
)

// Table returns the code-point table for families whose text must visibly use
// their own script, or nil for Latin and unclassified locales.
func (f ScriptFamily) Table() *unicode.RangeTable {
	switch f {
	case ScriptCJK:
		return cjkTable
	case ScriptArabic:
		return arabicTable
	case ScriptDevanagari:
		return devanagariTable
	default:
		return nil
	}
}

// ContainsScript reports whether s has at least one code point in the
// family's table.
func ContainsScript(s string, f ScriptFamily) bool {
	table := f.Table()
	if table == nil {
		return false
	}
	for _, r := range s {
		if unicode.Is(table, r) {
			return true
		}
	}
	return false
}

// ContainsCJK reports whether s carries any CJK, Hangul or Kana character.
func ContainsCJK(s string) bool {
	return ContainsScript(s, ScriptCJK)
}
