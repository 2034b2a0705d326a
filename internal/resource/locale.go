package resource

import (
	"golang.org/x/text/language"
)

// ScriptFamily classifies a locale by the writing system its strings are
// expected to use.
type ScriptFamily int

// Script families. ScriptOther covers scripts the quality check has no rule
// for (Cyrillic, Greek, Hebrew, ...) and unparsable tags.
const (
	ScriptOther ScriptFamily = iota
	ScriptLatin
	ScriptCJK
	ScriptArabic
	ScriptDevanagari
)

// String returns the family name used in reports.
func (f ScriptFamily) String() string {
	switch f {
	case ScriptLatin:
		return "Latin"
	case ScriptCJK:
		return "CJK"
	case ScriptArabic:
		return "Arabic"
	case ScriptDevanagari:
		return "Devanagari"
	default:
		return "Other"
	}
}

// Locale is a resource locale identifier with its script classification.
type Locale struct {
	// ID is the directory name, e.g. "zh-CN".
	ID     string
	Tag    language.Tag
	Family ScriptFamily
}

// ParseLocale classifies id by the likely script of its BCP 47 tag. Directory
// names that are not valid tags keep their ID with family ScriptOther.
func ParseLocale(id string) Locale {
	tag, err := language.Parse(id)
	if err != nil {
		return Locale{ID: id, Tag: language.Und, Family: ScriptOther}
	}
	script, _ := tag.Script()
	return Locale{ID: id, Tag: tag, Family: familyOf(script)}
}

func familyOf(script language.Script) ScriptFamily {
	switch script.String() {
	case "Latn":
		return ScriptLatin
	case "Hans", "Hant", "Hani", "Jpan", "Hira", "Kana", "Kore", "Hang":
		return ScriptCJK
	case "Arab":
		return ScriptArabic
	case "Deva":
		return ScriptDevanagari
	default:
		return ScriptOther
	}
}

func (l Locale) String() string {
	return l.ID
}
