package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet_Match(t *testing.T) {
	s := Default()

	tests := []struct {
		name     string
		value    string
		locale   string
		wantRule string
	}{
		{"trivial", "OK", "de", "trivial"},
		{"technical term", "Docker Desktop", "fr", "technical-term"},
		{"locale term de", "Status", "de", "locale-term"},
		{"locale term by base language", "Backup", "pt-BR", "locale-term"},
		{"interpolation only", "{{count}}", "de", "interpolation-only"},
		{"interpolation dominated", "in {{hours}}h", "de", "interpolation-only"},
		{"interpolation around term", "{{name}} WSL", "de", "interpolation-only"},
		{"duration", "30 seconds", "de", "duration"},
		{"url", "https://learn.microsoft.com/windows/wsl", "de", "url"},
		{"unc path", `\\wsl$\Ubuntu\home`, "de", "path"},
		{"drive path", `C:\Users\me\.wslconfig`, "de", "path"},
		{"shortcut", "Ctrl+Shift+P", "de", "shortcut"},
		{"semver", "v2.3.1-beta.1", "de", "semver"},
		{"number with unit", "512 MB", "de", "number"},
		{"percent", "75%", "de", "number"},
		{"env var", "%USERPROFILE%/.wslconfig", "de", "env-var"},
		{"shell env var", "echo $HOME", "de", "env-var"},
		{"executable", "wslconfig.exe", "de", "executable"},
		{"cli flag", "wsl --shutdown now", "de", "cli-flag"},
		{"email", "support@example.com", "de", "email"},
		{"title case phrase", "Windows Update Service", "de", "title-case"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := s.Match(tt.value, tt.locale)
			require.True(t, ok, "%q should be exempt", tt.value)
			require.Equal(t, tt.wantRule, rule)
		})
	}
}

func TestSet_NotExempt(t *testing.T) {
	s := Default()

	values := []string{
		"Settings",
		"Open the folder",
		"Timed out after {{seconds}}s",
		"Status",                  // only exempt in specific locales
		"Save All Of It",          // contains a function word
		"One Two Three Four Five", // above the word cap
		"5 days",
		"Ctrl",
		"--flag",
		"hello world",
	}
	for _, v := range values {
		t.Run(v, func(t *testing.T) {
			require.False(t, s.IsKnownIdentical(v, "ja"), "%q should not be exempt", v)
		})
	}
}

func TestSet_LocaleTermIsScoped(t *testing.T) {
	s := Default()
	require.True(t, s.IsKnownIdentical("Online", "de"))
	require.False(t, s.IsKnownIdentical("Online", "ja"))
	require.False(t, s.IsKnownIdentical("Online", ""))
}

func TestSet_GlobalTermsExemptEveryLocale(t *testing.T) {
	s := Default()
	locales := []string{"", "de", "fr", "ja", "zh-CN", "ar", "hi", "pt-BR", "unknown"}
	for term := range s.terms {
		if !s.IsKnownIdentical(term, "") {
			continue
		}
		for _, loc := range locales {
			require.True(t, s.IsKnownIdentical(term, loc), "%q exempt globally but not for %q", term, loc)
		}
	}
}

func TestNew_Options(t *testing.T) {
	s := New(Options{ExtraTerms: []string{"Kubernetes Dashboard Pro"}, MaxTitleWords: 2})
	require.True(t, s.IsTechnicalTerm("Kubernetes Dashboard Pro"))
	require.False(t, Default().IsTechnicalTerm("Kubernetes Dashboard Pro"))

	// the tighter word cap rejects three-word phrases
	require.False(t, s.IsKnownIdentical("Windows Update Service", "de"))
	require.True(t, s.IsKnownIdentical("Update Service", "de"))

	require.Equal(t, DefaultMaxTitleWords, New(Options{MaxTitleWords: 1}).maxTitleWords)
}

func TestSet_RulesOrder(t *testing.T) {
	rules := Default().Rules()
	require.Equal(t, "trivial", rules[0].Name)
	require.Equal(t, "technical-term", rules[1].Name)
	require.Equal(t, "locale-term", rules[2].Name)
	require.Equal(t, "interpolation-only", rules[3].Name)
	require.Equal(t, "title-case", rules[len(rules)-1].Name)
}

func TestTokens(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"two tokens", "{{a}}{{b}}", []string{"{{a}}", "{{b}}"}},
		{"surrounding text", "Copied {{a}} of {{b}} files", []string{"{{a}}", "{{b}}"}},
		{"duplicates collapse", "{{a}} and {{a}}", []string{"{{a}}"}},
		{"opaque content", "{{ count, number }}", []string{"{{ count, number }}"}},
		{"case preserved", "{{Name}} {{name}}", []string{"{{Name}}", "{{name}}"}},
		{"none", "No tokens {here}", nil},
		{"unterminated", "Broken {{token", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Tokens(tt.value))
		})
	}
}

func TestDiff(t *testing.T) {
	missing, extra := Diff("Timed out after {{seconds}}s", "Délai dépassé après {{sec}}s")
	require.Equal(t, []string{"{{seconds}}"}, missing)
	require.Equal(t, []string{"{{sec}}"}, extra)

	missing, extra = Diff("{{a}} {{b}}", "{{b}} {{a}}")
	require.Empty(t, missing)
	require.Empty(t, extra)
}
