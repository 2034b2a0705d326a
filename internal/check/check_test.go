package check

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"wsl-ui.dev/locheck/internal/pkg/logger"
	"wsl-ui.dev/locheck/internal/resource"
	"wsl-ui.dev/locheck/internal/rules"
	"wsl-ui.dev/locheck/internal/testutil"
)

func init() {
	_ = logger.Init("error", "console")
}

type fixture = testutil.Locales

func loadSet(t *testing.T, files fixture, targets ...string) *resource.Set {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteLocales(t, dir, files, "json", "")
	set, err := resource.NewLoader(resource.Options{
		Dir:        dir,
		Reference:  "en",
		Targets:    targets,
		Namespaces: []string{"common", "errors"},
		Format:     "json",
	}, testutil.NewPool(t, "check-test")).Load(context.Background())
	require.NoError(t, err)
	return set
}

func runAll(t *testing.T, set *resource.Set) []Result {
	t.Helper()
	checkers := DefaultCheckers(rules.Default(), Thresholds{MinIdenticalLength: 5, QualityIdenticalLength: 10})
	results, err := NewRunner(testutil.NewPool(t, "check-test"), checkers).Run(context.Background(), set)
	require.NoError(t, err)
	return results
}

func resultOf(results []Result, id ID) Result {
	for _, r := range results {
		if r.Check == id {
			return r
		}
	}
	return Result{}
}

func TestRunner_CleanSetPasses(t *testing.T) {
	set := loadSet(t, fixture{
		"en": {"common": `{"save": "Save changes", "menu": {"open": "Open {{name}}"}}`, "errors": `{"timeout": "Timed out"}`},
		"de": {"common": `{"save": "Änderungen speichern", "menu": {"open": "{{name}} öffnen"}}`, "errors": `{"timeout": "Zeitüberschreitung"}`},
		"ja": {"common": `{"save": "変更を保存", "menu": {"open": "{{name}} を開く"}}`, "errors": `{"timeout": "タイムアウト"}`},
	}, "de", "ja")

	require.True(t, Structure(set).Passed)
	results := runAll(t, set)
	require.Len(t, results, 5)
	for _, r := range results {
		require.True(t, r.Passed, "%s: %+v", r.Check, r.Issues)
		require.NotNil(t, r.Issues)
	}
}

func TestUntranslated_FlagsIdenticalValue(t *testing.T) {
	set := loadSet(t, fixture{
		"en": {"common": `{"save": "Save", "settings": "Settings", "docker": "Docker Desktop"}`, "errors": `{}`},
		"de": {"common": `{"save": "Save", "settings": "Settings", "docker": "Docker Desktop"}`, "errors": `{}`},
	}, "de")

	issues := Untranslated{Rules: rules.Default(), MinLength: 5}.CheckLocale(set, set.Targets[0])
	require.Len(t, issues, 1)
	require.Equal(t, "settings", issues[0].Key)
	require.Equal(t, KindSuspiciousIdentical, issues[0].Kind)
	require.Equal(t, "de", issues[0].Locale)
}

func TestUntranslated_LengthBoundary(t *testing.T) {
	set := loadSet(t, fixture{
		"en": {"common": `{"five": "Abcde", "six": "Abcdef"}`, "errors": `{}`},
		"fr": {"common": `{"five": "Abcde", "six": "Abcdef"}`, "errors": `{}`},
	}, "fr")

	issues := Untranslated{Rules: rules.Default(), MinLength: 5}.CheckLocale(set, set.Targets[0])
	require.Len(t, issues, 1)
	require.Equal(t, "six", issues[0].Key)
}

func TestInterpolation_ReportsMissingAndExtra(t *testing.T) {
	set := loadSet(t, fixture{
		"en": {"common": `{}`, "errors": `{"timeout": "Timed out after {{seconds}}s"}`},
		"fr": {"common": `{}`, "errors": `{"timeout": "Délai dépassé après {{sec}}s"}`},
	}, "fr")

	issues := Interpolation{}.CheckLocale(set, set.Targets[0])
	require.Len(t, issues, 1)
	require.Equal(t, []string{"{{seconds}}"}, issues[0].Missing)
	require.Equal(t, []string{"{{sec}}"}, issues[0].Extra)
	require.Equal(t, "errors", issues[0].Namespace)
	require.Equal(t, "timeout", issues[0].Key)
	require.Contains(t, issues[0].Message, "{{seconds}}")
}

func TestInterpolation_IgnoresOrderAndNonStrings(t *testing.T) {
	set := loadSet(t, fixture{
		"en": {"common": `{"copy": "Copied {{a}} of {{b}}", "list": ["{{x}}"], "n": "{{y}}"}`, "errors": `{}`},
		"de": {"common": `{"copy": "{{b}}: {{a}} kopiert", "list": ["none"], "n": {"nested": "{{z}}"}}`, "errors": `{}`},
	}, "de")

	require.Empty(t, Interpolation{}.CheckLocale(set, set.Targets[0]))
}

func TestQuality_IdenticalCJKValue(t *testing.T) {
	set := loadSet(t, fixture{
		"en":    {"common": `{"import": "Import from tar", "title": "設定"}`, "errors": `{}`},
		"zh-CN": {"common": `{"import": "Import from tar", "title": "設定"}`, "errors": `{}`},
	}, "zh-CN")

	issues := Quality{Rules: rules.Default(), IdenticalLength: 10}.CheckLocale(set, set.Targets[0])
	require.Len(t, issues, 2)
	require.Equal(t, KindNoExpectedScript, issues[0].Kind)
	require.Equal(t, KindIdenticalToEnglish, issues[1].Kind)
	require.Equal(t, "import", issues[0].Key)
	require.Contains(t, issues[0].Message, "CJK")
}

func TestQuality_TranslatedWithoutScript(t *testing.T) {
	set := loadSet(t, fixture{
		"en": {"common": `{"delete": "Delete distribution", "docker": "Docker", "short": "Delete it"}`, "errors": `{}`},
		"ar": {"common": `{"delete": "Remove distribution", "docker": "Docker", "short": "حذف"}`, "errors": `{}`},
	}, "ar")

	issues := Quality{Rules: rules.Default(), IdenticalLength: 10}.CheckLocale(set, set.Targets[0])
	require.Len(t, issues, 1)
	require.Equal(t, "delete", issues[0].Key)
	require.Equal(t, KindNoExpectedScript, issues[0].Kind)
}

func TestQuality_SkipsLatinLocales(t *testing.T) {
	set := loadSet(t, fixture{
		"en": {"common": `{"import": "Import from tar archive"}`, "errors": `{}`},
		"it": {"common": `{"import": "Import from tar archive"}`, "errors": `{}`},
	}, "it")

	require.Empty(t, Quality{Rules: rules.Default(), IdenticalLength: 10}.CheckLocale(set, set.Targets[0]))
}

func TestCompleteness_MissingNamespaceFile(t *testing.T) {
	set := loadSet(t, fixture{
		"en": {"common": `{"save": "Save"}`, "errors": `{"a": "A", "b": {"c": "C"}}`},
		"de": {"common": `{"save": "Speichern"}`},
	}, "de")

	structure := Structure(set)
	require.False(t, structure.Passed)
	var messages []string
	for _, is := range structure.Issues {
		messages = append(messages, is.Message)
	}
	require.Contains(t, messages, "Missing file errors.json")

	issues := Completeness{}.CheckLocale(set, set.Targets[0])
	require.Len(t, issues, 2)
	for _, is := range issues {
		require.Equal(t, KindMissing, is.Kind)
		require.Equal(t, "errors", is.Namespace)
	}
	require.Equal(t, "a", issues[0].Key)
	require.Equal(t, "b.c", issues[1].Key)
}

func TestCompleteness_Symmetry(t *testing.T) {
	files := fixture{
		"en": {"common": `{"a": "A", "b": "B"}`, "errors": `{}`},
		"de": {"common": `{"b": "B2", "c": "C"}`, "errors": `{}`},
	}
	set := loadSet(t, files, "de")
	issues := Completeness{}.CheckLocale(set, set.Targets[0])
	require.Len(t, issues, 2)
	require.Equal(t, KindMissing, issues[0].Kind)
	require.Equal(t, "a", issues[0].Key)
	require.Equal(t, KindOrphan, issues[1].Kind)
	require.Equal(t, "c", issues[1].Key)

	// swapping roles swaps the kinds
	swapped := loadSet(t, fixture{"en": files["de"], "de": files["en"]}, "de")
	issues = Completeness{}.CheckLocale(swapped, swapped.Targets[0])
	require.Len(t, issues, 2)
	require.Equal(t, KindMissing, issues[0].Kind)
	require.Equal(t, "c", issues[0].Key)
	require.Equal(t, KindOrphan, issues[1].Kind)
	require.Equal(t, "a", issues[1].Key)
}

func TestPlaceholders(t *testing.T) {
	set := loadSet(t, fixture{
		"en": {"common": `{"a": "Delete", "b": "Rename"}`, "errors": `{}`},
		"pl": {"common": `{"a": "[EN] Delete", "b": "Zmień [EN]", "c": "[EN] Orphan"}`, "errors": `{}`},
	}, "pl")

	issues := Placeholders{}.CheckLocale(set, set.Targets[0])
	require.Len(t, issues, 2)
	require.Equal(t, "a", issues[0].Key)
	require.Equal(t, "c", issues[1].Key)
}

func TestRunner_DeterministicAcrossRuns(t *testing.T) {
	files := fixture{"en": {"common": `{"k": "Open the folder", "t": "{{n}} items"}`, "errors": `{}`}}
	targets := []string{"de", "fr", "ja", "ko", "zh-TW", "ru"}
	for _, loc := range targets {
		files[loc] = map[string]string{"common": `{"k": "Open the folder", "x": "orphan"}`, "errors": `{}`}
	}
	set := loadSet(t, files, targets...)

	first := runAll(t, set)
	second := runAll(t, set)
	require.Equal(t, first, second)

	completeness := resultOf(first, IDCompleteness)
	require.Len(t, completeness.Issues, 2*len(targets))
	for i, loc := range targets {
		require.Equal(t, loc, completeness.Issues[2*i].Locale)
	}
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", Truncate("short", 60))
	require.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	require.Equal(t, "日本語の...", Truncate("日本語のテキストです", 7))
	require.Equal(t, "ab", Truncate("abcdef", 2))
}
