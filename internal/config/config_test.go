package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "wsl-ui.dev/locheck/internal/pkg/errors"
)

func TestLoad_Defaults(t *testing.T) {
	// Ensure no env vars interfere
	os.Unsetenv("LOCALES_DIR")
	os.Unsetenv("REPORT_MAX_EXAMPLES")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "src/i18n/locales", cfg.Locales.Dir)
	require.Equal(t, "en", cfg.Locales.Reference)
	require.Equal(t, DefaultTargets, cfg.Locales.Targets)
	require.Equal(t, DefaultNamespaces, cfg.Locales.Namespaces)
	require.Equal(t, FormatJSON, cfg.Locales.Format)
	require.Equal(t, "index.ts", cfg.Locales.IndexFile)

	require.Equal(t, "src", cfg.Source.Dir)
	require.Equal(t, []string{"**/*.tsx"}, cfg.Source.Include)
	require.Contains(t, cfg.Source.Exclude, "**/*.test.tsx")
	require.False(t, cfg.Source.ForeignScript)

	require.Equal(t, 5, cfg.Rules.MinIdenticalLength)
	require.Equal(t, 10, cfg.Rules.QualityIdenticalLength)
	require.Equal(t, 4, cfg.Rules.MaxTitleWords)

	require.Equal(t, ReportText, cfg.Report.Format)
	require.Equal(t, 10, cfg.Report.MaxExamples)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, "console", cfg.Log.Format)
	require.Equal(t, 0, cfg.Worker.PoolSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LOCALES_DIR", "/srv/ui/locales")
	t.Setenv("REPORT_MAX_EXAMPLES", "3")
	t.Setenv("REPORT_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "/srv/ui/locales", cfg.Locales.Dir)
	require.Equal(t, 3, cfg.Report.MaxExamples)
	require.Equal(t, ReportJSON, cfg.Report.Format)
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "locheck.yaml")
	content := `locales:
  dir: web/locales
  reference: en
  targets: [de, ja]
  namespaces: [common, errors]
  format: yaml
source:
  foreign_script: true
rules:
  extra_terms: [Kubernetes]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "web/locales", cfg.Locales.Dir)
	require.Equal(t, []string{"de", "ja"}, cfg.Locales.Targets)
	require.Equal(t, []string{"common", "errors"}, cfg.Locales.Namespaces)
	require.Equal(t, []string{"Kubernetes"}, cfg.Rules.ExtraTerms)
	require.True(t, cfg.Source.ForeignScript)
	// untouched keys keep their defaults
	require.Equal(t, 10, cfg.Report.MaxExamples)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Locales: LocalesConfig{
				Dir:        "locales",
				Reference:  "en",
				Targets:    []string{"de"},
				Namespaces: []string{"common"},
				Format:     FormatJSON,
			},
			Rules:  RulesConfig{MinIdenticalLength: 5, QualityIdenticalLength: 10, MaxTitleWords: 4},
			Report: ReportConfig{Format: ReportText, MaxExamples: 10},
		}
	}

	tests := []struct {
		name     string
		mutate   func(c *Config)
		wantCode string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty dir", func(c *Config) { c.Locales.Dir = " " }, apperrors.CodeConfigInvalid},
		{"empty reference", func(c *Config) { c.Locales.Reference = "" }, apperrors.CodeConfigInvalid},
		{"reference among targets", func(c *Config) { c.Locales.Targets = []string{"de", "en"} }, apperrors.CodeConfigInvalid},
		{"no namespaces", func(c *Config) { c.Locales.Namespaces = nil }, apperrors.CodeConfigInvalid},
		{"duplicate namespace", func(c *Config) { c.Locales.Namespaces = []string{"common", "common"} }, apperrors.CodeConfigInvalid},
		{"duplicate target", func(c *Config) { c.Locales.Targets = []string{"de", "de"} }, apperrors.CodeConfigInvalid},
		{"unknown resource format", func(c *Config) { c.Locales.Format = "xml" }, apperrors.CodeUnsupportedFormat},
		{"unknown report format", func(c *Config) { c.Report.Format = "html" }, apperrors.CodeUnsupportedFormat},
		{"zero max examples", func(c *Config) { c.Report.MaxExamples = 0 }, apperrors.CodeConfigInvalid},
		{"negative threshold", func(c *Config) { c.Rules.MinIdenticalLength = -1 }, apperrors.CodeConfigInvalid},
		{"title words too small", func(c *Config) { c.Rules.MaxTitleWords = 1 }, apperrors.CodeConfigInvalid},
		{"negative pool size", func(c *Config) { c.Worker.PoolSize = -2 }, apperrors.CodeConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantCode == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.True(t, apperrors.HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}
