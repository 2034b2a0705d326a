// Package config provides configuration management for locheck.
//
// Configuration is loaded from:
// 1. locheck.yaml file (optional; --config selects an explicit path)
// 2. Environment variables (LOCALES_DIR, REPORT_MAX_EXAMPLES, LOG_LEVEL, ...)
// 3. Default values, which mirror the locale tree shipped with the UI
//
// Import Path: wsl-ui.dev/locheck/internal/config
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	apperrors "wsl-ui.dev/locheck/internal/pkg/errors"
)

// Config is the root configuration structure.
type Config struct {
	Locales LocalesConfig `mapstructure:"locales"`
	Source  SourceConfig  `mapstructure:"source"`
	Rules   RulesConfig   `mapstructure:"rules"`
	Report  ReportConfig  `mapstructure:"report"`
	Log     LogConfig     `mapstructure:"log"`
	Worker  WorkerConfig  `mapstructure:"worker"`
}

// LocalesConfig describes the translation resource tree.
type LocalesConfig struct {
	Dir        string   `mapstructure:"dir"`
	Reference  string   `mapstructure:"reference"`
	Targets    []string `mapstructure:"targets"`
	Namespaces []string `mapstructure:"namespaces"`
	Format     string   `mapstructure:"format"` // json, yaml or toml
	IndexFile  string   `mapstructure:"index_file"`
}

// SourceConfig describes the UI source tree scanned for hardcoded strings.
// An empty Dir disables the coverage scan.
type SourceConfig struct {
	Dir     string   `mapstructure:"dir"`
	Include []string `mapstructure:"include"`
	Exclude []string `mapstructure:"exclude"`
	// ForeignScript also flags CJK string literals and JSX text as
	// bypassing the translation layer.
	ForeignScript bool `mapstructure:"foreign_script"`
}

// RulesConfig holds the tunable heuristic thresholds.
type RulesConfig struct {
	MinIdenticalLength     int      `mapstructure:"min_identical_length"`
	QualityIdenticalLength int      `mapstructure:"quality_identical_length"`
	MaxTitleWords          int      `mapstructure:"max_title_words"`
	ExtraTerms             []string `mapstructure:"extra_terms"`
}

// ReportConfig contains output settings.
type ReportConfig struct {
	Format      string `mapstructure:"format"` // text or json
	MaxExamples int    `mapstructure:"max_examples"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

// WorkerConfig contains worker pool settings.
type WorkerConfig struct {
	PoolSize int `mapstructure:"pool_size"` // 0 means runtime.NumCPU()
}

// Resource file formats understood by the loader.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Report output formats.
const (
	ReportText = "text"
	ReportJSON = "json"
)

// DefaultNamespaces is the namespace list every locale directory carries.
var DefaultNamespaces = []string{
	"common",
	"dashboard",
	"distros",
	"dialogs",
	"settings",
	"errors",
	"notifications",
	"onboarding",
	"statusbar",
	"about",
}

// DefaultTargets is the list of shipped target locales.
var DefaultTargets = []string{
	"de", "es", "fr", "it", "pt-BR", "nl", "pl", "ru",
	"ja", "ko", "zh-CN", "zh-TW", "ar", "hi",
}

// Load reads configuration from file and environment variables.
// An empty path searches the default locations; a missing file there is not
// an error, but an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("locheck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Maps nested config: locales.dir → LOCALES_DIR
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks for configuration errors that would make a run meaningless.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Locales.Dir) == "" {
		return apperrors.ErrConfigInvalidf("locales.dir", "must not be empty")
	}
	if strings.TrimSpace(c.Locales.Reference) == "" {
		return apperrors.ErrConfigInvalidf("locales.reference", "must not be empty")
	}
	if slices.Contains(c.Locales.Targets, c.Locales.Reference) {
		return apperrors.ErrConfigInvalidf("locales.targets", "must not contain the reference locale "+c.Locales.Reference)
	}
	if len(c.Locales.Namespaces) == 0 {
		return apperrors.ErrConfigInvalidf("locales.namespaces", "must list at least one namespace")
	}
	if dup := firstDuplicate(c.Locales.Namespaces); dup != "" {
		return apperrors.ErrConfigInvalidf("locales.namespaces", "duplicate namespace "+dup)
	}
	if dup := firstDuplicate(c.Locales.Targets); dup != "" {
		return apperrors.ErrConfigInvalidf("locales.targets", "duplicate locale "+dup)
	}
	switch c.Locales.Format {
	case FormatJSON, FormatYAML, FormatTOML:
	default:
		return apperrors.ErrUnsupportedFormatf(c.Locales.Format)
	}
	switch c.Report.Format {
	case ReportText, ReportJSON:
	default:
		return apperrors.ErrUnsupportedFormatf(c.Report.Format)
	}
	if c.Report.MaxExamples <= 0 {
		return apperrors.ErrConfigInvalidf("report.max_examples", "must be positive")
	}
	if c.Rules.MinIdenticalLength < 0 || c.Rules.QualityIdenticalLength < 0 {
		return apperrors.ErrConfigInvalidf("rules", "length thresholds must not be negative")
	}
	if c.Rules.MaxTitleWords < 2 {
		return apperrors.ErrConfigInvalidf("rules.max_title_words", "must be at least 2")
	}
	if c.Worker.PoolSize < 0 {
		return apperrors.ErrConfigInvalidf("worker.pool_size", "must not be negative")
	}
	return nil
}

func firstDuplicate(values []string) string {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return v
		}
		seen[v] = struct{}{}
	}
	return ""
}

func setDefaults(v *viper.Viper) {
	// Locales
	v.SetDefault("locales.dir", "src/i18n/locales")
	v.SetDefault("locales.reference", "en")
	v.SetDefault("locales.targets", DefaultTargets)
	v.SetDefault("locales.namespaces", DefaultNamespaces)
	v.SetDefault("locales.format", FormatJSON)
	v.SetDefault("locales.index_file", "index.ts")

	// Source coverage
	v.SetDefault("source.dir", "src")
	v.SetDefault("source.include", []string{"**/*.tsx"})
	v.SetDefault("source.exclude", []string{
		"**/*.test.tsx",
		"**/*.spec.tsx",
		"**/__tests__/**",
	})
	v.SetDefault("source.foreign_script", false)

	// Heuristic thresholds
	v.SetDefault("rules.min_identical_length", 5)
	v.SetDefault("rules.quality_identical_length", 10)
	v.SetDefault("rules.max_title_words", 4)
	v.SetDefault("rules.extra_terms", []string{})

	// Report
	v.SetDefault("report.format", ReportText)
	v.SetDefault("report.max_examples", 10)

	// Log
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

	// Worker pool
	v.SetDefault("worker.pool_size", 0)
}
