// Package app is the composition root: it wires configuration, the worker
// pool, the loader, the checks and the scanner into one verification run.
//
// Import Path: wsl-ui.dev/locheck/internal/app
package app

import (
	"fmt"

	"go.uber.org/zap"

	"wsl-ui.dev/locheck/internal/check"
	"wsl-ui.dev/locheck/internal/config"
	"wsl-ui.dev/locheck/internal/pkg/logger"
	"wsl-ui.dev/locheck/internal/pkg/worker"
	"wsl-ui.dev/locheck/internal/resource"
	"wsl-ui.dev/locheck/internal/rules"
	"wsl-ui.dev/locheck/internal/scan"
)

// Application holds composed dependencies for one run.
type Application struct {
	Config  *config.Config
	Pool    *worker.Pool
	Rules   *rules.Set
	Loader  *resource.Loader
	Runner  *check.Runner
	Scanner *scan.Scanner // nil when source.dir is empty
}

// Bootstrap builds an Application using manual DI. The caller owns Shutdown.
func Bootstrap(cfg *config.Config) (*Application, error) {
	pool, err := worker.NewPool("locales", cfg.Worker.PoolSize)
	if err != nil {
		return nil, fmt.Errorf("init worker pool: %w", err)
	}

	rs := rules.New(rules.Options{
		ExtraTerms:    cfg.Rules.ExtraTerms,
		MaxTitleWords: cfg.Rules.MaxTitleWords,
	})

	loader := resource.NewLoader(resource.Options{
		Dir:        cfg.Locales.Dir,
		Reference:  cfg.Locales.Reference,
		Targets:    cfg.Locales.Targets,
		Namespaces: cfg.Locales.Namespaces,
		Format:     cfg.Locales.Format,
		IndexFile:  cfg.Locales.IndexFile,
	}, pool)

	runner := check.NewRunner(pool, check.DefaultCheckers(rs, check.Thresholds{
		MinIdenticalLength:     cfg.Rules.MinIdenticalLength,
		QualityIdenticalLength: cfg.Rules.QualityIdenticalLength,
	}))

	var scanner *scan.Scanner
	if cfg.Source.Dir != "" {
		scanner, err = scan.New(scan.Options{
			Root:          cfg.Source.Dir,
			Include:       cfg.Source.Include,
			Exclude:       cfg.Source.Exclude,
			SkipDirs:      []string{cfg.Locales.Dir},
			ForeignScript: cfg.Source.ForeignScript,
		}, rs, pool)
		if err != nil {
			pool.Release()
			return nil, fmt.Errorf("init source scanner: %w", err)
		}
	}

	logger.Debug("Application bootstrapped",
		zap.String("locales_dir", cfg.Locales.Dir),
		zap.String("reference", cfg.Locales.Reference),
		zap.Int("targets", len(cfg.Locales.Targets)),
		zap.Int("namespaces", len(cfg.Locales.Namespaces)),
		zap.Int("rules", len(rs.Rules())),
		zap.Any("pool", pool.Metrics()),
	)

	return &Application{
		Config:  cfg,
		Pool:    pool,
		Rules:   rs,
		Loader:  loader,
		Runner:  runner,
		Scanner: scanner,
	}, nil
}
