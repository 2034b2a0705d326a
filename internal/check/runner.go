package check

import (
	"context"
	"time"

	"go.uber.org/zap"

	"wsl-ui.dev/locheck/internal/pkg/logger"
	"wsl-ui.dev/locheck/internal/pkg/worker"
	"wsl-ui.dev/locheck/internal/resource"
	"wsl-ui.dev/locheck/internal/rules"
)

// Thresholds are the tunable length limits of the identity checks.
type Thresholds struct {
	MinIdenticalLength     int
	QualityIdenticalLength int
}

// DefaultCheckers returns the reference-comparison checks in report order.
func DefaultCheckers(rs *rules.Set, th Thresholds) []LocaleChecker {
	return []LocaleChecker{
		Completeness{},
		Interpolation{},
		Placeholders{},
		Untranslated{Rules: rs, MinLength: th.MinIdenticalLength},
		Quality{Rules: rs, IdenticalLength: th.QualityIdenticalLength},
	}
}

// Runner evaluates LocaleCheckers for every target locale on a worker pool.
type Runner struct {
	pool     *worker.Pool
	checkers []LocaleChecker
}

// NewRunner creates a Runner.
func NewRunner(pool *worker.Pool, checkers []LocaleChecker) *Runner {
	return &Runner{pool: pool, checkers: checkers}
}

// Run returns one Result per checker. Issues are ordered by target locale in
// configured order regardless of which worker finished first.
func (r *Runner) Run(ctx context.Context, set *resource.Set) ([]Result, error) {
	start := time.Now()

	// found[checker][locale]
	found := make([][][]Issue, len(r.checkers))
	for i := range found {
		found[i] = make([][]Issue, len(set.Targets))
	}

	tasks := make([]worker.Task, len(set.Targets))
	for li, target := range set.Targets {
		li, target := li, target
		tasks[li] = func(context.Context) {
			for ci, c := range r.checkers {
				found[ci][li] = c.CheckLocale(set, target)
			}
		}
	}
	if err := r.pool.RunAll(ctx, tasks); err != nil {
		return nil, err
	}

	results := make([]Result, len(r.checkers))
	for ci, c := range r.checkers {
		var issues []Issue
		for _, perLocale := range found[ci] {
			issues = append(issues, perLocale...)
		}
		results[ci] = NewResult(c.ID(), c.Title(), issues)
		logger.Debug("Check finished",
			zap.String("check", string(c.ID())),
			zap.Int("issues", len(issues)),
		)
	}

	logger.Debug("Locale checks completed",
		zap.Int("locales", len(set.Targets)),
		zap.Duration("duration", time.Since(start)),
	)
	return results, nil
}
