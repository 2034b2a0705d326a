package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wsl-ui.dev/locheck/internal/check"
	apperrors "wsl-ui.dev/locheck/internal/pkg/errors"
	"wsl-ui.dev/locheck/internal/pkg/logger"
	"wsl-ui.dev/locheck/internal/report"
)

// Run executes every check once and aggregates the results. Findings never
// surface as errors; an error means the run itself could not complete.
//
// A missing reference locale yields a report holding only the failed
// structural check, since nothing can be compared against it.
func (a *Application) Run(ctx context.Context) (*report.Report, error) {
	start := time.Now()
	runID, err := uuid.NewV7()
	if err != nil {
		runID = uuid.New()
	}
	log := logger.With(zap.String("run_id", runID.String()))

	set, err := a.Loader.Load(ctx)
	if err != nil {
		if apperrors.HasCode(err, apperrors.CodeReferenceMissing) && set != nil {
			log.Warn("Reference locale missing, skipping dependent checks", zap.Error(err))
			return report.New([]check.Result{check.Structure(set)}), nil
		}
		return nil, fmt.Errorf("load locales: %w", err)
	}
	log.Debug("Resource set loaded",
		zap.Int("problems", len(set.Problems)),
		zap.Duration("elapsed", time.Since(start)),
	)

	results := []check.Result{check.Structure(set)}
	localeResults, err := a.Runner.Run(ctx, set)
	if err != nil {
		return nil, fmt.Errorf("run locale checks: %w", err)
	}
	results = append(results, localeResults...)

	if a.Scanner != nil {
		coverage, err := a.Scanner.Check(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan sources: %w", err)
		}
		results = append(results, coverage)
	} else {
		log.Debug("Source coverage disabled")
	}

	rep := report.New(results)
	log.Info("Run completed",
		zap.Bool("passed", rep.Passed),
		zap.Int("checks", len(results)),
		zap.Duration("duration", time.Since(start)),
	)
	return rep, nil
}

// Shutdown releases the worker pool. Safe on a partially built Application.
func (a *Application) Shutdown() {
	if a.Pool != nil {
		a.Pool.Release()
	}
}
