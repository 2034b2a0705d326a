package resource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "wsl-ui.dev/locheck/internal/pkg/errors"
	"wsl-ui.dev/locheck/internal/pkg/logger"
	"wsl-ui.dev/locheck/internal/pkg/worker"
)

// Options describes where and how locale directories are laid out.
type Options struct {
	Dir        string
	Reference  string
	Targets    []string
	Namespaces []string
	Format     string // json, yaml or toml
	IndexFile  string
}

func (o Options) extension() string {
	return "." + o.Format
}

// Loader reads every locale directory into a Set.
type Loader struct {
	opts Options
	pool *worker.Pool
}

// NewLoader creates a Loader. Locales are loaded concurrently on pool.
func NewLoader(opts Options, pool *worker.Pool) *Loader {
	return &Loader{opts: opts, pool: pool}
}

type localeResult struct {
	flats    map[string]*Flat
	problems []Problem
}

// Load reads the reference and all target locales. Structural defects become
// Set.Problems and never abort loading. A missing reference directory returns
// the Set (carrying a missing-reference problem) together with a
// REFERENCE_LOCALE_MISSING error, since no comparison is possible.
func (l *Loader) Load(ctx context.Context) (*Set, error) {
	reference := ParseLocale(l.opts.Reference)
	targets := make([]Locale, len(l.opts.Targets))
	for i, id := range l.opts.Targets {
		targets[i] = ParseLocale(id)
	}
	set := newSet(reference, targets, l.opts.Namespaces)

	refDir := filepath.Join(l.opts.Dir, reference.ID)
	if !isDir(refDir) {
		set.Problems = append(set.Problems, Problem{
			Kind:    ProblemMissingReference,
			Locale:  reference.ID,
			Message: fmt.Sprintf("Reference locale directory %s not found", refDir),
		})
		return set, apperrors.ErrReferenceMissingf(reference.ID, refDir)
	}

	all := append([]Locale{reference}, targets...)
	results := make([]localeResult, len(all))
	tasks := make([]worker.Task, len(all))
	for i, loc := range all {
		i, loc := i, loc
		tasks[i] = func(ctx context.Context) {
			start := time.Now()
			results[i] = l.loadLocale(loc)
			logger.Debug("Locale loaded",
				zap.String("locale", loc.ID),
				zap.String("script", loc.Family.String()),
				zap.Int("problems", len(results[i].problems)),
				zap.Duration("elapsed", time.Since(start)),
			)
		}
	}
	if err := l.pool.RunAll(ctx, tasks); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeLocaleLoadFailed, "load locales")
	}

	for i, loc := range all {
		set.put(loc.ID, results[i].flats)
		set.Problems = append(set.Problems, results[i].problems...)
	}
	return set, nil
}

func (l *Loader) loadLocale(loc Locale) localeResult {
	res := localeResult{flats: make(map[string]*Flat, len(l.opts.Namespaces))}
	dir := filepath.Join(l.opts.Dir, loc.ID)

	if !isDir(dir) {
		res.problems = append(res.problems, Problem{
			Kind:    ProblemMissingLocale,
			Locale:  loc.ID,
			Message: fmt.Sprintf("Locale directory %s not found", dir),
		})
		for _, ns := range l.opts.Namespaces {
			res.flats[ns] = EmptyFlat()
		}
		return res
	}

	res.problems = append(res.problems, l.checkLayout(loc.ID, dir)...)

	for _, ns := range l.opts.Namespaces {
		flat, problems := l.loadNamespace(loc.ID, dir, ns)
		res.flats[ns] = flat
		res.problems = append(res.problems, problems...)
	}
	return res
}

// checkLayout verifies the index artifact and that the directory holds exactly
// one resource file per namespace.
func (l *Loader) checkLayout(locale, dir string) []Problem {
	var problems []Problem

	if l.opts.IndexFile != "" {
		if _, err := os.Stat(filepath.Join(dir, l.opts.IndexFile)); err != nil {
			problems = append(problems, Problem{
				Kind:    ProblemMissingIndex,
				Locale:  locale,
				Path:    l.opts.IndexFile,
				Message: "Missing index file " + l.opts.IndexFile,
			})
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return append(problems, Problem{
			Kind:    ProblemReadError,
			Locale:  locale,
			Message: fmt.Sprintf("Cannot list %s: %v", dir, err),
		})
	}

	expected := make(map[string]struct{}, len(l.opts.Namespaces))
	for _, ns := range l.opts.Namespaces {
		expected[ns+l.opts.extension()] = struct{}{}
	}
	count := 0
	var strays []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != l.opts.extension() {
			continue
		}
		count++
		if _, ok := expected[e.Name()]; !ok {
			strays = append(strays, e.Name())
		}
	}
	if count != len(l.opts.Namespaces) {
		msg := fmt.Sprintf("Expected %d %s files, found %d", len(l.opts.Namespaces), l.opts.extension(), count)
		if len(strays) > 0 {
			sort.Strings(strays)
			msg += " (unexpected: " + strings.Join(strays, ", ") + ")"
		}
		problems = append(problems, Problem{
			Kind:    ProblemFileCount,
			Locale:  locale,
			Message: msg,
		})
	}
	return problems
}

func (l *Loader) loadNamespace(locale, dir, ns string) (*Flat, []Problem) {
	file := ns + l.opts.extension()
	problem := func(kind ProblemKind, path, msg string) Problem {
		return Problem{Kind: kind, Locale: locale, Namespace: ns, Path: path, Message: msg}
	}

	data, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return EmptyFlat(), []Problem{problem(ProblemMissingFile, file, "Missing file "+file)}
		}
		return EmptyFlat(), []Problem{problem(ProblemReadError, file, fmt.Sprintf("Cannot read %s: %v", file, err))}
	}

	root, dups, err := Decode(l.opts.Format, data)
	if err != nil {
		logger.Debug("Namespace parse failed",
			zap.String("locale", locale),
			zap.String("namespace", ns),
			zap.Error(err),
		)
		return EmptyFlat(), []Problem{problem(ProblemParseError, file, fmt.Sprintf("Parse error in %s: %v", file, err))}
	}

	flat := Flatten(root)
	var problems []Problem
	for _, path := range append(dups, flat.Collisions...) {
		problems = append(problems, problem(ProblemDuplicateKey, path, "Duplicate key "+path))
	}
	for _, path := range flat.Paths {
		if s, ok := flat.Values[path].(Scalar); ok {
			problems = append(problems, problem(ProblemInvalidValue, path,
				fmt.Sprintf("Unexpected non-string value %s at %s", s.Raw, path)))
		}
	}
	return flat, problems
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
