// Package scan finds user-visible literals in the UI source tree that bypass
// the translation layer. It never reads the resource set.
//
// Import Path: wsl-ui.dev/locheck/internal/scan
package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"wsl-ui.dev/locheck/internal/check"
	apperrors "wsl-ui.dev/locheck/internal/pkg/errors"
	"wsl-ui.dev/locheck/internal/pkg/logger"
	"wsl-ui.dev/locheck/internal/pkg/worker"
	"wsl-ui.dev/locheck/internal/rules"
)

// Finding kinds.
const (
	KindHardcodedText      = "hardcoded-text"
	KindHardcodedAttribute = "hardcoded-attribute"
	KindForeignScript      = "foreign-script"
	KindReadError          = "read-error"
	KindRootUnreadable     = "root-unreadable"
)

// Title is the report title of the coverage check.
const Title = "Source Coverage"

// Options selects the files to scan.
type Options struct {
	Root    string
	Include []string
	Exclude []string
	// SkipDirs are never descended into, typically the locales directory.
	SkipDirs []string
	// ForeignScript enables the CJK literal pass.
	ForeignScript bool
}

// Finding is one hardcoded literal. Line is 1-based.
type Finding struct {
	File string
	Line int
	Kind string
	Text string
}

// Scanner walks a source tree and reports candidate literals.
type Scanner struct {
	opts  Options
	rules *rules.Set
	pool  *worker.Pool
}

// New validates the glob patterns and returns a Scanner. Files are scanned
// concurrently on pool.
func New(opts Options, rs *rules.Set, pool *worker.Pool) (*Scanner, error) {
	for _, p := range append(append([]string{}, opts.Include...), opts.Exclude...) {
		if !doublestar.ValidatePattern(p) {
			return nil, apperrors.New(apperrors.CodeGlobInvalid, "invalid glob pattern "+strconv.Quote(p)).
				WithParams(map[string]interface{}{"pattern": p})
		}
	}
	skips := make([]string, 0, len(opts.SkipDirs))
	for _, dir := range opts.SkipDirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeSourceScanFailed, "resolve skipped directory")
		}
		skips = append(skips, abs)
	}
	opts.SkipDirs = skips
	return &Scanner{opts: opts, rules: rs, pool: pool}, nil
}

// Scan returns findings ordered by file path, then line. An unreadable root
// is an error; an unreadable file is a read-error finding.
func (s *Scanner) Scan(ctx context.Context) ([]Finding, error) {
	start := time.Now()
	files, err := s.collect()
	if err != nil {
		return nil, err
	}

	perFile := make([][]Finding, len(files))
	tasks := make([]worker.Task, len(files))
	for i, rel := range files {
		i, rel := i, rel
		tasks[i] = func(context.Context) {
			perFile[i] = s.scanFile(rel)
		}
	}
	if err := s.pool.RunAll(ctx, tasks); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeSourceScanFailed, "scan source files")
	}

	var findings []Finding
	for _, f := range perFile {
		findings = append(findings, f...)
	}
	logger.Debug("Source scan completed",
		zap.String("root", s.opts.Root),
		zap.Int("files", len(files)),
		zap.Int("findings", len(findings)),
		zap.Duration("duration", time.Since(start)),
	)
	return findings, nil
}

// Check runs Scan and converts the findings into the coverage check result.
// A missing or unreadable root fails the check with a single issue so the
// rest of the report still prints.
func (s *Scanner) Check(ctx context.Context) (check.Result, error) {
	if err := s.statRoot(); err != nil {
		logger.Warn("Source root unreadable", zap.String("root", s.opts.Root), zap.Error(err))
		return check.NewResult(check.IDCoverage, Title, []check.Issue{{
			Check:   check.IDCoverage,
			Kind:    KindRootUnreadable,
			Key:     s.opts.Root,
			Message: fmt.Sprintf("source root %s is missing or not a directory", s.opts.Root),
			Value:   s.opts.Root,
		}}), nil
	}
	findings, err := s.Scan(ctx)
	if err != nil {
		return check.Result{}, err
	}
	return check.NewResult(check.IDCoverage, Title, Issues(findings)), nil
}

// Issues converts findings into coverage issues keyed by "file:line".
func Issues(findings []Finding) []check.Issue {
	issues := make([]check.Issue, 0, len(findings))
	for _, f := range findings {
		loc := f.File + ":" + strconv.Itoa(f.Line)
		var msg string
		switch f.Kind {
		case KindHardcodedAttribute:
			msg = fmt.Sprintf("%s hardcoded attribute %q", loc, f.Text)
		case KindForeignScript:
			msg = fmt.Sprintf("%s non-English literal: %s", loc, f.Text)
		case KindReadError:
			msg = fmt.Sprintf("%s unreadable: %s", f.File, f.Text)
		default:
			msg = fmt.Sprintf("%s hardcoded text %q", loc, f.Text)
		}
		issues = append(issues, check.Issue{
			Check:   check.IDCoverage,
			Kind:    f.Kind,
			Key:     loc,
			Message: msg,
			Value:   f.Text,
		})
	}
	return issues
}

// statRoot checks that Root exists and is a directory.
func (s *Scanner) statRoot() error {
	info, err := os.Stat(s.opts.Root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %v", apperrors.ErrNotFound, err)
		}
		return apperrors.Wrap(err, apperrors.CodeSourceScanFailed, "source root unreadable").
			WithParams(map[string]interface{}{"dir": s.opts.Root})
	}
	if !info.IsDir() {
		return apperrors.Wrap(apperrors.ErrInvalid, apperrors.CodeSourceScanFailed, "source root is not a directory").
			WithParams(map[string]interface{}{"dir": s.opts.Root})
	}
	return nil
}

// collect returns slash-separated paths relative to Root in walk order.
func (s *Scanner) collect() ([]string, error) {
	if err := s.statRoot(); err != nil {
		return nil, err
	}

	var files []string
	err := filepath.WalkDir(s.opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == s.opts.Root {
				return err
			}
			logger.Warn("Skipping unreadable path", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}
			for _, skip := range s.opts.SkipDirs {
				if sameOrSubpath(abs, skip) {
					return filepath.SkipDir
				}
			}
			return nil
		}
		rel, err := filepath.Rel(s.opts.Root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if matchAny(s.opts.Include, rel) && !matchAny(s.opts.Exclude, rel) {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeSourceScanFailed, "walk source tree")
	}
	return files, nil
}

func (s *Scanner) scanFile(rel string) []Finding {
	data, err := os.ReadFile(filepath.Join(s.opts.Root, filepath.FromSlash(rel)))
	if err != nil {
		return []Finding{{File: rel, Line: 0, Kind: KindReadError, Text: err.Error()}}
	}
	return s.scanContent(rel, string(data))
}

func matchAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

func sameOrSubpath(path, root string) bool {
	if root == "" {
		return false
	}
	cleanPath := filepath.Clean(path)
	cleanRoot := filepath.Clean(root)
	return cleanPath == cleanRoot || strings.HasPrefix(cleanPath, cleanRoot+string(os.PathSeparator))
}
