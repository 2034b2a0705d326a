// Package testutil provides isolated on-disk fixtures for package tests.
// Every fixture lives under t.TempDir() and is removed with the test.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"wsl-ui.dev/locheck/internal/pkg/worker"
)

// Locales maps locale → namespace → file content.
type Locales map[string]map[string]string

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// WriteLocales lays out tree under dir as <dir>/<locale>/<namespace>.<format>.
// When index is non-empty every locale directory also gets that index file.
func WriteLocales(t testing.TB, dir string, tree Locales, format, index string) {
	t.Helper()
	for locale, namespaces := range tree {
		if index != "" {
			WriteFile(t, filepath.Join(dir, locale, index), "export {}\n")
		}
		for ns, content := range namespaces {
			WriteFile(t, filepath.Join(dir, locale, ns+"."+format), content)
		}
	}
}

// NewPool returns a two-worker pool released when the test ends.
func NewPool(t testing.TB, name string) *worker.Pool {
	t.Helper()
	pool, err := worker.NewPool(name, 2)
	require.NoError(t, err)
	t.Cleanup(pool.Release)
	return pool
}
