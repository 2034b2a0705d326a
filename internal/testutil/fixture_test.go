package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"wsl-ui.dev/locheck/internal/pkg/logger"
	"wsl-ui.dev/locheck/internal/pkg/worker"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestWriteLocales_Layout(t *testing.T) {
	dir := t.TempDir()
	WriteLocales(t, dir, Locales{
		"en": {"common": `{"a": "A"}`},
		"de": {"common": `{"a": "Ä"}`, "errors": `{}`},
	}, "json", "index.ts")

	data, err := os.ReadFile(filepath.Join(dir, "de", "common.json"))
	require.NoError(t, err)
	require.Equal(t, `{"a": "Ä"}`, string(data))
	require.FileExists(t, filepath.Join(dir, "en", "index.ts"))
	require.FileExists(t, filepath.Join(dir, "de", "errors.json"))
	require.NoFileExists(t, filepath.Join(dir, "en", "errors.json"))
}

func TestWriteLocales_NoIndex(t *testing.T) {
	dir := t.TempDir()
	WriteLocales(t, dir, Locales{"en": {"common": "a: A\n"}}, "yaml", "")

	entries, err := os.ReadDir(filepath.Join(dir, "en"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "common.yaml", entries[0].Name())
}

func TestNewPool_RunsTasks(t *testing.T) {
	pool := NewPool(t, "testutil")
	done := make([]bool, 4)
	tasks := make([]worker.Task, 0, len(done))
	for i := range done {
		i := i
		tasks = append(tasks, func(context.Context) { done[i] = true })
	}
	require.NoError(t, pool.RunAll(context.Background(), tasks))
	require.Equal(t, []bool{true, true, true, true}, done)
}
