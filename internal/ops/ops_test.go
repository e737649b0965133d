package ops

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/grabapp/grabd/internal/history"
	"github.com/grabapp/grabd/internal/settings"
)

// fakeCopier records invocations instead of touching the system clipboard.
type fakeCopier struct {
	paths []string
	err   error
}

func (f *fakeCopier) CopyImage(path string) error {
	f.paths = append(f.paths, path)
	return f.err
}

// testEnv creates an Env over a temporary base directory with a journal
// database and a fake clipboard copier.
func testEnv(t *testing.T) (*Env, *fakeCopier) {
	t.Helper()

	baseDir := t.TempDir()
	db, err := history.Init(baseDir)
	if err != nil {
		t.Fatalf("history.Init failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	copier := &fakeCopier{}
	env := &Env{
		BaseDir: baseDir,
		DB:      db,
		Copier:  copier,
		Log:     slog.New(slog.DiscardHandler),
	}
	return env, copier
}

// writeCapture places a file in the resolved captures directory.
func writeCapture(t *testing.T, env *Env, name, content string) string {
	t.Helper()

	dir, err := settings.ResolveCapturesDir(env.BaseDir)
	if err != nil {
		t.Fatalf("ResolveCapturesDir failed: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
