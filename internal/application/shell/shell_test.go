package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/doeshing/u404/internal/domain"
	"github.com/doeshing/u404/internal/infrastructure/filesystem"
)

type harness struct {
	shell *Shell
	out   *bytes.Buffer
	err   *bytes.Buffer
	dir   string
	state *domain.ShellState
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	dir := t.TempDir()
	fsys := filesystem.New(afero.NewBasePathFs(afero.NewOsFs(), dir), func() (string, error) { return dir, nil })
	return newHarnessWith(t, fsys, dir, opts)
}

func newHarnessWith(t *testing.T, fsys *filesystem.Local, dir string, opts Options) *harness {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	opts.Out = out
	opts.Err = errOut
	return &harness{
		shell: New(fsys, opts),
		out:   out,
		err:   errOut,
		dir:   dir,
		state: domain.NewShellState(),
	}
}

func (h *harness) writeFile(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(h.dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func (h *harness) exists(name string) bool {
	_, err := os.Stat(filepath.Join(h.dir, name))
	return err == nil
}

type recordingStore struct {
	records []domain.HistoryRecord
	err     error
}

func (r *recordingStore) Save(rec domain.HistoryRecord) error {
	r.records = append(r.records, rec)
	return r.err
}
