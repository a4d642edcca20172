package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/doeshing/u404/internal/domain"
)

func newTempLocal(t *testing.T) (*Local, string) {
	t.Helper()
	dir := t.TempDir()
	return New(afero.NewBasePathFs(afero.NewOsFs(), dir), func() (string, error) { return dir, nil }), dir
}

func TestCreateFileTruncates(t *testing.T) {
	local, dir := newTempLocal(t)
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := local.CreateFile("a.txt"); err != nil {
		t.Fatalf("CreateFile error: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "a.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Fatalf("expected empty file, got size %d", info.Size())
	}
}

func TestCreateDirAllIsIdempotent(t *testing.T) {
	local, dir := newTempLocal(t)
	for i := 0; i < 2; i++ {
		if err := local.CreateDirAll("x/y/z"); err != nil {
			t.Fatalf("CreateDirAll attempt %d: %v", i, err)
		}
	}
	info, err := os.Stat(filepath.Join(dir, "x", "y", "z"))
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory, got %v %v", info, err)
	}
}

func TestDeleteReportsMissing(t *testing.T) {
	local, _ := newTempLocal(t)
	outcome, err := local.Delete("nope.txt")
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if outcome != domain.DeleteMissing {
		t.Fatalf("outcome = %v, want missing", outcome)
	}
}

func TestDeleteRemovesFile(t *testing.T) {
	local, dir := newTempLocal(t)
	if err := local.CreateFile("gone.txt"); err != nil {
		t.Fatal(err)
	}
	outcome, err := local.Delete("gone.txt")
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if outcome != domain.DeleteRemoved {
		t.Fatalf("outcome = %v, want removed", outcome)
	}
	if _, err := os.Stat(filepath.Join(dir, "gone.txt")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("file still present: %v", err)
	}
}

func TestListYieldsEveryEntry(t *testing.T) {
	local, _ := newTempLocal(t)
	for _, name := range []string{"b.txt", "a.txt"} {
		if err := local.CreateFile(name); err != nil {
			t.Fatal(err)
		}
	}
	if err := local.CreateDirAll("sub"); err != nil {
		t.Fatal(err)
	}

	var names []string
	for info, err := range local.List(".") {
		if err != nil {
			t.Fatalf("List error: %v", err)
		}
		names = append(names, info.Name())
	}
	sort.Strings(names)

	if diff := cmp.Diff([]string{"a.txt", "b.txt", "sub"}, names); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestListMissingDirectoryYieldsIOError(t *testing.T) {
	local, _ := newTempLocal(t)
	var gotErr error
	for _, err := range local.List("missing") {
		gotErr = err
	}
	var ioErr *domain.IOError
	if !errors.As(gotErr, &ioErr) {
		t.Fatalf("expected IOError, got %v", gotErr)
	}
}

func TestReadOnlyFilesystemFailsWithIOError(t *testing.T) {
	local := New(afero.NewReadOnlyFs(afero.NewMemMapFs()), nil)
	err := local.CreateFile("x.txt")
	var ioErr *domain.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}
	if ioErr.Op != "create" || ioErr.Path != "x.txt" {
		t.Fatalf("unexpected IOError %+v", ioErr)
	}
}

func TestExistsAndReadFile(t *testing.T) {
	local, dir := newTempLocal(t)
	if local.Exists("script.u4") {
		t.Fatal("did not expect script to exist yet")
	}
	if local.Exists("") {
		t.Fatal("empty path must not exist")
	}
	if err := os.WriteFile(filepath.Join(dir, "script.u4"), []byte("pwd\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !local.Exists("script.u4") {
		t.Fatal("expected script to exist")
	}
	data, err := local.ReadFile("script.u4")
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(data) != "pwd\n" {
		t.Fatalf("ReadFile = %q", data)
	}
}

func TestCurrentDirWrapsFailure(t *testing.T) {
	boom := errors.New("boom")
	local := New(afero.NewMemMapFs(), func() (string, error) { return "", boom })
	_, err := local.CurrentDir()
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
}
