package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"iter"
	"os"

	"github.com/spf13/afero"

	"github.com/doeshing/u404/internal/domain"
	"github.com/doeshing/u404/internal/ports"
)

const listBatchSize = 64

// Local implements ports.Filesystem on top of an afero.Fs.
type Local struct {
	fs    afero.Fs
	getwd func() (string, error)
}

// NewLocal returns a filesystem backed by the host OS and process working directory.
func NewLocal() *Local {
	return New(afero.NewOsFs(), os.Getwd)
}

// New wraps an arbitrary afero.Fs. getwd reports the directory relative paths resolve against.
func New(base afero.Fs, getwd func() (string, error)) *Local {
	if getwd == nil {
		getwd = os.Getwd
	}
	return &Local{fs: base, getwd: getwd}
}

// CreateFile creates path, truncating any existing file.
func (l *Local) CreateFile(path string) error {
	f, err := l.fs.Create(path)
	if err != nil {
		return wrap("create", path, err)
	}
	if err := f.Close(); err != nil {
		return wrap("create", path, err)
	}
	return nil
}

// CreateDirAll creates path and any missing parents.
func (l *Local) CreateDirAll(path string) error {
	if err := l.fs.MkdirAll(path, domain.DirectoryPermissions); err != nil {
		return wrap("mkdir", path, err)
	}
	return nil
}

// Delete removes the entry at path. A missing entry is an outcome, not an error.
func (l *Local) Delete(path string) (domain.DeleteOutcome, error) {
	if _, err := l.fs.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DeleteMissing, nil
		}
		return domain.DeleteMissing, wrap("delete", path, err)
	}
	if err := l.fs.Remove(path); err != nil {
		return domain.DeleteMissing, wrap("delete", path, err)
	}
	return domain.DeleteRemoved, nil
}

// List yields the entries of dir in whatever order the filesystem returns them.
func (l *Local) List(dir string) iter.Seq2[fs.FileInfo, error] {
	return func(yield func(fs.FileInfo, error) bool) {
		f, err := l.fs.Open(dir)
		if err != nil {
			yield(nil, wrap("list", dir, err))
			return
		}
		defer f.Close()

		for {
			batch, err := f.Readdir(listBatchSize)
			for _, info := range batch {
				if !yield(info, nil) {
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield(nil, wrap("list", dir, err))
				}
				return
			}
			if len(batch) == 0 {
				return
			}
		}
	}
}

// CurrentDir returns the working directory.
func (l *Local) CurrentDir() (string, error) {
	dir, err := l.getwd()
	if err != nil {
		return "", wrap("getwd", "", err)
	}
	return dir, nil
}

// Exists reports whether any entry is present at path.
func (l *Local) Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := l.fs.Stat(path)
	return err == nil
}

// ReadFile returns the contents of path.
func (l *Local) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, wrap("read", path, err)
	}
	return data, nil
}

func wrap(op, path string, err error) error {
	return &domain.IOError{Op: op, Path: path, Err: err}
}

var _ ports.Filesystem = (*Local)(nil)
