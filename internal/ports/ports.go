// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the shell core and external
// adapters (infrastructure). The interpreter and dispatcher depend only on the
// abstractions declared here, so the filesystem, history storage and logging
// backends can be swapped without touching command semantics.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., Filesystem, HistoryRepository)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"
	"io/fs"
	"iter"

	"github.com/doeshing/u404/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.u404/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Filesystem is the set of stateless I/O operations the shell commands use.
// Every failure is reported as a *domain.IOError.
type Filesystem interface {
	CreateFile(path string) error
	CreateDirAll(path string) error
	// Delete reports domain.DeleteMissing instead of failing when path does not exist.
	Delete(path string) (domain.DeleteOutcome, error)
	// List yields directory entries lazily. The sequence can only be consumed once.
	List(dir string) iter.Seq2[fs.FileInfo, error]
	CurrentDir() (string, error)
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
}

// HistoryStore appends dispatched command lines.
type HistoryStore interface {
	Save(record domain.HistoryRecord) error
}

// HistoryRepository extends HistoryStore with the read side used by the CLI.
type HistoryRepository interface {
	HistoryStore
	Records(limit int, search string) ([]domain.HistoryRecord, error)
	Clear() error
	ExportJSON(dest string) error
	Path() string
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
