package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	configapp "github.com/doeshing/u404/internal/application/config"
	"github.com/doeshing/u404/internal/application/shell"
	"github.com/doeshing/u404/internal/domain"
	"github.com/doeshing/u404/internal/infrastructure/config"
	"github.com/doeshing/u404/internal/infrastructure/filesystem"
	"github.com/doeshing/u404/internal/infrastructure/history"
	"github.com/doeshing/u404/internal/pkg/logger"
	"github.com/doeshing/u404/internal/ports"
)

// Options selects how the container is built.
type Options struct {
	ConfigPath string
	Verbose    bool
	NoHistory  bool
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config       domain.Config
	ConfigLoader *config.FileLoader
	Filesystem   ports.Filesystem
	HistoryStore ports.HistoryRepository
	Logger       ports.Logger
	SessionID    string

	recordHistory bool
	closer        io.Closer
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := configapp.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgLoader.Path(), err)
	}

	log := logger.NewStd(opts.Verbose)
	sessionID := uuid.NewString()

	c := &Container{
		Config:        cfg,
		ConfigLoader:  cfgLoader,
		Filesystem:    filesystem.NewLocal(),
		Logger:        log,
		SessionID:     sessionID,
		recordHistory: cfg.IsHistoryEnabled() && !opts.NoHistory,
	}

	switch strings.ToLower(cfg.GetHistoryBackend()) {
	case domain.HistoryBackendJSONL:
		c.HistoryStore = history.NewFileStore(cfg.History.Path)
	default:
		store := history.NewSQLiteStore(cfg.History.Path)
		c.HistoryStore = store
		c.closer = store
	}

	log.Debug("container ready", map[string]interface{}{
		"session": sessionID,
		"config":  cfgLoader.Path(),
		"history": c.HistoryStore.Path(),
	})
	return c, nil
}

// NewShell builds a shell writing to out and errOut.
func (c *Container) NewShell(out, errOut io.Writer) *shell.Shell {
	var recorder ports.HistoryStore
	if c.recordHistory {
		recorder = c.HistoryStore
	}
	return shell.New(c.Filesystem, shell.Options{
		Out:            out,
		Err:            errOut,
		Logger:         c.Logger,
		History:        recorder,
		Prompt:         c.Config.GetPrompt(),
		MaxScriptDepth: c.Config.GetMaxScriptDepth(),
		Highlight:      highlightFor(c.Config.GetColorMode(), out),
		SessionID:      c.SessionID,
	})
}

// Close releases the history database. Later calls are no-ops.
func (c *Container) Close() error {
	if c == nil || c.closer == nil {
		return nil
	}
	closer := c.closer
	c.closer = nil
	return closer.Close()
}

func highlightFor(mode string, out io.Writer) *color.Color {
	highlight := color.New(color.FgYellow)
	switch strings.ToLower(mode) {
	case domain.ColorNever:
		return nil
	case domain.ColorAlways:
		highlight.EnableColor()
		return highlight
	default:
		f, ok := out.(*os.File)
		if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			return nil
		}
		highlight.EnableColor()
		return highlight
	}
}
