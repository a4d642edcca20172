// Package shell implements the u404 command dispatcher, the script interpreter
// with its if/else/endif stack, and the interactive read-dispatch loop.
//
// The session state is never held by the Shell itself; every entry point takes
// the *domain.ShellState explicitly so nested scripts share the caller's selection.
package shell

import (
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/doeshing/u404/internal/application/condition"
	"github.com/doeshing/u404/internal/domain"
	"github.com/doeshing/u404/internal/pkg/logger"
	"github.com/doeshing/u404/internal/ports"
)

// Options tunes a Shell. Zero values fall back to stdio and the domain defaults.
type Options struct {
	Out            io.Writer
	Err            io.Writer
	Logger         ports.Logger
	History        ports.HistoryStore
	Prompt         string
	MaxScriptDepth int
	// Highlight colours the selected entry in ls output. Nil disables it.
	Highlight *color.Color
	SessionID string
}

// Shell dispatches command lines against a filesystem.
type Shell struct {
	fs        ports.Filesystem
	evaluator *condition.Evaluator
	out       io.Writer
	errOut    io.Writer
	log       ports.Logger
	history   ports.HistoryStore
	prompt    string
	maxDepth  int
	highlight *color.Color
	sessionID string
	now       func() time.Time

	// scripts is the stack of script paths currently being interpreted.
	scripts []string
}

// New builds a Shell over fsys.
func New(fsys ports.Filesystem, opts Options) *Shell {
	s := &Shell{
		fs:        fsys,
		evaluator: condition.NewEvaluator(fsys),
		out:       opts.Out,
		errOut:    opts.Err,
		log:       opts.Logger,
		history:   opts.History,
		prompt:    opts.Prompt,
		maxDepth:  opts.MaxScriptDepth,
		highlight: opts.Highlight,
		sessionID: opts.SessionID,
		now:       time.Now,
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.errOut == nil {
		s.errOut = os.Stderr
	}
	if s.log == nil {
		s.log = logger.NewStd(false)
	}
	if s.prompt == "" {
		s.prompt = domain.DefaultPrompt
	}
	if s.maxDepth <= 0 {
		s.maxDepth = domain.DefaultMaxScriptDepth
	}
	return s
}

func (s *Shell) source() string {
	if len(s.scripts) == 0 {
		return domain.SourceInteractive
	}
	return s.scripts[len(s.scripts)-1]
}

func (s *Shell) record(line, command string, err error) {
	if s.history == nil {
		return
	}
	rec := domain.HistoryRecord{
		Timestamp: s.now(),
		SessionID: s.sessionID,
		Source:    s.source(),
		Line:      line,
		Command:   command,
		Success:   err == nil,
	}
	if err != nil {
		rec.Error = err.Error()
	}
	if saveErr := s.history.Save(rec); saveErr != nil {
		s.log.Warn("history save failed", map[string]interface{}{
			"session": s.sessionID,
			"error":   saveErr.Error(),
		})
	}
}
