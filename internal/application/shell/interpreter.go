package shell

import (
	"context"
	"strings"

	"github.com/doeshing/u404/internal/domain"
)

const (
	keywordIf    = "if "
	keywordElse  = "else"
	keywordEndif = "endif"
)

// RunScript loads the script at path and interprets it against state.
// It returns false when the script executed exit.
func (s *Shell) RunScript(ctx context.Context, path string, state *domain.ShellState) (bool, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return false, err
	}

	s.scripts = append(s.scripts, path)
	defer func() { s.scripts = s.scripts[:len(s.scripts)-1] }()

	s.log.Debug("running script", map[string]interface{}{
		"session": s.sessionID,
		"path":    path,
		"depth":   len(s.scripts),
	})
	return s.Interpret(ctx, string(data), state)
}

// Interpret executes script line by line. Lines inside a disabled if/else
// branch are skipped without being parsed. Processing stops at exit, at the
// first I/O failure, or when ctx is cancelled.
func (s *Shell) Interpret(ctx context.Context, script string, state *domain.ShellState) (bool, error) {
	cond := newConditional()

	for raw := range strings.Lines(script) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		line := strings.TrimSpace(raw)

		switch {
		case line == "":
		case strings.HasPrefix(line, keywordIf):
			cond.enter(s.evaluator.Evaluate(strings.Fields(line[len(keywordIf):]), state))
		case line == keywordElse:
			cond.flip()
		case line == keywordEndif:
			cond.leave()
		case !cond.enabled():
		default:
			cont, err := s.Dispatch(ctx, line, state)
			if err != nil || !cont {
				return cont, err
			}
		}
	}

	if depth := cond.depth(); depth > 0 {
		s.log.Warn("script ended inside if block", map[string]interface{}{
			"session": s.sessionID,
			"source":  s.source(),
			"open":    depth,
		})
	}
	return true, nil
}
