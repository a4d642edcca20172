package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/doeshing/u404/internal/domain"
)

// Dispatch runs one command line. It returns false when the session should end.
// Only *domain.IOError values are returned; bad input is reported on the output.
func (s *Shell) Dispatch(ctx context.Context, line string, state *domain.ShellState) (bool, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return true, nil
	}
	s.log.Debug("dispatch", map[string]interface{}{
		"session": s.sessionID,
		"source":  s.source(),
		"command": tokens[0],
	})

	cont, err := s.run(ctx, tokens, state)
	s.record(line, tokens[0], err)
	if err != nil {
		s.log.Error("command failed", err, map[string]interface{}{
			"session": s.sessionID,
			"command": tokens[0],
		})
		return false, err
	}
	return cont, nil
}

func (s *Shell) run(ctx context.Context, tokens []string, state *domain.ShellState) (bool, error) {
	name, args := tokens[0], tokens[1:]

	switch lookupCommand(name) {
	case cmdSelectFile:
		if len(args) == 0 {
			fmt.Fprintln(s.out, usageSelectFile)
			return true, nil
		}
		state.Select(args[0])
		fmt.Fprintf(s.out, "Selected %s\n", args[0])
	case cmdDelete:
		return true, s.deleteSelected(state)
	case cmdMakeFile:
		if len(args) == 0 {
			fmt.Fprintln(s.out, usageMakeFile)
			return true, nil
		}
		if err := s.fs.CreateFile(args[0]); err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "Created %s\n", args[0])
	case cmdMakeFolder:
		if len(args) == 0 {
			fmt.Fprintln(s.out, usageMakeFolder)
			return true, nil
		}
		if err := s.fs.CreateDirAll(args[0]); err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "Created directory %s\n", args[0])
	case cmdList:
		return true, s.list(args, state)
	case cmdPwd:
		dir, err := s.fs.CurrentDir()
		if err != nil {
			fmt.Fprintf(s.errOut, "pwd: %v\n", err)
			return true, nil
		}
		fmt.Fprintln(s.out, dir)
	case cmdClear:
		fmt.Fprint(s.out, domain.ClearScreenSequence)
	case cmdUprint:
		fmt.Fprintln(s.out, strings.Join(args, " "))
	case cmdExecuteScript:
		if len(args) == 0 {
			fmt.Fprintln(s.out, usageExecuteScript)
			return true, nil
		}
		return s.executeScript(ctx, args[0], state)
	case cmdHelp:
		fmt.Fprint(s.out, helpText)
	case cmdExit:
		return false, nil
	default:
		fmt.Fprintf(s.out, "Unknown command: %s\n", name)
	}
	return true, nil
}

func (s *Shell) deleteSelected(state *domain.ShellState) error {
	path, ok := state.Selected()
	if !ok {
		fmt.Fprintln(s.out, msgNoFileSelected)
		return nil
	}
	outcome, err := s.fs.Delete(path)
	if err != nil {
		return err
	}
	switch outcome {
	case domain.DeleteMissing:
		fmt.Fprintf(s.out, "%s does not exist\n", path)
	default:
		fmt.Fprintf(s.out, "Deleted %s\n", path)
	}
	return nil
}

func (s *Shell) executeScript(ctx context.Context, path string, state *domain.ShellState) (bool, error) {
	if len(s.scripts) >= s.maxDepth {
		fmt.Fprintf(s.out, "execute_script: nesting too deep (%d)\n", s.maxDepth)
		return true, nil
	}
	// exit inside the script ends only that script.
	_, err := s.RunScript(ctx, path, state)
	return true, err
}
