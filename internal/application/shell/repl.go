package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/doeshing/u404/internal/domain"
)

// Interactive prompts for and dispatches lines read from in until exit or end
// of input. End of input is a normal termination.
func (s *Shell) Interactive(ctx context.Context, in io.Reader, state *domain.ShellState) error {
	reader := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, s.prompt)

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return &domain.IOError{Op: "read", Path: "stdin", Err: err}
		}
		eof := err != nil
		if eof && line == "" {
			return nil
		}

		cont, err := s.Dispatch(ctx, strings.TrimSpace(line), state)
		if err != nil {
			return err
		}
		if !cont || eof {
			return nil
		}
	}
}
