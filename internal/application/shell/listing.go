package shell

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/doeshing/u404/internal/domain"
)

const (
	longFlag        = "-l"
	longTimeFormat  = "2006-01-02 15:04:05"
	longHeaderLine  = "----------------------------------------------"
	longNameWidth   = 20
	currentDirToken = "."
)

// list prints the entries of the working directory, one per line. With -l each
// line also carries the human-readable size and modification time.
func (s *Shell) list(args []string, state *domain.ShellState) error {
	long := false
	for _, arg := range args {
		if arg == longFlag {
			long = true
		}
	}

	selected := ""
	if path, ok := state.Selected(); ok {
		selected = filepath.Clean(path)
	}

	if long {
		fmt.Fprintf(s.out, "%-*s %-10s %s\n", longNameWidth, "Name", "Size", "Last Modified")
		fmt.Fprintln(s.out, longHeaderLine)
	}
	for info, err := range s.fs.List(currentDirToken) {
		if err != nil {
			return err
		}
		if long {
			fmt.Fprintln(s.out, s.longEntry(info, selected))
			continue
		}
		fmt.Fprintln(s.out, s.decorate(info.Name(), selected))
	}
	return nil
}

func (s *Shell) decorate(name, selected string) string {
	if s.highlight == nil || name != selected {
		return name
	}
	return s.highlight.Sprint(name)
}

// longEntry pads the plain name before colouring it so escape codes do not
// shift the columns.
func (s *Shell) longEntry(info fs.FileInfo, selected string) string {
	name := info.Name()
	padding := strings.Repeat(" ", max(longNameWidth-utf8.RuneCountInString(name), 0))
	size := humanize.Bytes(uint64(max(info.Size(), 0)))
	return fmt.Sprintf("%s%s %-10s %s", s.decorate(name, selected), padding, size, info.ModTime().Format(longTimeFormat))
}
