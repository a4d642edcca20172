package domain

// ShellState is the per-run session data shared by the interactive loop, the
// dispatcher and every nested script.
type ShellState struct {
	selected    string
	hasSelected bool
}

// NewShellState returns a state with nothing selected.
func NewShellState() *ShellState {
	return &ShellState{}
}

// Select stores path as the current selection. The path is not checked.
func (s *ShellState) Select(path string) {
	s.selected = path
	s.hasSelected = true
}

// Selected returns the selected path and whether one has been set.
func (s *ShellState) Selected() (string, bool) {
	return s.selected, s.hasSelected
}
