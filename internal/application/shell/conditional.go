package shell

// conditional tracks whether lines are currently executed inside nested
// if/else/endif blocks. saved holds, per open if, the flag that was active
// before entering it.
type conditional struct {
	saved []bool
	on    bool
}

func newConditional() *conditional {
	return &conditional{on: true}
}

// enter opens an if block whose predicate evaluated to result.
func (c *conditional) enter(result bool) {
	c.saved = append(c.saved, c.on)
	c.on = c.on && result
}

// flip switches to the else branch. No-op outside any block.
func (c *conditional) flip() {
	if len(c.saved) == 0 {
		return
	}
	c.on = c.saved[len(c.saved)-1] && !c.on
}

// leave closes the innermost block. No-op outside any block.
func (c *conditional) leave() {
	if len(c.saved) == 0 {
		return
	}
	c.on = c.saved[len(c.saved)-1]
	c.saved = c.saved[:len(c.saved)-1]
}

func (c *conditional) enabled() bool {
	return c.on
}

func (c *conditional) depth() int {
	return len(c.saved)
}
