package domain

// Colour modes accepted by shell.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// History backends accepted by history.backend.
const (
	HistoryBackendSQLite = "sqlite"
	HistoryBackendJSONL  = "jsonl"
)

// GetPrompt returns the interactive prompt, falling back to "> ".
func (c *Config) GetPrompt() string {
	if c.Shell.Prompt == "" {
		return DefaultPrompt
	}
	return c.Shell.Prompt
}

// GetColorMode returns the configured colour mode, "auto" when unset.
func (c *Config) GetColorMode() string {
	if c.Shell.Color == "" {
		return ColorAuto
	}
	return c.Shell.Color
}

// GetMaxScriptDepth returns how deep execute_script may nest.
func (c *Config) GetMaxScriptDepth() int {
	if c.Shell.MaxScriptDepth <= 0 {
		return DefaultMaxScriptDepth
	}
	return c.Shell.MaxScriptDepth
}

// IsHistoryEnabled reports whether dispatched lines should be recorded.
func (c *Config) IsHistoryEnabled() bool {
	return c.History.Enabled
}

// GetHistoryBackend returns the configured history backend, sqlite when unset.
func (c *Config) GetHistoryBackend() string {
	if c.History.Backend == "" {
		return HistoryBackendSQLite
	}
	return c.History.Backend
}
