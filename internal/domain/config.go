package domain

// Config mirrors ~/.u404/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	Shell               ShellSettings   `yaml:"shell"`
	History             HistorySettings `yaml:"history"`
}

// ShellSettings configures the interactive loop and the interpreter.
type ShellSettings struct {
	Prompt         string `yaml:"prompt"`
	Color          string `yaml:"color"`
	MaxScriptDepth int    `yaml:"max_script_depth"`
}

// HistorySettings configures where dispatched lines are recorded.
type HistorySettings struct {
	Enabled bool   `yaml:"enabled"`
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}
