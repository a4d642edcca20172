package config

import (
	"fmt"
	"strings"

	"github.com/doeshing/u404/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validateShell(cfg.Shell); err != nil {
		return err
	}
	return validateHistory(cfg.History)
}

func validateShell(shell domain.ShellSettings) error {
	switch strings.ToLower(shell.Color) {
	case "", domain.ColorAuto, domain.ColorAlways, domain.ColorNever:
	default:
		return fmt.Errorf("shell.color must be auto|always|never, got %s", shell.Color)
	}
	if shell.MaxScriptDepth < 0 {
		return fmt.Errorf("shell.max_script_depth must be >= 0")
	}
	return nil
}

func validateHistory(history domain.HistorySettings) error {
	switch strings.ToLower(history.Backend) {
	case "", domain.HistoryBackendSQLite, domain.HistoryBackendJSONL:
	default:
		return fmt.Errorf("history.backend must be sqlite|jsonl, got %s", history.Backend)
	}
	if history.Enabled && history.Path == "" {
		return fmt.Errorf("history.path must be set when history is enabled")
	}
	return nil
}
