package domain

import "time"

// Sources recorded in HistoryRecord.Source besides a script path.
const (
	SourceInteractive = "interactive"
)

// HistoryRecord captures one dispatched command line.
type HistoryRecord struct {
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
	Source    string    `json:"source"`
	Line      string    `json:"line"`
	Command   string    `json:"command"`
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
}
