package commands

import "github.com/doeshing/u404/internal/domain"

// History listing defaults
const (
	DefaultHistoryLimit       = domain.DefaultHistoryLimit
	DefaultHistorySearchLimit = domain.DefaultHistorySearchLimit
	TimestampFormat           = domain.TimestampFormat
)

// Error messages
const (
	ErrHistoryStoreUnavailable = "history store unavailable"
	ErrQueryRequired           = "--query required"
)

// Success messages
const (
	MsgNoHistoryRecorded = "No history recorded yet."
	MsgHistoryCleared    = "History cleared."
)
