package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// FilePermissions is the permission for files created by the shell (rw-r--r--)
	FilePermissions = 0o644
	// SecureFilePermissions is the permission for config files (rw-------)
	SecureFilePermissions = 0o600
)

// Shell defaults
const (
	// DefaultPrompt is printed before each interactive read
	DefaultPrompt = "> "
	// DefaultMaxScriptDepth bounds execute_script recursion
	DefaultMaxScriptDepth = 16
)

// History constants
const (
	// DefaultHistoryLimit is the default number of history records to display
	DefaultHistoryLimit = 20
	// DefaultHistorySearchLimit is the default number of search results to return
	DefaultHistorySearchLimit = 50
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)

// Terminal control
const (
	// ClearScreenSequence clears the screen and moves the cursor home
	ClearScreenSequence = "\x1b[2J\x1b[H"
)
