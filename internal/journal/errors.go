package journal

import "codeberg.org/mutker/batterylogd/internal/errors"

const (
	// Configuration Errors
	ErrInvalidPath = errors.ErrorCode("journal_invalid_path")

	// Sink Errors
	ErrOpenFailed  = errors.ErrorCode("journal_open_failed")
	ErrWriteFailed = errors.ErrorCode("journal_write_failed")
	ErrCloseFailed = errors.ErrorCode("journal_close_failed")
)
