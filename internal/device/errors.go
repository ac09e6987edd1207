package device

import "codeberg.org/mutker/batterylogd/internal/errors"

const (
	// Initialization Errors
	ErrInitFailed = errors.ErrorCode("device_init_failed")

	// Discovery Errors
	ErrScanFailed   = errors.ErrorCode("device_scan_failed")
	ErrNoneDetected = errors.ErrorCode("device_none_detected")
)
