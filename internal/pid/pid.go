// Package pid guards against a second daemon instance appending
// interleaved records to the same log.
package pid

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"codeberg.org/mutker/batterylogd/internal/errors"
)

const fileName = "batterylogd.pid"

// path is a variable so tests can point the guard at a scratch
// directory.
var path = filepath.Join(os.TempDir(), fileName)

// Write claims the single-instance guard by recording the current
// process ID. A leftover file from a crashed run is reclaimed when
// its process is gone or its content is not a process ID.
func Write() error {
	errFactory := errors.New()

	if other, err := read(); err == nil && alive(other) {
		return errFactory.WithData(errors.ErrAlreadyRunning, other)
	}

	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o600); err != nil {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	return nil
}

// Remove releases the guard. A missing file is fine: a failed startup
// may never have written one.
func Remove() error {
	errFactory := errors.New()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	return nil
}

func read() (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(strings.TrimSpace(string(data)))
}

// alive reports whether a process with the given ID can be signaled.
// Signal 0 performs the existence and permission checks without
// delivering anything. Non-positive IDs would address process groups
// instead of a process, so they never count as alive.
func alive(pid int) bool {
	if pid <= 0 {
		return false
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	return process.Signal(syscall.Signal(0)) == nil
}
