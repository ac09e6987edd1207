// Package journal renders sampled device state into the append-only
// plain text log, one line per device per cycle.
package journal

import (
	"io"
	"os"
	"strings"
	"time"

	"codeberg.org/mutker/batterylogd/internal/device"
	"codeberg.org/mutker/batterylogd/internal/errors"
)

// timestampLayout is ISO 8601 in UTC with a literal trailing Z.
const timestampLayout = "2006-01-02T15:04:05Z"

// timeNow is replaced in tests for deterministic timestamps.
var timeNow = time.Now

// Writer appends one log line per device per sampling cycle. Lines
// have the form
//
//	kind,name,2006-01-02T15:04:05Z,v1,...,vN
//
// with values in the device kind's fixed attribute order. Unreadable
// attributes render as empty fields.
type Writer struct {
	sink io.Writer
	file *os.File
}

// Open creates or opens the log file in append mode. Existing content
// is never truncated; a restarted daemon continues the same log.
func Open(cfg Config) (*Writer, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(cfg.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, defaultFilePerm)
	if err != nil {
		return nil, errFactory.Wrap(ErrOpenFailed, err)
	}

	return &Writer{sink: f, file: f}, nil
}

// NewWriter wraps an already-open sink. The caller keeps ownership of
// the sink's lifetime.
func NewWriter(sink io.Writer) *Writer {
	return &Writer{sink: sink}
}

// WriteCycle appends one line per device, in list order. The
// timestamp is captured per device at write time, so a device written
// later in the cycle may carry a slightly later timestamp than the
// first one.
func (w *Writer) WriteCycle(devices []*device.Device) error {
	errFactory := errors.New()

	var b strings.Builder
	for _, d := range devices {
		b.WriteString(string(d.Kind()))
		b.WriteByte(',')
		b.WriteString(d.Name())
		b.WriteByte(',')
		b.WriteString(timeNow().UTC().Format(timestampLayout))
		for _, v := range d.Values() {
			b.WriteByte(',')
			b.WriteString(v)
		}
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(w.sink, b.String()); err != nil {
		return errFactory.Wrap(ErrWriteFailed, err)
	}

	return nil
}

// Close closes the underlying log file when the Writer owns one.
func (w *Writer) Close() error {
	if w.file == nil {
		return nil
	}

	errFactory := errors.New()
	if err := w.file.Close(); err != nil {
		return errFactory.Wrap(ErrCloseFailed, err)
	}

	return nil
}
