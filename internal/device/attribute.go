package device

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
)

// Attribute values are single short lines; one page is far more than
// any sysfs attribute produces.
const attributeBufferSize = 256

// attribute is one sysfs file, held open for the life of the daemon
// and re-read in place on every sampling cycle. sysfs regenerates the
// content on each read from offset zero, so reading at the start of
// the file always observes the current hardware state.
type attribute struct {
	name  string
	file  *os.File
	buf   []byte
	value string
}

func openAttribute(dir, name string) (*attribute, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return nil, err
	}

	return &attribute{
		name: name,
		file: f,
		buf:  make([]byte, attributeBufferSize),
	}, nil
}

// sample re-reads the attribute and stores its first line, trimmed of
// whitespace. A failed read clears the value instead of reporting an
// error: attributes can transiently disappear (e.g. across a suspend)
// and a stale reading must never be logged as current.
func (a *attribute) sample() {
	n, err := a.file.ReadAt(a.buf, 0)
	if n == 0 && err != nil {
		a.value = ""
		return
	}

	line := a.buf[:n]
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	a.value = strings.TrimSpace(string(line))
}

func (a *attribute) close() error {
	return a.file.Close()
}
