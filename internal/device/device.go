// Package device models the batteries and display backlights tracked
// by the daemon as collections of held-open sysfs attribute files, and
// discovers them either from explicit paths or by scanning a sysfs
// class namespace.
package device

import (
	"path/filepath"

	"codeberg.org/mutker/batterylogd/internal/errors"
)

// Device is one physical device instance: a named, typed group of
// attribute sample points rooted at a sysfs directory.
type Device struct {
	kind  Kind
	path  string
	name  string
	attrs []*attribute
}

func New(kind Kind, path string) *Device {
	return &Device{
		kind: kind,
		path: path,
		name: filepath.Base(path),
	}
}

// Initialize opens every attribute file of the device's kind. A device
// missing any required attribute is unusable: files opened so far are
// closed again and no partial collection is retained.
func (d *Device) Initialize() error {
	errFactory := errors.New()

	names := d.kind.attributeNames()
	attrs := make([]*attribute, 0, len(names))
	for _, name := range names {
		a, err := openAttribute(d.path, name)
		if err != nil {
			for _, opened := range attrs {
				opened.close()
			}

			return errFactory.Wrap(ErrInitFailed, err)
		}
		attrs = append(attrs, a)
	}
	d.attrs = attrs

	return nil
}

// SampleAll re-reads every attribute in fixed order. Individual read
// failures are tolerated and surface as empty values.
func (d *Device) SampleAll() {
	for _, a := range d.attrs {
		a.sample()
	}
}

// Values returns the current attribute values in fixed order. The
// length always equals the kind's attribute count; unreadable
// attributes contribute empty strings.
func (d *Device) Values() []string {
	values := make([]string, len(d.attrs))
	for i, a := range d.attrs {
		values[i] = a.value
	}

	return values
}

func (d *Device) Kind() Kind {
	return d.kind
}

func (d *Device) Name() string {
	return d.name
}

func (d *Device) Path() string {
	return d.path
}

// Close releases the held-open attribute files. Close errors on
// read-only sysfs files carry no information and are ignored.
func (d *Device) Close() {
	for _, a := range d.attrs {
		a.close()
	}
	d.attrs = nil
}
