package device

import (
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/mutker/batterylogd/internal/errors"
	"codeberg.org/mutker/batterylogd/internal/logger"
)

// Detector finds device directories of one kind, either from explicit
// paths or by scanning a sysfs class namespace for entries whose
// marker attribute carries the expected value.
type Detector struct {
	Kind      Kind
	Namespace string
	Marker    string
	Want      string
}

// Batteries returns the detector for battery devices. AC adapters and
// USB supplies share the power supply namespace, so an entry counts as
// a battery only when its "type" attribute reads "Battery".
func Batteries() Detector {
	return Detector{
		Kind:      KindBattery,
		Namespace: "/sys/class/power_supply",
		Marker:    "type",
		Want:      "Battery",
	}
}

// Backlights returns the detector for display backlight devices. The
// backlight namespace holds nothing but backlights; no marker needed.
func Backlights() Detector {
	return Detector{
		Kind:      KindBacklight,
		Namespace: "/sys/class/backlight",
	}
}

// Detect builds initialized devices of the detector's kind.
//
// Explicit paths are trusted: each is initialized directly with no
// marker check, failures drop that one device, and ending up with
// zero devices is not an error. With no explicit paths the namespace
// is scanned instead, and zero matches is fatal: a daemon that
// detects nothing would silently log nothing forever, which masks a
// misconfiguration.
func (dt Detector) Detect(explicit []string) ([]*Device, error) {
	if len(explicit) > 0 {
		return dt.fromPaths(explicit), nil
	}

	return dt.scan()
}

func (dt Detector) fromPaths(paths []string) []*Device {
	devices := make([]*Device, 0, len(paths))
	for _, path := range paths {
		if d := dt.add(path); d != nil {
			devices = append(devices, d)
		}
	}

	return devices
}

func (dt Detector) scan() ([]*Device, error) {
	errFactory := errors.New()

	entries, err := os.ReadDir(dt.Namespace)
	if err != nil {
		return nil, errFactory.Wrap(ErrScanFailed, err)
	}

	var devices []*Device
	for _, entry := range entries {
		path := filepath.Join(dt.Namespace, entry.Name())
		if !dt.matches(path) {
			continue
		}
		if d := dt.add(path); d != nil {
			devices = append(devices, d)
		}
	}

	if len(devices) == 0 {
		return nil, errFactory.WithData(ErrNoneDetected, dt.Namespace)
	}

	return devices, nil
}

func (dt Detector) add(path string) *Device {
	d := New(dt.Kind, path)
	if err := d.Initialize(); err != nil {
		logger.Warn().Err(err).Msgf("Skipping %s %s", dt.Kind, d.Name())
		return nil
	}
	logger.Info().Msgf("Added %s %s", dt.Kind, d.Name())

	return d
}

func (dt Detector) matches(path string) bool {
	if dt.Marker == "" {
		return true
	}

	data, err := os.ReadFile(filepath.Join(path, dt.Marker))
	if err != nil {
		return false
	}

	return strings.TrimSpace(string(data)) == dt.Want
}
