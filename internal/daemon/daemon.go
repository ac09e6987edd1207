// Package daemon drives the sampling loop: sample every tracked
// device, append one journal line each, wait out the interval, repeat
// until interrupted.
package daemon

import (
	"time"

	"codeberg.org/mutker/batterylogd/internal/device"
	"codeberg.org/mutker/batterylogd/internal/journal"
	"codeberg.org/mutker/batterylogd/internal/logger"
	"codeberg.org/mutker/batterylogd/internal/timer"
)

type Daemon struct {
	devices  []*device.Device
	writer   *journal.Writer
	timer    *timer.Timer
	interval time.Duration
}

// New builds a daemon over the full device list. The daemon owns the
// sampling schedule but not the devices, writer or timer lifetimes.
func New(devices []*device.Device, writer *journal.Writer, tm *timer.Timer, interval time.Duration) *Daemon {
	return &Daemon{
		devices:  devices,
		writer:   writer,
		timer:    tm,
		interval: interval,
	}
}

// Run samples and logs until the timer is interrupted, then returns
// after the cycle in progress has fully completed: interruption is
// only observed at the wait point, never mid-write. Devices are
// sampled sequentially in list order so log lines within a cycle keep
// a stable order. A failed append is logged and the loop keeps going;
// a full disk should not stop sampling.
func (d *Daemon) Run() {
	for {
		for _, dev := range d.devices {
			dev.SampleAll()
		}

		if err := d.writer.WriteCycle(d.devices); err != nil {
			logger.Error().Err(err).Msg("Failed to append log records")
		}

		if !d.timer.Wait(d.interval) {
			logger.Debug().Msg("Sampling loop interrupted")
			return
		}
	}
}
