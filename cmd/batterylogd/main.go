package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/mutker/batterylogd/internal/config"
	"codeberg.org/mutker/batterylogd/internal/daemon"
	"codeberg.org/mutker/batterylogd/internal/device"
	"codeberg.org/mutker/batterylogd/internal/errors"
	"codeberg.org/mutker/batterylogd/internal/journal"
	"codeberg.org/mutker/batterylogd/internal/logger"
	"codeberg.org/mutker/batterylogd/internal/pid"
	"codeberg.org/mutker/batterylogd/internal/timer"
)

const version = "0.1.0"

var cfg *config.Config

func init() {
	var err error
	cfg, err = config.Load(os.Args[1:])
	if err != nil {
		if config.IsHelp(err) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Debug, cfg.Verbose, logger.IsService())
	logger.Debug().Msg("Config loaded")
}

func main() {
	if cfg.ShowVersion {
		fmt.Println("batterylogd: version " + version)
		return
	}

	if err := pid.Write(); err != nil {
		fatal("failed to claim pid file", err)
	}

	devices, err := detectDevices()
	if err != nil {
		fatal("failed to detect devices", err)
	}
	if len(devices) == 0 {
		logger.Warn().Msg("No devices to sample")
	}

	writer, err := journal.Open(journal.Config{Path: cfg.Log})
	if err != nil {
		fatal("failed to open log file", err)
	}
	logger.Info().Msgf("Log file: %s", cfg.Log)
	logger.Debug().Msgf("Sampling every %ds", cfg.Interval)

	tm := timer.New()
	go handleSignals(tm)

	daemon.New(devices, writer, tm, time.Duration(cfg.Interval)*time.Second).Run()
	cleanup(devices, writer)
}

// detectDevices builds the full tracked device list. Batteries are
// auto-detected unless explicit paths were given; backlights are only
// tracked when asked for, since an idle machine usually has exactly
// one and not everyone wants it logged.
func detectDevices() ([]*device.Device, error) {
	devices, err := device.Batteries().Detect(cfg.Battery)
	if err != nil {
		return nil, err
	}

	if len(cfg.Backlight) > 0 {
		backlights, err := device.Backlights().Detect(cfg.Backlight)
		if err != nil {
			return nil, err
		}
		devices = append(devices, backlights...)
	}

	return devices, nil
}

// handleSignals is the watcher half of the shutdown path: the runtime
// turns the raw signal into a channel send, and this goroutine makes
// the actual interrupt call from ordinary execution context.
func handleSignals(tm *timer.Timer) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	tm.Interrupt()
}

func cleanup(devices []*device.Device, writer *journal.Writer) {
	for _, d := range devices {
		d.Close()
	}
	if err := writer.Close(); err != nil {
		logger.Error().Err(err).Msg("failed to close log file")
	}
	if err := pid.Remove(); err != nil {
		logger.Error().Err(err).Msg("failed to remove pid file")
	}
	logger.Info().Msg("Exiting...")
}

func fatal(msg string, err error) {
	var appErr errors.Error
	if errors.As(err, &appErr) {
		logger.FatalWithCode(appErr).Msg(msg)
		return
	}
	logger.Fatal().Err(err).Msg(msg)
}
