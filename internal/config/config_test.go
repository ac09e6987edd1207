package config

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/mutker/batterylogd/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "batterylogd.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv(configEnv, path)

	return path
}

func TestLoadDefaults(t *testing.T) {
	writeConfigFile(t, "")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultInterval, cfg.Interval)
	assert.Empty(t, cfg.Battery)
	assert.Empty(t, cfg.Backlight)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.ShowVersion)
	assert.Equal(t, defaultLogName, filepath.Base(cfg.Log))
}

func TestLoadFlags(t *testing.T) {
	writeConfigFile(t, "")

	cfg, err := Load([]string{
		"-i", "30",
		"-b", "/sys/class/power_supply/BAT0",
		"-b", "/sys/class/power_supply/BAT1",
		"-L", "/sys/class/backlight/intel_backlight",
		"-l", "/tmp/batterylogd-test.log",
		"--debug",
	})
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Interval)
	assert.Equal(t, []string{"/sys/class/power_supply/BAT0", "/sys/class/power_supply/BAT1"}, cfg.Battery)
	assert.Equal(t, []string{"/sys/class/backlight/intel_backlight"}, cfg.Backlight)
	assert.Equal(t, "/tmp/batterylogd-test.log", cfg.Log)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigFile(t *testing.T) {
	writeConfigFile(t, `
interval = 120
log = "/var/log/batterylogd.log"
verbose = true
battery = ["/sys/class/power_supply/BAT9"]
`)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.Interval)
	assert.Equal(t, "/var/log/batterylogd.log", cfg.Log)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, []string{"/sys/class/power_supply/BAT9"}, cfg.Battery)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	writeConfigFile(t, `
interval = 120
log = "/var/log/batterylogd.log"
`)

	cfg, err := Load([]string{"-i", "15"})
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Interval)
	assert.Equal(t, "/var/log/batterylogd.log", cfg.Log)
}

func TestInvalidInterval(t *testing.T) {
	writeConfigFile(t, "")

	testCases := []struct {
		name string
		args []string
	}{
		{name: "zero", args: []string{"-i", "0"}},
		{name: "negative", args: []string{"--interval=-5"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.args)
			require.Error(t, err)

			var appErr errors.Error
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, errors.ErrInvalidInterval, appErr.Code())
		})
	}
}

func TestMalformedConfigFile(t *testing.T) {
	writeConfigFile(t, "interval = [")

	_, err := Load(nil)
	require.Error(t, err)

	var appErr errors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, errors.ErrReadConfig, appErr.Code())
}

func TestMissingExplicitConfigFile(t *testing.T) {
	t.Setenv(configEnv, filepath.Join(t.TempDir(), "does-not-exist.conf"))

	_, err := Load(nil)
	require.Error(t, err)
}

func TestVersionFlag(t *testing.T) {
	writeConfigFile(t, "")

	cfg, err := Load([]string{"-v"})
	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)
}

func TestVersionFlagSkipsConfigFile(t *testing.T) {
	writeConfigFile(t, "interval = [")

	cfg, err := Load([]string{"-v"})
	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)
}

func TestHelpFlag(t *testing.T) {
	writeConfigFile(t, "")

	_, err := Load([]string{"--help"})
	require.Error(t, err)
	assert.True(t, IsHelp(err))
}
