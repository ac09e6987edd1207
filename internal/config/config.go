// Package config loads daemon settings from command line flags and an
// optional TOML configuration file, with flags taking precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/mutker/batterylogd/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configEnv      = "BATTERYLOGD_CONFIG"
	configName     = "batterylogd.conf"
	configPath     = "/etc"
	configType     = "toml"
	defaultLogName = "batterylogd.log"

	// DefaultInterval is the number of seconds between sampling cycles
	// when no interval is configured.
	DefaultInterval = 60
)

type Config struct {
	Interval  int      `mapstructure:"interval"`
	Battery   []string `mapstructure:"battery"`
	Backlight []string `mapstructure:"backlight"`
	Log       string   `mapstructure:"log"`
	Debug     bool     `mapstructure:"debug"`
	Verbose   bool     `mapstructure:"verbose"`

	// ShowVersion is set from the command line only and never read
	// from the configuration file.
	ShowVersion bool `mapstructure:"-"`
}

// Load parses the given command line arguments (without the program
// name), merges them with the configuration file and returns the
// resulting configuration. A missing configuration file is not an
// error unless one was named explicitly via BATTERYLOGD_CONFIG. When
// the version flag is given the configuration file is not consulted
// at all.
func Load(args []string) (*Config, error) {
	errFactory := errors.New()
	fs := pflag.NewFlagSet("batterylogd", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() { printUsage(fs) }

	fs.IntP("interval", "i", DefaultInterval, "seconds between sampling cycles")
	fs.StringSliceP("battery", "b", nil, "battery device directory in sysfs (repeatable, disables detection)")
	fs.StringSliceP("backlight", "L", nil, "backlight device directory in sysfs (repeatable)")
	fs.StringP("log", "l", "", "log file path (default \"$HOME/"+defaultLogName+"\")")
	fs.Bool("debug", false, "enable debug logging")
	fs.Bool("verbose", false, "enable verbose logging")
	fs.BoolP("version", "v", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// The version flag is resolved before the configuration file is
	// read; a malformed file must not block it.
	if showVersion, _ := fs.GetBool("version"); showVersion {
		return &Config{ShowVersion: true}, nil
	}

	v := viper.New()
	v.SetConfigType(configType)

	if path := os.Getenv(configEnv); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(configPath)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	if err := v.BindPFlags(fs); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := cfg.resolve(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsHelp reports whether Load failed because the user asked for the
// usage text, which is printed by the flag parser itself.
func IsHelp(err error) bool {
	return errors.Is(err, pflag.ErrHelp)
}

func (c *Config) resolve() error {
	errFactory := errors.New()
	if c.Interval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Interval)
	}

	if c.Log == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return errFactory.Wrap(errors.ErrInvalidConfig, err)
		}
		c.Log = filepath.Join(home, defaultLogName)
	}

	return nil
}

func printUsage(fs *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, "Usage: batterylogd [options]\n\n"+
		"Periodically samples battery and backlight state from sysfs and\n"+
		"appends one line per device to a plain text log.\n\nOptions:\n%s", fs.FlagUsages())
}
