package journal

import "codeberg.org/mutker/batterylogd/internal/errors"

const defaultFilePerm = 0o644

type Config struct {
	Path string
}

func (c Config) Validate() error {
	errFactory := errors.New()
	if c.Path == "" {
		return errFactory.New(ErrInvalidPath)
	}
	return nil
}
