// Package config holds the command-line configuration and its validation.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/gogen/pkg/validator"

	"github.com/athapa23/ece545-f22-prj/internal/vectors"
)

// Config holds the resolved flags, environment variables and positional arguments.
type Config struct {
	// Show prints the configuration and exits
	Show bool

	// Key is the key table as 16 hex digits, with an optional 0x prefix
	Key string `label:"--key" validate:"omitempty,len=16,hexadecimal,exclusive=KeyFile"`
	// KeyFile is a file holding the key table as 16 hex digits
	KeyFile string `label:"--key-file" mapstructure:"key-file"`

	// Rounds is the number of round-pairs per block
	Rounds int `label:"--rounds" validate:"min=0,max=255"`

	// Parallel is the number of concurrent workers
	Parallel int `label:"--parallel" validate:"min=1"`

	Quiet bool
	Stats bool

	// Output redirects the report to a file
	Output string

	// Decrypt selects the inverse transform
	Decrypt bool `mapstructure:"-"`

	// Args are the positional arguments: messages or vector files
	Args []string `mapstructure:"-"`
}

// Display returns the value of the Show field.
func (c *Config) Display() bool {
	return c.Show
}

// Validate normalizes the key and validates the configuration against the struct tags.
func (c *Config) Validate(config any) error {
	c.Key = vectors.TrimHexPrefix(c.Key)

	validator := validator.NewValidator()

	if err := registerExclusive(validator); err != nil {
		return fmt.Errorf("registering validations: %w", err)
	}

	if errs := validator.Validate(config); errs != nil {
		return errors.Join(errs...)
	}

	return nil
}

// KeyTable resolves the key from --key, --key-file or the sample key, in that order.
func (c *Config) KeyTable() ([]uint16, error) {
	switch {
	case c.Key != "":
		return vectors.ParseKey(c.Key)
	case c.KeyFile != "":
		data, err := os.ReadFile(c.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("reading key file: %w", err)
		}

		key, err := vectors.ParseKey(string(data))
		if err != nil {
			return nil, fmt.Errorf("key file %q: %w", c.KeyFile, err)
		}

		return key, nil
	default:
		return append([]uint16(nil), vectors.SampleKey...), nil
	}
}
