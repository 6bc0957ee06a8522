// Package commands provides the command-line interface for the xtea16 tool.
//
// It implements commands for:
//   - tracing the round transform over vector tables
//   - encrypting and decrypting 32-bit messages
//   - checking vector tables against expected ciphertexts
//   - generating keys
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
// Configuration lives in the global viper instance set up by the root command.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/athapa23/ece545-f22-prj/internal/config"
)

// preRun returns a PreRunE handler that stores the positional args in cfg
// and validates the configuration.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		cfg.Args = args

		return cobraext.Validate(cfg, cfg)
	}
}
