package commands

import (
	"github.com/spf13/cobra"

	"github.com/athapa23/ece545-f22-prj/internal/config"
	"github.com/athapa23/ece545-f22-prj/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] ciphertexts...",
		Aliases: []string{"dec"},
		Short:   "Decrypt 32-bit hex ciphertexts",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Decrypt = true

			return preRun(cfg)(cmd, args)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.RunMessages(cfg)
		},
	}
}
