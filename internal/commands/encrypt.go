package commands

import (
	"github.com/spf13/cobra"

	"github.com/athapa23/ece545-f22-prj/internal/config"
	"github.com/athapa23/ece545-f22-prj/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] messages...",
		Aliases: []string{"enc"},
		Short:   "Encrypt 32-bit hex messages",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg),
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.RunMessages(cfg)
		},
	}
}
