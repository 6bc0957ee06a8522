package commands

import (
	"github.com/spf13/cobra"

	"github.com/athapa23/ece545-f22-prj/internal/config"
	"github.com/athapa23/ece545-f22-prj/internal/logic"
)

// NewCheckCommand creates a new cobra command for the check subcommand.
func NewCheckCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "check [flags] vector files...",
		Short:   "Validate that vectors encipher to their expected values",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg),
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.RunCheck(cfg)
		},
	}
}
