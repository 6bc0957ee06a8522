package commands

import (
	"github.com/spf13/cobra"

	"github.com/athapa23/ece545-f22-prj/internal/config"
	"github.com/athapa23/ece545-f22-prj/internal/logic"
)

// NewTraceCommand creates a new cobra command for the trace subcommand.
func NewTraceCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "trace [flags] [vector files...]",
		Short: "Print every round of the sample table or of vector files",
		Long: `Enciphers each vector and prints w0, k0, t0, high, sum, w1, k1, t1 and low
after every round, followed by the ciphertext. Without files the built-in sample
table is used. Vector files are YAML (.yml, .yaml) or JSON with comments (.json, .jsonc).`,
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg),
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.RunTrace(cfg)
		},
	}
}
