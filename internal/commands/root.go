package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/athapa23/ece545-f22-prj/internal/config"
	"github.com/athapa23/ece545-f22-prj/pkg/xtea"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
// Flags are persistent so they may follow the subcommand, e.g. `xtea16 enc -k ... msg`.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "xtea16 [flags] command [flags]"
	root.Short = "Reduced XTEA round transform tracer"
	root.Long = `Runs a reduced XTEA variant (32-bit block, 16-bit halves, 3 rounds by default)
over sample vectors or 32-bit messages, and prints the intermediate values of every round.

Flags can also be set through XTEA16_* environment variables, e.g. XTEA16_KEY.`

	flags := root.PersistentFlags()

	flags.BoolP("show", "s", false, "Show the configuration and exit")
	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.Bool("stats", false, "Print statistics to stderr")
	flags.StringP("output", "o", "", "Write the report to a file instead of stdout")

	flags.StringP("key", "k", "", "Key table as 16 hex digits, defaults to the sample key abcdcccc6666fedc")
	flags.StringP("key-file", "f", "", "Path to a file holding the key table as 16 hex digits")
	flags.IntP("rounds", "r", xtea.Rounds, "Number of round-pairs")

	root.AddCommand(
		NewTraceCommand(cfg),
		NewEncryptCommand(cfg),
		NewDecryptCommand(cfg),
		NewCheckCommand(cfg),
		NewGenerateCommand(),
	)

	return root
}
