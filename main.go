// Command xtea16 traces a reduced XTEA variant over sample vectors and 32-bit messages.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/athapa23/ece545-f22-prj/internal/commands"
	"github.com/athapa23/ece545-f22-prj/internal/config"
)

// version is set at build time.
var version = "dev"

func main() {
	var cfg config.Config

	root := commands.NewRootCommand(&cfg, version)

	if err := root.Execute(); err != nil {
		if errors.Is(err, cobraext.ErrExitGracefully) {
			return
		}

		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		os.Exit(1)
	}
}
