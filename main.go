// Command fta runs the analyzer binary built for this machine, forwarding
// every argument unchanged and exiting with the analyzer's exit code.
package main

import (
	"os"

	"github.com/fta-dev/fta-go/internal/cli"
)

func main() {
	os.Exit(cli.ExecuteDirect(os.Args[1:]))
}
