// Command reactorctl is a small demonstration driver for the reactors
// dataflow core: it plays the "enclosing application" role the core's
// spec deliberately keeps external (no I/O scheduler, no owned threads,
// no CLI inside the core itself).
package main

import (
	"fmt"
	"os"

	"github.com/fenwick-systems/reactors/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
