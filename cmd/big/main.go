// Command big exercises the big-sub001 text/container library from
// the shell: one subcommand per package, thin wrappers over the
// library calls, the way vippsas-sqlcode's cli/cmd tree wraps its own
// dep/build/hash logic.
package main

import (
	"fmt"
	"os"

	"github.com/larryhastings/big-sub001/cmd/big/cmd"
)

func main() {
	if err := mainRun(); err != nil {
		os.Exit(1)
	}
}

// mainRun is split out from main so main_test.go's testscript
// bootstrap can invoke the same command tree in-process.
func mainRun() error {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
