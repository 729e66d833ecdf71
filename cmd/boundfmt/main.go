// Command boundfmt renders descriptor documents the way the boundfmt
// package renders diagnostic messages.
package main

import (
	"os"

	"github.com/bjaus/boundfmt/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
