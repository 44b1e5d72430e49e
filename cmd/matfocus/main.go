package main

import (
	"os"

	"github.com/matfocus/matfocus/internal/cli"
	"github.com/matfocus/matfocus/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps the outcome to an exit code.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
