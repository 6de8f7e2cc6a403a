package main

import (
	"fmt"
	"os"

	"github.com/volfs/volfs/internal/cli"
	"github.com/volfs/volfs/internal/constants"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := cli.NewRootCmd(&cli.App{})

	cmd, err := root.ExecuteC()
	if err == nil {
		return constants.ExitOK
	}

	fmt.Fprintf(os.Stderr, "volfs: %v\n", err)
	code := cli.ExitCode(err)
	if code == constants.ExitUsage {
		fmt.Fprint(os.Stderr, cmd.UsageString())
	}
	return code
}
