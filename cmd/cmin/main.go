package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/cminlang/cmin/cli"
)

var version = "dev"

func main() {
	harness := cli.NewHarness(version)

	if err := harness.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var runErr *cli.RunError
		if errors.As(err, &runErr) {
			os.Exit(runErr.Code)
		}
		os.Exit(cli.ExitInvalidArguments)
	}
}
