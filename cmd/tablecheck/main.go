// Package main provides the CLI for the tablecheck data quality profiler.
package main

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/tablecheck/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
