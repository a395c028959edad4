// Package main provides the filmlens CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/filmlens/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
