// Package main is the entry point of the contactnet command.
package main

import (
	"os"

	"github.com/katalvlaran/contactnet/cmd/contactnet/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
