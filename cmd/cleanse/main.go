// Package main is the entry point for the cleanse CLI.
package main

import (
	"os"

	"github.com/jmylchreest/cleanse/cmd/cleanse/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
