// Package main is the entry point for the paluwagan admin CLI.
package main

import (
	"os"

	"github.com/SscSPs/paluwagan_app/cmd/paluwagan_cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
