// Package main is the entry point for the openrsvp CLI.
package main

import (
	"os"

	"github.com/brandonleon/invite/cmd/openrsvp/commands"
	"github.com/brandonleon/invite/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(errors.ExitCode(err))
	}
}
