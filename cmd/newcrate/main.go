// Package main is the entry point for newcrate.
package main

import (
	"errors"
	"os"

	"github.com/newcrate/cli/internal/cmd"
	oerrors "github.com/newcrate/cli/internal/errors"
	"github.com/newcrate/cli/internal/output"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		// Only report if the command layer hasn't already printed it
		var exitErr *oerrors.ExitError
		if !errors.As(err, &exitErr) || !exitErr.Printed {
			output.Error(err.Error())
		}
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
