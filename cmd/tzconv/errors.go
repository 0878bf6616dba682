package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/hlop3z/tzconv/internal/alerr"
	"github.com/hlop3z/tzconv/internal/cli"
)

// errUsage marks a usage error whose help text has already been printed.
var errUsage = errors.New("usage error")

// usageError prints the help message for key and returns errUsage.
func usageError(w io.Writer, key string) error {
	printHelp(w, key)
	return errUsage
}

// handleError prints err to w and returns the process exit code.
func handleError(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, errUsage) {
		return 1
	}

	if alerr.HasCode(err) {
		fmt.Fprint(w, cli.FormatError(err))
		return 1
	}

	// Flag parsing and other cobra errors.
	fmt.Fprint(w, cli.FormatError(err))
	fmt.Fprint(w, cli.FormatHelp("run `tzconv --help` for usage"))
	return 1
}
