package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	appErrors "biodex/internal/errors"
)

const (
	exitFailure = 1
	exitInvalid = 2
	exitUsage   = 64
)

// exitError carries a process exit code through cobra.
type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string { return e.err.Error() }

func (e exitError) Unwrap() error { return e.err }

func main() {
	c := newCLI()
	cmd := newRootCmd(c)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(reportError(c, err))
	}
}

// reportError prints err and returns the exit code for it. Field errors were
// already printed per field.
func reportError(c *cli, err error) int {
	var exit exitError
	if errors.As(err, &exit) {
		if exit.code != exitInvalid {
			fmt.Fprintf(c.errOut, "Error: %v\n", exit.err)
		}
		return exit.code
	}
	msg := appErrors.MessageOf(err)
	if msg == "" {
		msg = err.Error()
	}
	fmt.Fprintf(c.errOut, "Error: %s\n", msg)
	return exitFailure
}
