// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ask

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shayne/yargs"
	"github.com/yeetrun/askflags/pkg/tui"
)

// Exit codes used by Exit.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
	ExitAborted = 130
)

var (
	osExit           = os.Exit // Mockable for testing
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Exit reports err and ends the program. A *Message is printed to stdout
// with a zero exit code; anything else is printed to stderr.
func Exit(cmd Command, err error) {
	var msg *Message
	if errors.As(err, &msg) {
		fmt.Fprint(stdout, msg.Text)
		osExit(ExitOK)
		return
	}
	color := tui.NewColorizer(stderr)
	fmt.Fprintf(stderr, "%s %v\n", color.Red("Error:"), err)
	code := ExitCode(err)
	if code == ExitUsage {
		fmt.Fprintln(stderr, color.Dim(fmt.Sprintf("Try '%s --help' for more information.", cmd.name())))
	}
	osExit(code)
}

// ExitCode returns the exit code Exit uses for err.
func ExitCode(err error) int {
	var (
		msg      *Message
		flagErr  *yargs.InvalidFlagError
		argsErr  *yargs.InvalidArgsError
		valueErr *yargs.FlagValueError
	)
	switch {
	case err == nil, errors.As(err, &msg):
		return ExitOK
	case errors.As(err, &flagErr), errors.As(err, &argsErr), errors.As(err, &valueErr):
		return ExitUsage
	case errors.Is(err, ErrAborted):
		return ExitAborted
	default:
		return ExitFailure
	}
}
