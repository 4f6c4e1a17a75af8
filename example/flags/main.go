// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Flags greets the user on stdout, or on stderr when asked to. Only the
// name is prompted for.
package main

import (
	"fmt"
	"io"
	"os"
)

//go:generate go run github.com/yeetrun/askflags/cmd/askflags

// Args is the command line of the flags example.
//
//askflags:command name=flags about="Greet someone on stdout or stderr" example="flags -n Alice --stderr"
type Args struct {
	Name   string `flag:"name" short:"n" help:"Who to greet" prompt:"What is your name?"`
	Stderr bool   `flag:"stderr" short:"s" help:"Write the greeting to stderr"`
}

func greet(stdout, stderr io.Writer, a Args) {
	w := stdout
	if a.Stderr {
		w = stderr
	}
	fmt.Fprintf(w, "Hello, %s!\n", a.Name)
}

func main() {
	greet(os.Stdout, os.Stderr, ParseArgs())
}
