// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"time"

	u "net/url"
)

// Cli greets the user.
//
//askflags:command name=myapp version=1.0
type Cli struct {
	Name   string `flag:"name" short:"n" prompt:"What is your name?"`
	Age    uint32 `flag:"age" short:"a" prompt:"How old are you?"`
	Stderr bool   `flag:"stderr" short:"s"`
	// Base URL to call.
	Base *u.URL        `flag:"base"`
	Wait time.Duration `flag:"wait"`
}

// Unmarked is not generated unless asked for by name.
type Unmarked struct {
	Verbose bool `flag:"verbose"`
}
