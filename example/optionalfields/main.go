// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Optionalfields shows which fields are prompted for. Arg1 is required
// and asked for when missing. Arg2 is a switch and Arg3 is optional, so
// neither is ever prompted for.
package main

import (
	"fmt"
	"time"
)

//go:generate go run github.com/yeetrun/askflags/cmd/askflags

// Opts holds the example arguments.
//
//askflags:command name=optionalfields version=0.1.0
type Opts struct {
	Arg1 string         `flag:"arg1" help:"A required value" prompt:"What is arg1 ?"`
	Arg2 bool           `flag:"arg2" help:"A switch"`
	Arg3 *time.Duration `flag:"arg3" help:"An optional timeout"`
}

func describe(o Opts) string {
	timeout := "none"
	if o.Arg3 != nil {
		timeout = o.Arg3.String()
	}
	return fmt.Sprintf("arg1=%s arg2=%t arg3=%s", o.Arg1, o.Arg2, timeout)
}

func main() {
	fmt.Println(describe(ParseOpts()))
}
