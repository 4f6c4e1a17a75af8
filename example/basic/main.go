// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Basic greets the user, asking for a name and age when they are not
// given on the command line.
package main

import "fmt"

//go:generate go run github.com/yeetrun/askflags/cmd/askflags

// Cli greets the user.
//
//askflags:command name=myapp version=1.0
type Cli struct {
	Name string `flag:"name" short:"n" help:"Your name" prompt:"What is your name?"`
	Age  uint32 `flag:"age" short:"a" help:"Your age" prompt:"How old are you?"`
}

func greeting(c Cli) string {
	return fmt.Sprintf("Hello %s, you are %d years old.", c.Name, c.Age)
}

func main() {
	fmt.Println(greeting(ParseCli()))
}
