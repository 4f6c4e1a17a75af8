// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package askgen generates argument parsers that fall back to interactive
// prompts for required values.
//
// The input is an ordinary struct declaration. Struct tags understood by the
// argument parser (flag, short, help, default, port) describe the command
// line, and an optional prompt tag holds the question asked when the value
// was not given:
//
//	// Cli greets the user.
//	//
//	//askflags:command name=myapp version=1.0
//	type Cli struct {
//	    Name   string `flag:"name" short:"n" prompt:"What is your name?"`
//	    Age    uint32 `flag:"age" short:"a" prompt:"How old are you?"`
//	    Stderr bool   `flag:"stderr" short:"s"`
//	}
//
// Generation runs in four stages:
//
//   - Inspect reads the declaration and rejects anything that is not a struct
//     with named, exported fields.
//   - Classify decides whether a field is Required (it must end up with a
//     value and may be prompted for) or Optional (a pointer or a plain bool;
//     absence is a final answer and it is never prompted for).
//   - Synthesize builds the shadow type, CliOptionals, in which every Required
//     field becomes a pointer. Parser tags and doc comments are carried over;
//     the prompt tag is not.
//   - Reconcile builds ParseCli and ParseCliArgs. They parse the arguments into
//     the shadow type, copy Optional fields, and unwrap or prompt for each
//     Required field in declaration order.
//
// # Command Metadata
//
// The //askflags:command directive in the type's doc comment sets the program
// name, version, description and examples shown by --help and --version:
//
//	//askflags:command name=myapp version=1.0 about="Says hello" example="myapp -n Alice"
//
// Values use shell quoting. Without an about setting the first line of the doc
// comment is used.
//
// # Limitations
//
// Classification looks at the syntax of the field type only. A named bool
// type, a qualified name such as pkg.Bool, or a named pointer type are all
// Required.
package askgen
