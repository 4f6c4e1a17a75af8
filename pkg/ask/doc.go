// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ask is the runtime used by code generated with askflags.
//
// Generated constructors parse arguments into a shadow struct with ParseArgs
// and then call Resolve for each required field: a value given on the
// command line is used as is, a missing one is asked for through a
// Prompter. Terminal picks an interactive form when stdin is a terminal
// and a plain line reader otherwise.
package ask
