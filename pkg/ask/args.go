// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ask

import (
	"errors"
	"reflect"
	"strings"

	"github.com/shayne/yargs"
)

var (
	// ErrHelp is the kind of Message returned for -h and --help.
	ErrHelp = errors.New("help requested")
	// ErrVersion is the kind of Message returned for -V and --version.
	ErrVersion = errors.New("version requested")
)

// Message is returned instead of parsed flags when the arguments ask for
// output rather than a run of the program. Text should be printed to
// stdout and the program should exit successfully.
type Message struct {
	Kind error
	Text string
}

func (m *Message) Error() string { return m.Kind.Error() }

func (m *Message) Unwrap() error { return m.Kind }

// ParseFlags parses args into the fields of T using their flag, short,
// help and default tags. It returns the positional arguments followed by
// everything after "--".
//
// Unless T defines them itself, -h and --help return a *Message with the
// usage text, --help-llm returns the usage formatted for language models,
// and when cmd has a version -V and --version return a *Message with it.
func ParseFlags[T any](args []string, cmd Command) (T, []string, error) {
	var zero T
	flagArgs, _ := splitArgsAtDoubleDash(args)
	for _, a := range flagArgs {
		switch a {
		case "-h", "--help":
			if !definesFlag[T]("help", "h") {
				return zero, nil, &Message{Kind: ErrHelp, Text: helpText[T](cmd, false)}
			}
		case "--help-llm":
			if !definesFlag[T]("help-llm") {
				return zero, nil, &Message{Kind: ErrHelp, Text: helpText[T](cmd, true)}
			}
		case "-V", "--version":
			if cmd.Version != "" && !definesFlag[T]("version", "V") {
				return zero, nil, &Message{Kind: ErrVersion, Text: cmd.versionText()}
			}
		}
	}

	result, err := yargs.ParseFlags[T](args)
	if err != nil {
		return zero, nil, err
	}
	rest := append([]string{}, result.Args...)
	if len(result.RemainingArgs) > 0 {
		rest = append(rest, result.RemainingArgs...)
	}
	return result.Flags, rest, nil
}

// ParseArgs is ParseFlags for commands that take no positional arguments.
func ParseArgs[T any](args []string, cmd Command) (T, error) {
	flags, rest, err := ParseFlags[T](args, cmd)
	if err != nil {
		return flags, err
	}
	if len(rest) > 0 {
		var zero T
		return zero, &yargs.InvalidArgsError{Expected: "0", Got: len(rest)}
	}
	return flags, nil
}

func splitArgsAtDoubleDash(args []string) ([]string, []string) {
	for i, arg := range args {
		if arg == "--" {
			if i+1 < len(args) {
				return args[:i], args[i+1:]
			}
			return args[:i], nil
		}
	}
	return args, nil
}

// definesFlag reports whether struct type T has a flag with any of the
// given long or short names.
func definesFlag[T any](names ...string) bool {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		long := f.Tag.Get("flag")
		if long == "" {
			long = strings.ToLower(f.Name)
		}
		short := f.Tag.Get("short")
		for _, n := range names {
			if n == long || (short != "" && n == short) {
				return true
			}
		}
	}
	return false
}
