// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ask

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/yeetrun/askflags/pkg/tui"
	"golang.org/x/term"
)

// Prompter asks the user for a single line of text.
//
// validate, when not nil, is called with each answer. A Prompter should
// show the error and ask again until validate accepts the answer.
type Prompter interface {
	Prompt(ctx context.Context, title string, validate func(string) error) (string, error)
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(ctx context.Context, title string, validate func(string) error) (string, error)

func (f PrompterFunc) Prompt(ctx context.Context, title string, validate func(string) error) (string, error) {
	return f(ctx, title, validate)
}

// Terminal returns the Prompter used by generated Parse functions: an
// interactive form when stdin is a terminal, a line reader otherwise.
// Prompts are written to stderr so stdout stays clean for the program.
func Terminal() Prompter {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return Form{In: os.Stdin, Out: os.Stderr}
	}
	return Lines(os.Stdin, os.Stderr)
}

// Form prompts with a single-field huh form.
type Form struct {
	In    io.Reader
	Out   io.Writer
	Theme *huh.Theme
}

func (f Form) Prompt(ctx context.Context, title string, validate func(string) error) (string, error) {
	var value string
	input := huh.NewInput().
		Title(title).
		Value(&value)
	if validate != nil {
		input = input.Validate(validate)
	}
	form := huh.NewForm(huh.NewGroup(input)).WithShowHelp(false)
	if f.In != nil {
		form = form.WithInput(f.In)
	}
	if f.Out != nil {
		form = form.WithOutput(f.Out)
	}
	if f.Theme != nil {
		form = form.WithTheme(f.Theme)
	}
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrAborted
		}
		return "", err
	}
	return value, nil
}

type lines struct {
	r     *bufio.Reader
	w     io.Writer
	color tui.Colorizer
}

// Lines returns a Prompter that writes "title: " to w and reads one line
// from r per attempt. Surrounding whitespace is dropped. It fails with
// ErrNoInput once r is exhausted.
func Lines(r io.Reader, w io.Writer) Prompter {
	return &lines{r: bufio.NewReader(r), w: w, color: tui.NewColorizer(w)}
}

func (l *lines) Prompt(ctx context.Context, title string, validate func(string) error) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprintf(l.w, "%s: ", title)
		line, err := l.r.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("failed to read answer: %w", err)
			}
			fmt.Fprintln(l.w)
			if line == "" {
				return "", ErrNoInput
			}
		}
		line = strings.TrimSpace(line)
		if validate == nil {
			return line, nil
		}
		verr := validate(line)
		if verr == nil {
			return line, nil
		}
		fmt.Fprintf(l.w, "%s %v\n", l.color.Red("error:"), verr)
	}
}
