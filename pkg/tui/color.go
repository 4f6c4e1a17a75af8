// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tui holds the small bits of terminal styling shared by the
// askflags command and the prompt runtime.
package tui

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Colorizer paints text when Enabled and returns it unchanged otherwise.
type Colorizer struct {
	Enabled bool
}

// NewColorizer returns a Colorizer for w. Color is enabled only when w is
// a terminal, NO_COLOR is unset and TERM is not dumb.
func NewColorizer(w io.Writer) Colorizer {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	t := os.Getenv("TERM")
	if t == "" || t == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

func (c Colorizer) paint(text string, attrs ...color.Attribute) string {
	if !c.Enabled {
		return text
	}
	col := color.New(attrs...)
	col.EnableColor()
	return col.Sprint(text)
}

// Red is used for errors.
func (c Colorizer) Red(text string) string { return c.paint(text, color.FgRed, color.Bold) }

// Yellow is used for warnings and stale files.
func (c Colorizer) Yellow(text string) string { return c.paint(text, color.FgYellow) }

// Green is used for written files.
func (c Colorizer) Green(text string) string { return c.paint(text, color.FgGreen) }

// Dim is used for unchanged files and hints.
func (c Colorizer) Dim(text string) string { return c.paint(text, color.FgHiBlack) }
