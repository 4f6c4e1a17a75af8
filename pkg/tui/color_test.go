// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"bytes"
	"strings"
	"testing"
)

func TestColorizerDisabled(t *testing.T) {
	c := Colorizer{}
	for _, got := range []string{c.Red("x"), c.Yellow("x"), c.Green("x"), c.Dim("x")} {
		if got != "x" {
			t.Errorf("disabled colorizer changed text: %q", got)
		}
	}
}

func TestColorizerEnabled(t *testing.T) {
	c := Colorizer{Enabled: true}
	got := c.Red("Error:")
	if !strings.Contains(got, "Error:") || !strings.HasPrefix(got, "\x1b[") {
		t.Errorf("Red = %q, want ANSI wrapped text", got)
	}
	if !strings.HasSuffix(got, "\x1b[0m") {
		t.Errorf("Red = %q, want reset suffix", got)
	}
}

func TestNewColorizerNonTerminal(t *testing.T) {
	if NewColorizer(&bytes.Buffer{}).Enabled {
		t.Error("colors enabled for a buffer")
	}
}

func TestNewColorizerNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("TERM", "xterm-256color")
	if NewColorizer(&bytes.Buffer{}).Enabled {
		t.Error("colors enabled with NO_COLOR set")
	}
}
