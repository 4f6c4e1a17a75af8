// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yeetrun/askflags/pkg/ask"
	"github.com/yeetrun/askflags/pkg/askgen"
)

const cliSource = `package main

// Cli greets the user.
//
//askflags:command name=myapp version=1.0
type Cli struct {
	Name   string ` + "`flag:\"name\" short:\"n\" prompt:\"What is your name?\"`" + `
	Stderr bool   ` + "`flag:\"stderr\"`" + `
}
`

const plainSource = `package main

type helper struct{ n int }
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "cli.go")
	writeFile(t, src, cliSource)

	var logs bytes.Buffer
	if err := run(context.Background(), []string{"-v", src}, &logs); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := filepath.Join(dir, "cli_askflags.go")
	got := readFile(t, out)
	if !strings.Contains(got, "type CliOptionals struct") {
		t.Errorf("generated file lacks shadow type:\n%s", got)
	}
	if !strings.Contains(got, "func ParseCliArgs(") {
		t.Errorf("generated file lacks constructor:\n%s", got)
	}
	if !strings.Contains(logs.String(), "Generated") {
		t.Errorf("logs = %q, want a Generated entry", logs.String())
	}

	logs.Reset()
	if err := run(context.Background(), []string{"-v", src}, &logs); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !strings.Contains(logs.String(), "Unchanged") {
		t.Errorf("logs = %q, want an Unchanged entry", logs.String())
	}
	if again := readFile(t, out); again != got {
		t.Error("second run changed the output")
	}
}

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "cli.go")
	writeFile(t, src, cliSource)
	if err := run(context.Background(), []string{src}, &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := run(context.Background(), []string{"-check", src}, &bytes.Buffer{}); err != nil {
		t.Fatalf("check on fresh output: %v", err)
	}

	writeFile(t, src, strings.Replace(cliSource, "Stderr bool", "Stderr bool\n\tAge uint32", 1))
	out := filepath.Join(dir, "cli_askflags.go")
	before := readFile(t, out)
	var logs bytes.Buffer
	err := run(context.Background(), []string{"-check", src}, &logs)
	if !errors.Is(err, errStale) {
		t.Fatalf("err = %v, want errStale", err)
	}
	if ask.ExitCode(err) != ask.ExitFailure {
		t.Errorf("exit code = %d, want %d", ask.ExitCode(err), ask.ExitFailure)
	}
	if readFile(t, out) != before {
		t.Error("-check wrote the output")
	}
	if !strings.Contains(logs.String(), "Out of date") {
		t.Errorf("logs = %q", logs.String())
	}
}

func TestRunDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "cli.go"), cliSource)
	writeFile(t, filepath.Join(dir, "helper.go"), plainSource)
	writeFile(t, filepath.Join(dir, "cli_test.go"), strings.Replace(cliSource, "Cli", "TestCli", -1))
	writeFile(t, filepath.Join(dir, "sub", "sub.go"), strings.Replace(cliSource, "package main", "package sub", 1))

	if err := run(context.Background(), []string{dir}, &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "cli_askflags.go")); err != nil {
		t.Errorf("cli_askflags.go not written: %v", err)
	}
	for _, name := range []string{"helper_askflags.go", "cli_test_askflags.go", "sub/sub_askflags.go"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			t.Errorf("%s written", name)
		}
	}

	// Generated files are not inputs on the next run.
	if err := run(context.Background(), []string{dir + "/..."}, &bytes.Buffer{}); err != nil {
		t.Fatalf("recursive run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "sub", "sub_askflags.go")); err != nil {
		t.Errorf("recursive run skipped sub: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "cli_askflags_askflags.go")); err == nil {
		t.Error("generated file was used as input")
	}
}

func TestRunOutputAndSuffix(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "cli.go")
	writeFile(t, src, cliSource)

	if err := run(context.Background(), []string{"-o", "args_gen.go", src}, &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "args_gen.go")); err != nil {
		t.Errorf("-output ignored: %v", err)
	}

	if err := run(context.Background(), []string{"--suffix", ".prompt.go", src}, &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "cli.prompt.go")); err != nil {
		t.Errorf("-suffix ignored: %v", err)
	}

	err := run(context.Background(), []string{"-o", "x.go", dir}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "-output requires exactly one input file") {
		t.Errorf("err = %v", err)
	}
}

func TestRunSkipsGeneratedInputs(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "cli.go")
	writeFile(t, src, cliSource)
	if err := run(context.Background(), []string{"-o", "cli_gen.go", src}, &bytes.Buffer{}); err != nil {
		t.Fatalf("run -o: %v", err)
	}

	if err := run(context.Background(), []string{dir}, &bytes.Buffer{}); err != nil {
		t.Fatalf("run dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "cli_gen_askflags.go")); err == nil {
		t.Error("generated file was used as input")
	}
	got := readFile(t, filepath.Join(dir, "cli_askflags.go"))
	if strings.Contains(got, "OptionalsOptionals") {
		t.Errorf("shadow type generated from a shadow type:\n%s", got)
	}

	err := run(context.Background(), []string{filepath.Join(dir, "cli_gen.go")}, &bytes.Buffer{})
	if !errors.Is(err, askgen.ErrGenerated) {
		t.Errorf("explicit generated input: err = %v, want ErrGenerated", err)
	}
}

func TestRunTypes(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "helper.go")
	writeFile(t, src, "package main\n\ntype Opts struct {\n\tLevel int\n}\n")

	err := run(context.Background(), []string{src}, &bytes.Buffer{})
	if !errors.Is(err, askgen.ErrNoTypes) {
		t.Errorf("err = %v, want ErrNoTypes", err)
	}

	if err := run(context.Background(), []string{"-type", "Opts", src}, &bytes.Buffer{}); err != nil {
		t.Fatalf("run -type: %v", err)
	}
	if got := readFile(t, filepath.Join(dir, "helper_askflags.go")); !strings.Contains(got, "type OptsOptionals struct") {
		t.Errorf("output:\n%s", got)
	}

	err = run(context.Background(), []string{"-type", "Missing", dir}, &bytes.Buffer{})
	if !errors.Is(err, askgen.ErrTypeNotFound) {
		t.Errorf("err = %v, want ErrTypeNotFound", err)
	}
}

func TestRunGOFILE(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, filepath.Join(dir, "cli.go"), cliSource)
	t.Setenv("GOFILE", "cli.go")

	if err := run(context.Background(), nil, &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "cli_askflags.go")); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestRunNoInput(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GOFILE", "")
	err := run(context.Background(), nil, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "no input files") {
		t.Errorf("err = %v", err)
	}
}

func TestRunMessages(t *testing.T) {
	err := run(context.Background(), []string{"--help"}, &bytes.Buffer{})
	var msg *ask.Message
	if !errors.As(err, &msg) {
		t.Fatalf("err = %v, want *ask.Message", err)
	}
	for _, want := range []string{"askflags - ", "--type", "--check", "EXAMPLES:"} {
		if !strings.Contains(msg.Text, want) {
			t.Errorf("help lacks %q:\n%s", want, msg.Text)
		}
	}

	err = run(context.Background(), []string{"--version"}, &bytes.Buffer{})
	if !errors.As(err, &msg) || msg.Text != "askflags "+version+"\n" {
		t.Errorf("version err = %v", err)
	}

	err = run(context.Background(), []string{"--bogus"}, &bytes.Buffer{})
	if ask.ExitCode(err) != ask.ExitUsage {
		t.Errorf("err = %v, want a usage error", err)
	}
}

func TestRunVersionWarning(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "cli.go")
	writeFile(t, src, strings.Replace(cliSource, "version=1.0", "version=latest", 1))

	var logs bytes.Buffer
	if err := run(context.Background(), []string{src}, &logs); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(logs.String(), "not a semantic version") {
		t.Errorf("logs = %q, want a version warning", logs.String())
	}
}

func TestRunDiagnostic(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.go")
	writeFile(t, src, "package main\n\n//askflags:command\ntype Bad int\n")
	err := run(context.Background(), []string{src}, &bytes.Buffer{})
	var diag *askgen.Diagnostic
	if !errors.As(err, &diag) {
		t.Fatalf("err = %v, want *askgen.Diagnostic", err)
	}
	if !strings.Contains(err.Error(), "bad.go:4:6") {
		t.Errorf("err = %q, want a position", err)
	}
}
