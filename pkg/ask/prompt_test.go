// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ask

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestLines(t *testing.T) {
	var out bytes.Buffer
	p := Lines(strings.NewReader("  Alice \n"), &out)
	v, err := p.Prompt(context.Background(), "What is your name?", nil)
	if err != nil || v != "Alice" {
		t.Errorf("Prompt = %q, %v", v, err)
	}
	if got := out.String(); got != "What is your name?: " {
		t.Errorf("output = %q", got)
	}

	// The last line needs no newline.
	p = Lines(strings.NewReader("Bob"), &out)
	if v, err := p.Prompt(context.Background(), "Name", nil); err != nil || v != "Bob" {
		t.Errorf("Prompt = %q, %v", v, err)
	}
}

func TestLinesRetry(t *testing.T) {
	var out bytes.Buffer
	p := Lines(strings.NewReader("\nabc\n42\n"), &out)
	v, err := Input[int](context.Background(), p, "How old are you?")
	if err != nil || v != 42 {
		t.Fatalf("Input = %d, %v", v, err)
	}
	got := out.String()
	if n := strings.Count(got, "How old are you?: "); n != 3 {
		t.Errorf("asked %d times, want 3:\n%s", n, got)
	}
	for _, want := range []string{"error: a value is required\n", `error: "abc" is not a valid int`} {
		if !strings.Contains(got, want) {
			t.Errorf("output lacks %q:\n%s", want, got)
		}
	}
}

func TestLinesErrors(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	tests := []struct {
		name     string
		ctx      context.Context
		input    string
		validate func(string) error
		want     error
	}{
		{"EOF", context.Background(), "", nil, ErrNoInput},
		{"EOFAfterRejected", context.Background(), "x\n", func(string) error { return errors.New("no") }, ErrNoInput},
		{"Cancelled", cancelled, "Bob\n", nil, context.Canceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Lines(strings.NewReader(tt.input), &bytes.Buffer{})
			_, err := p.Prompt(tt.ctx, "Name", tt.validate)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLinesSharedReader(t *testing.T) {
	p := Lines(strings.NewReader("Alice\n30\n"), &bytes.Buffer{})
	name, err := Input[string](context.Background(), p, "What is your name?")
	if err != nil {
		t.Fatal(err)
	}
	age, err := Input[uint32](context.Background(), p, "How old are you?")
	if err != nil {
		t.Fatal(err)
	}
	if name != "Alice" || age != 30 {
		t.Errorf("got %q, %d; want Alice, 30", name, age)
	}
}

func TestPrompterFunc(t *testing.T) {
	var got string
	p := PrompterFunc(func(_ context.Context, title string, _ func(string) error) (string, error) {
		got = title
		return "v", nil
	})
	v, err := p.Prompt(context.Background(), "T", nil)
	if err != nil || v != "v" {
		t.Errorf("Prompt = %q, %v", v, err)
	}
	if got != "T" {
		t.Errorf("title = %q", got)
	}
}
