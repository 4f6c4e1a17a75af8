// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asktest provides a scripted ask.Prompter for tests of generated
// parsers.
package asktest

import (
	"context"
	"sync"

	"github.com/yeetrun/askflags/pkg/ask"
)

// Prompter answers prompts from a fixed list and records what was asked.
// Answers rejected by the validator are recorded and the next answer is
// tried, the way an interactive prompt asks again. When the answers run
// out Prompt returns ask.ErrNoInput.
type Prompter struct {
	mu       sync.Mutex
	answers  []string
	titles   []string
	rejected []string
}

// New returns a Prompter that gives answers in order.
func New(answers ...string) *Prompter {
	return &Prompter{answers: answers}
}

var _ ask.Prompter = (*Prompter)(nil)

func (p *Prompter) Prompt(ctx context.Context, title string, validate func(string) error) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.titles = append(p.titles, title)
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if len(p.answers) == 0 {
			return "", ask.ErrNoInput
		}
		a := p.answers[0]
		p.answers = p.answers[1:]
		if validate != nil {
			if err := validate(a); err != nil {
				p.rejected = append(p.rejected, a)
				continue
			}
		}
		return a, nil
	}
}

// Titles returns the prompt titles in the order they were shown.
func (p *Prompter) Titles() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.titles...)
}

// Rejected returns the answers the validator refused.
func (p *Prompter) Rejected() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.rejected...)
}

// Remaining returns the number of unused answers.
func (p *Prompter) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.answers)
}
