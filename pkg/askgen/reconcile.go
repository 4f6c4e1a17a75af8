// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package askgen

import (
	"go/token"
	"unicode"
	"unicode/utf8"
)

// Step is one field assignment in a generated constructor.
type Step struct {
	Field string
	Class FieldClass
	// Prompt is the question asked when a Required field is absent.
	// It is empty for Optional fields.
	Prompt string
}

// Optional reports whether the step copies the parsed value as is.
func (s Step) Optional() bool { return s.Class == Optional }

// Constructor describes the functions generated for one input type.
type Constructor struct {
	// Type is the input type name.
	Type string
	// Shadow is the shadow type name.
	Shadow string
	// Func parses os.Args and exits on failure.
	Func string
	// ArgsFunc takes its arguments and prompter explicitly and returns errors.
	ArgsFunc string
	// CommandVar names the package-level command metadata variable.
	CommandVar string
	Command    CommandSpec
	Steps      []Step
}

// Reconcile derives the constructor for d from its shadow type s. There is
// exactly one step per field, in field order.
func Reconcile(d *Decl, s *ShadowType) *Constructor {
	fn := "Parse" + d.Name
	if !token.IsExported(d.Name) {
		fn = "parse" + upperFirst(d.Name)
	}
	c := &Constructor{
		Type:       d.Name,
		Shadow:     s.Name,
		Func:       fn,
		ArgsFunc:   fn + "Args",
		CommandVar: unexport(d.Name) + "Command",
		Command:    d.Command,
		Steps:      make([]Step, 0, len(s.Fields)),
	}
	if c.Command.About == "" && len(d.Doc) > 0 {
		c.Command.About = d.Doc[0]
	}
	for i, f := range s.Fields {
		st := Step{Field: f.Name, Class: f.Class}
		if f.Class == Required {
			st.Prompt = ResolvePrompt(d.Fields[i])
		}
		c.Steps = append(c.Steps, st)
	}
	return c
}

func upperFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[n:]
}

// unexport lowercases the leading run of upper case letters of s. When the
// run is followed by a lower case letter its last letter starts the next
// word and stays upper case, so CLIArgs becomes cliArgs.
func unexport(s string) string {
	rs := []rune(s)
	n := 0
	for n < len(rs) && unicode.IsUpper(rs[n]) {
		n++
	}
	if n > 1 && n < len(rs) && unicode.IsLower(rs[n]) {
		n--
	}
	for i := range n {
		rs[i] = unicode.ToLower(rs[i])
	}
	return string(rs)
}
