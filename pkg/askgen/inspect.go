// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package askgen

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"github.com/fatih/structtag"
	"github.com/google/shlex"
)

// CommandDirective marks a type for generation and carries its command
// metadata.
const CommandDirective = "//askflags:command"

// Diagnostic is a generation-time error tied to a position in the source.
type Diagnostic struct {
	Pos token.Position
	Msg string
}

func (d *Diagnostic) Error() string {
	if !d.Pos.IsValid() {
		return d.Msg
	}
	return fmt.Sprintf("%s: %s", d.Pos, d.Msg)
}

func diagf(fset *token.FileSet, pos token.Pos, format string, args ...any) error {
	return &Diagnostic{Pos: fset.Position(pos), Msg: fmt.Sprintf(format, args...)}
}

// CommandSpec is the struct-level metadata read from the command directive.
type CommandSpec struct {
	Name     string
	Version  string
	About    string
	Examples []string
}

func (c *CommandSpec) parse(s string) error {
	words, err := shlex.Split(s)
	if err != nil {
		return fmt.Errorf("malformed command directive: %w", err)
	}
	for _, w := range words {
		key, value, ok := strings.Cut(w, "=")
		if !ok {
			return fmt.Errorf("malformed command setting %q (want key=value)", w)
		}
		switch key {
		case "name":
			c.Name = value
		case "version":
			c.Version = value
		case "about":
			c.About = value
		case "example":
			c.Examples = append(c.Examples, value)
		default:
			return fmt.Errorf("unknown command setting %q", key)
		}
	}
	return nil
}

// Field describes one named field of the input struct.
type Field struct {
	Name     string
	Type     ast.Expr
	TypeText string
	// Tag is the struct tag as written, without the surrounding quotes.
	Tag string
	// Tags holds every struct tag key of the field in source order,
	// including keys the argument parser does not know about.
	Tags *structtag.Tags
	Doc  []string
	Pos  token.Position
}

// Decl is the inspected form of a struct declaration.
type Decl struct {
	Name string
	// Doc is the doc comment text, one entry per line, without directives.
	Doc []string
	// Directives holds the raw //askflags:command comment lines.
	Directives []string
	Command    CommandSpec
	Fields     []Field
	Pos        token.Position
}

// Inspect reads a type declaration. doc is the comment group documenting
// the type, which for a single-spec declaration is attached to the GenDecl.
func Inspect(fset *token.FileSet, spec *ast.TypeSpec, doc *ast.CommentGroup) (*Decl, error) {
	name := spec.Name.Name
	if spec.TypeParams != nil && spec.TypeParams.NumFields() > 0 {
		return nil, diagf(fset, spec.Pos(), "%s: askflags does not support generic types", name)
	}
	st, ok := spec.Type.(*ast.StructType)
	if !ok {
		return nil, diagf(fset, spec.Pos(), "%s: askflags only supports structs", name)
	}
	if st.Fields == nil || len(st.Fields.List) == 0 {
		return nil, diagf(fset, spec.Pos(), "%s: askflags only supports structs with named fields", name)
	}

	d := &Decl{
		Name: name,
		Doc:  commentLines(doc),
		Pos:  fset.Position(spec.Pos()),
	}
	if doc != nil {
		for _, c := range doc.List {
			rest, ok := cutDirective(c.Text)
			if !ok {
				continue
			}
			if err := d.Command.parse(rest); err != nil {
				return nil, diagf(fset, c.Pos(), "%s: %v", name, err)
			}
			d.Directives = append(d.Directives, c.Text)
		}
	}

	for _, f := range st.Fields.List {
		if len(f.Names) == 0 {
			return nil, diagf(fset, f.Pos(), "%s: askflags only supports structs with named fields, found embedded %s", name, types.ExprString(f.Type))
		}
		raw, tags, err := parseTag(f.Tag)
		if err != nil {
			return nil, diagf(fset, f.Tag.Pos(), "%s: malformed struct tag: %v", name, err)
		}
		docLines := commentLines(f.Doc)
		for _, id := range f.Names {
			if !id.IsExported() {
				return nil, diagf(fset, id.Pos(), "%s.%s: field is not exported and cannot be set from arguments", name, id.Name)
			}
			d.Fields = append(d.Fields, Field{
				Name:     id.Name,
				Type:     f.Type,
				TypeText: types.ExprString(f.Type),
				Tag:      raw,
				Tags:     tags,
				Doc:      docLines,
				Pos:      fset.Position(id.Pos()),
			})
		}
	}
	return d, nil
}

// cutDirective reports whether text is a command directive and returns the
// settings that follow it.
func cutDirective(text string) (string, bool) {
	rest, ok := strings.CutPrefix(text, CommandDirective)
	if !ok {
		return "", false
	}
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return rest, true
}

func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if _, ok := cutDirective(c.Text); ok {
			return true
		}
	}
	return false
}

// parseTag unquotes a struct tag literal and checks that it is well formed.
func parseTag(lit *ast.BasicLit) (string, *structtag.Tags, error) {
	if lit == nil {
		return "", &structtag.Tags{}, nil
	}
	raw, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", nil, err
	}
	tags, err := structtag.Parse(raw)
	if err != nil {
		return "", nil, err
	}
	if tags == nil {
		tags = &structtag.Tags{}
	}
	return raw, tags, nil
}

// commentLines returns the text of a comment group split into lines. Comment
// markers and directives are removed.
func commentLines(cg *ast.CommentGroup) []string {
	if cg == nil {
		return nil
	}
	text := strings.TrimRight(cg.Text(), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
