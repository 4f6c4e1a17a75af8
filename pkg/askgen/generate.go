// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package askgen

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// DefaultRuntime is the import path of the package generated code calls into.
const DefaultRuntime = "github.com/yeetrun/askflags/pkg/ask"

var (
	// ErrNoTypes is returned when a file has nothing to generate.
	ErrNoTypes = errors.New("no types to generate")
	// ErrGenerated is returned for files that are themselves generated
	// code. It wraps ErrNoTypes.
	ErrGenerated = fmt.Errorf("%w: file is generated code", ErrNoTypes)
	// ErrTypeNotFound is returned when a type named in Options.Types is
	// not declared in the file.
	ErrTypeNotFound = errors.New("type not found")
)

// Options configures a generation run.
type Options struct {
	// Types lists the type names to generate for. When empty, every type
	// carrying the command directive is used.
	Types []string
	// Runtime overrides DefaultRuntime.
	Runtime string
	// Header is emitted as a comment above the generated marker.
	Header string
	// SkipMissing ignores names in Types that the file does not declare.
	SkipMissing bool
}

// Result is the output of generating one source file.
type Result struct {
	Package string
	Decls   []*Decl
	Source  []byte
}

// Generate parses the Go source in filename (or src, when non-nil, with
// the same meaning as for parser.ParseFile) and generates code for it.
func Generate(filename string, src any, opts Options) (*Result, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}
	return GenerateFile(fset, file, filename, opts)
}

// GenerateFile generates code for an already parsed file. The file must
// have been parsed with comments. Generated files are never used as input,
// even when Options.Types names one of their types.
func GenerateFile(fset *token.FileSet, file *ast.File, filename string, opts Options) (*Result, error) {
	if ast.IsGenerated(file) {
		return nil, fmt.Errorf("%s: %w", filepath.Base(filename), ErrGenerated)
	}
	specs, err := selectTypes(file, opts.Types, opts.SkipMissing)
	if err != nil {
		return nil, err
	}
	if len(specs) == 0 {
		return nil, ErrNoTypes
	}

	res := &Result{Package: file.Name.Name}
	data := fileData{
		Header:  headerLines(opts.Header),
		Source:  filepath.Base(filename),
		Package: file.Name.Name,
	}
	for _, s := range specs {
		d, err := Inspect(fset, s.spec, s.doc)
		if err != nil {
			return nil, err
		}
		shadow := Synthesize(d)
		res.Decls = append(res.Decls, d)
		data.Types = append(data.Types, typeData{Shadow: shadow, Ctor: Reconcile(d, shadow)})
	}

	runtime := opts.Runtime
	if runtime == "" {
		runtime = DefaultRuntime
	}
	imports, err := resolveImports(fset, file, res.Decls, runtime)
	if err != nil {
		return nil, err
	}
	data.Imports = groupImports(imports)
	res.Source, err = render(data)
	if err != nil {
		return nil, err
	}
	return res, nil
}

type typeSpec struct {
	spec *ast.TypeSpec
	doc  *ast.CommentGroup
}

// selectTypes returns the type specs to generate for, in source order.
func selectTypes(file *ast.File, names []string, skipMissing bool) ([]typeSpec, error) {
	var out []typeSpec
	found := make(map[string]bool)
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, s := range gd.Specs {
			ts := s.(*ast.TypeSpec)
			doc := ts.Doc
			if doc == nil && !gd.Lparen.IsValid() {
				doc = gd.Doc
			}
			want := hasDirective(doc)
			if len(names) > 0 {
				want = slices.Contains(names, ts.Name.Name)
			}
			if want {
				found[ts.Name.Name] = true
				out = append(out, typeSpec{spec: ts, doc: doc})
			}
		}
	}
	if skipMissing {
		return out, nil
	}
	for _, n := range names {
		if !found[n] {
			return nil, fmt.Errorf("%w: %s", ErrTypeNotFound, n)
		}
	}
	return out, nil
}

func headerLines(h string) []string {
	h = strings.TrimSpace(h)
	if h == "" {
		return nil
	}
	lines := strings.Split(h, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(l), "//"))
	}
	return lines
}

// resolveImports returns the imports the generated file needs: the standard
// ones, the runtime, and every package qualifying a field type.
func resolveImports(fset *token.FileSet, file *ast.File, decls []*Decl, runtime string) ([]importSpec, error) {
	imports := []importSpec{{Path: "context"}, {Path: "os"}}
	rt := importSpec{Path: runtime}
	if ImportName(runtime) != "ask" {
		rt.Name = "ask"
	}

	byName := make(map[string]importSpec)
	for _, is := range file.Imports {
		p, err := strconv.Unquote(is.Path.Value)
		if err != nil {
			continue
		}
		spec := importSpec{Path: p}
		name := ImportName(p)
		if is.Name != nil {
			switch is.Name.Name {
			case "_", ".":
				continue
			}
			name = is.Name.Name
			spec.Name = name
		}
		byName[name] = spec
	}

	// Names the generated code uses for its own imports.
	fixed := map[string]string{"context": "context", "os": "os", "ask": runtime}
	seen := map[string]bool{"context": true, "os": true, runtime: true}
	var extra []importSpec
	for _, d := range decls {
		for _, f := range d.Fields {
			var err error
			ast.Inspect(f.Type, func(n ast.Node) bool {
				if err != nil {
					return false
				}
				sel, ok := n.(*ast.SelectorExpr)
				if !ok {
					return true
				}
				id, ok := sel.X.(*ast.Ident)
				if !ok {
					return true
				}
				spec, ok := byName[id.Name]
				if !ok {
					err = diagf(fset, sel.Pos(), "%s.%s: no import found for package %s", d.Name, f.Name, id.Name)
					return false
				}
				if p, ok := fixed[id.Name]; ok && p != spec.Path {
					err = diagf(fset, sel.Pos(), "%s.%s: package %q is imported as %s, which generated code uses for %q; import it under another name", d.Name, f.Name, spec.Path, id.Name, p)
					return false
				}
				if !seen[spec.Path] {
					seen[spec.Path] = true
					extra = append(extra, spec)
				}
				return false
			})
			if err != nil {
				return nil, err
			}
		}
	}
	slices.SortFunc(extra, func(a, b importSpec) int { return strings.Compare(a.Path, b.Path) })
	imports = append(imports, extra...)
	return append(imports, rt), nil
}

// groupImports splits specs into standard library and other imports,
// dropping empty groups.
func groupImports(specs []importSpec) [][]importSpec {
	var std, other []importSpec
	for _, s := range specs {
		first, _, _ := strings.Cut(s.Path, "/")
		if strings.Contains(first, ".") {
			other = append(other, s)
		} else {
			std = append(std, s)
		}
	}
	var groups [][]importSpec
	for _, g := range [][]importSpec{std, other} {
		if len(g) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

// ImportName guesses the package name of an import path: the last element,
// skipping a major version suffix, with a leading "go-" and anything after
// the first dot or dash removed.
func ImportName(p string) string {
	base := path.Base(p)
	if isMajorVersion(base) {
		if dir := path.Dir(p); dir != "." {
			base = path.Base(dir)
		}
	}
	base = strings.TrimPrefix(base, "go-")
	if i := strings.IndexAny(base, ".-"); i > 0 {
		base = base[:i]
	}
	return base
}

func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	n, err := strconv.Atoi(s[1:])
	return err == nil && n >= 2
}
