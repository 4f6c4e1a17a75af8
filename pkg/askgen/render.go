// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package askgen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// GeneratedMarker is the line that marks askflags output as generated code.
const GeneratedMarker = "// Code generated by askflags. DO NOT EDIT."

type importSpec struct {
	Name string
	Path string
}

type typeData struct {
	Shadow *ShadowType
	Ctor   *Constructor
}

type fileData struct {
	Header  []string
	Marker  string
	Source  string
	Package string
	Imports [][]importSpec
	Types   []typeData
}

var fileTmpl = template.Must(template.New("askflags").
	Option("missingkey=error").
	Funcs(sprig.TxtFuncMap()).
	Funcs(template.FuncMap{
		"comment":    comment,
		"tagLiteral": tagLiteral,
	}).
	Parse(fileTemplate))

const fileTemplate = `
{{- range .Header}}// {{.}}
{{end -}}
{{.Marker}}
// Source: {{.Source}}

package {{.Package}}

import (
{{- range $i, $group := .Imports}}
{{- if $i}}
{{end}}
{{- range $group}}
	{{if .Name}}{{.Name}} {{end}}{{quote .Path}}
{{- end}}
{{- end}}
)
{{range .Types}}
{{- with .Shadow}}
{{comment .Doc}}{{if and .Doc .Directives}}//
{{end}}{{range .Directives}}{{.}}
{{end -}}
type {{.Name}} struct {
{{- range .Fields}}
{{comment .Doc}}	{{.Name}} {{.Type}}{{if .Tag}} {{tagLiteral .Tag}}{{end}}
{{- end}}
}
{{- end}}
{{with .Ctor}}{{$typ := .Type}}
var {{.CommandVar}} = ask.Command{
{{- with .Command}}
{{- if .Name}}
	Name: {{quote .Name}},
{{- end}}
{{- if .Version}}
	Version: {{quote .Version}},
{{- end}}
{{- if .About}}
	About: {{quote .About}},
{{- end}}
{{- if .Examples}}
	Examples: []string{
{{- range .Examples}}
		{{quote .}},
{{- end}}
	},
{{- end}}
{{- end}}
}

// {{.Func}} parses os.Args into a {{.Type}}, prompting on the terminal for
// required values that were not given. It exits the program on failure.
func {{.Func}}() {{.Type}} {
	v, err := {{.ArgsFunc}}(context.Background(), os.Args[1:], ask.Terminal())
	if err != nil {
		ask.Exit({{.CommandVar}}, err)
	}
	return v
}

// {{.ArgsFunc}} parses args into a {{.Type}} and asks p for required values
// that were not given.
func {{.ArgsFunc}}(ctx context.Context, args []string, p ask.Prompter) ({{.Type}}, error) {
	opts, err := ask.ParseArgs[{{.Shadow}}](args, {{.CommandVar}})
	if err != nil {
		return {{$typ}}{}, err
	}
	var out {{.Type}}
{{- range .Steps}}
{{- if .Optional}}
	out.{{.Field}} = opts.{{.Field}}
{{- else}}
	if out.{{.Field}}, err = ask.Resolve(ctx, p, opts.{{.Field}}, {{quote .Prompt}}); err != nil {
		return {{$typ}}{}, err
	}
{{- end}}
{{- end}}
	return out, nil
}
{{end}}
{{- end}}
`

// comment renders lines as a // comment block, one line each.
func comment(lines []string) string {
	var b strings.Builder
	for _, l := range lines {
		if l == "" {
			b.WriteString("//\n")
			continue
		}
		b.WriteString("// ")
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// tagLiteral returns tag as a Go string literal, raw when possible.
func tagLiteral(tag string) string {
	if strings.ContainsRune(tag, '`') {
		return strconv.Quote(tag)
	}
	return "`" + tag + "`"
}

// render executes the file template and formats the result.
func render(data fileData) ([]byte, error) {
	data.Marker = GeneratedMarker
	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), fmt.Errorf("format generated code: %w", err)
	}
	return src, nil
}
