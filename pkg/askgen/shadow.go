// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package askgen

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ShadowSuffix is appended to the input type name to form the shadow type.
const ShadowSuffix = "Optionals"

// parserKeys are the struct tag keys understood by the argument parser.
// Only these are carried over to the shadow type.
var parserKeys = []string{"flag", "short", "help", "default", "port"}

// ShadowType is the parse target derived from a Decl: every Required field
// is wrapped in a pointer so that an absent flag stays distinguishable
// from a zero value.
type ShadowType struct {
	Name       string
	Doc        []string
	Directives []string
	Fields     []ShadowField
}

// ShadowField is one field of a ShadowType.
type ShadowField struct {
	Name string
	// Type is the Go source text of the field type.
	Type string
	// Tag is the struct tag without surrounding quotes, or "".
	Tag   string
	Doc   []string
	Class FieldClass
}

// Synthesize derives the shadow type from d. Field order, names and docs
// are preserved. The type doc starts with a line naming the shadow type,
// followed by the doc of d.
func Synthesize(d *Decl) *ShadowType {
	name := d.Name + ShadowSuffix
	doc := []string{fmt.Sprintf("%s is the command line of %s before missing values are prompted for.", name, d.Name)}
	if len(d.Doc) > 0 {
		doc = append(append(doc, ""), d.Doc...)
	}
	s := &ShadowType{
		Name:       name,
		Doc:        doc,
		Directives: d.Directives,
		Fields:     make([]ShadowField, 0, len(d.Fields)),
	}
	for _, f := range d.Fields {
		class := Classify(f.Type)
		typ := f.TypeText
		if class == Required {
			typ = "*" + typ
		}
		s.Fields = append(s.Fields, ShadowField{
			Name:  f.Name,
			Type:  typ,
			Tag:   shadowTag(f),
			Doc:   f.Doc,
			Class: class,
		})
	}
	return s
}

// shadowTag keeps the parser keys of f exactly as written and in source
// order, repeated keys included. A field without a help tag gets the first
// line of its doc comment as help text.
func shadowTag(f Field) string {
	var parts []string
	for _, e := range splitTag(f.Tag) {
		if slices.Contains(parserKeys, e.key) {
			parts = append(parts, e.text)
		}
	}
	hasHelp := false
	if f.Tags != nil {
		_, err := f.Tags.Get("help")
		hasHelp = err == nil
	}
	if !hasHelp && len(f.Doc) > 0 && f.Doc[0] != "" {
		parts = append(parts, "help:"+strconv.Quote(f.Doc[0]))
	}
	return strings.Join(parts, " ")
}

// tagElem is one key:"value" element of a struct tag.
type tagElem struct {
	key string
	// text is the element as written, quotes and escapes included.
	text string
}

// splitTag splits a struct tag into its elements using the scanning rules
// of reflect.StructTag.Lookup. It stops at the first malformed element.
func splitTag(tag string) []tagElem {
	var out []tagElem
	for tag != "" {
		tag = strings.TrimLeft(tag, " ")
		if tag == "" {
			break
		}
		i := 0
		for i < len(tag) && tag[i] > ' ' && tag[i] != ':' && tag[i] != '"' && tag[i] != 0x7f {
			i++
		}
		if i == 0 || i+1 >= len(tag) || tag[i] != ':' || tag[i+1] != '"' {
			break
		}
		j := i + 2
		for j < len(tag) && tag[j] != '"' {
			if tag[j] == '\\' {
				j++
			}
			j++
		}
		if j >= len(tag) {
			break
		}
		out = append(out, tagElem{key: tag[:i], text: tag[:j+1]})
		tag = tag[j+1:]
	}
	return out
}
