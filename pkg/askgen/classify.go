// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package askgen

import (
	"go/ast"
	"reflect"
)

// FieldClass says whether a field has to be filled in before construction
// finishes.
type FieldClass int

const (
	// Required fields are taken from the arguments when present and
	// prompted for otherwise.
	Required FieldClass = iota
	// Optional fields keep whatever the arguments produced, including
	// nil or false.
	Optional
)

func (c FieldClass) String() string {
	switch c {
	case Required:
		return "required"
	case Optional:
		return "optional"
	default:
		return "unknown"
	}
}

const (
	boolTypeName    = "bool"
	promptKey       = "prompt"
	promptFmtPrefix = "Enter "
)

// Classify returns Optional for a pointer type or the predeclared bool and
// Required for anything else. Only the syntax is consulted: named types
// whose underlying type is bool or a pointer are Required.
func Classify(expr ast.Expr) FieldClass {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return Optional
	case *ast.Ident:
		if t.Name == boolTypeName {
			return Optional
		}
	}
	return Required
}

// ResolvePrompt returns the value of the field's first prompt tag, or
// "Enter <name>" when there is none. The value is used exactly as written.
func ResolvePrompt(f Field) string {
	if v, ok := reflect.StructTag(f.Tag).Lookup(promptKey); ok {
		return v
	}
	return promptFmtPrefix + f.Name
}
