// Package codegen provides code generation helpers and constants.
package codegen

import (
	"fmt"
	"go/token"
	"go/types"
	"strings"
	"unicode"
)

// Variable names used in generated code
const (
	InputName   = "input"
	CurrentName = "current"
	NextName    = "next"
	AliveName   = "alive"
	SymbolName  = "symbol"
	TargetName  = "to"
)

// Suffixes of the package-level tables emitted for a matcher.
const (
	NumStatesSuffix = "NumStates"
	AcceptSuffix    = "Accept"
	StartSuffix     = "Start"
	EdgesSuffix     = "Edges"
	ClosuresSuffix  = "Closures"
	EdgeTypeSuffix  = "Edge"
)

// TableName returns the unexported identifier of a matcher table,
// e.g. TableName("AStarB", EdgesSuffix) == "aStarBEdges".
func TableName(name, suffix string) string {
	return LowerFirst(name) + suffix
}

// CompiledName returns the name of the ready-to-use matcher variable.
func CompiledName(name string) string {
	return fmt.Sprintf("Compiled%s", name)
}

// TestFuncName returns the name of a generated test function for method.
func TestFuncName(name, method string) string {
	return fmt.Sprintf("Test%s%s", UpperFirst(name), method)
}

// IsIdentifier reports whether s is a valid Go identifier.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r != '_' && !unicode.IsLetter(r) && (i == 0 || !unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}

// IsReserved reports whether declaring s at package level breaks the generated files:
// keywords, predeclared identifiers, and the "testing" import of the test file.
func IsReserved(s string) bool {
	return token.IsKeyword(s) || types.Universe.Lookup(s) != nil || s == "testing"
}

// TestFileName derives the generated test file path from the output file path.
func TestFileName(outputFile string) string {
	return strings.TrimSuffix(outputFile, ".go") + "_test.go"
}

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}
