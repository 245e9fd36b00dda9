// Package script ties the lexer and parser into a single source to AST
// pipeline for one Skiff compilation unit.
package script

import (
	"os"

	"github.com/pacer/skiff/internal/script/lexer"
	"github.com/pacer/skiff/internal/script/parser"
)

// Error is the common interface of lexical and syntax errors.
type Error = lexer.Error

// Parse converts an in-memory compilation unit into its Program AST.
// The returned tree is never nil; when errs is non-empty the tree is
// partial and only suitable for tooling, and errs holds lexical errors
// first, in source order, followed by syntax errors.
func Parse(content []byte) (*parser.Program, []Error) {
	tokens, errs := lexer.Tokenize(content)

	program, parseErrs := parser.Parse(tokens)
	errs = append(errs, parseErrs...)

	return program, errs
}

// ParseFile reads path and parses its contents. The returned error only
// reports I/O failures; lexical and syntax errors come back through errs.
func ParseFile(path string) (*parser.Program, []Error, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	program, errs := Parse(content)

	return program, errs, nil
}
