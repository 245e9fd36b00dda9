// Package parser builds an abstract syntax tree from the token sequence
// produced by the lexer, by recursive descent with explicit operator
// precedence levels.
package parser

import (
	"errors"

	"github.com/pacer/skiff/internal/script/lexer"
)

// Failure modes of the parser. Every ParseError wraps one of these.
var (
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	ErrNestingTooDeep       = errors.New("expression nesting too deep")
)

type ParseError struct {
	Err   error
	Range lexer.Range
	Token *lexer.Token
}

func (p ParseError) GetError() string {
	return p.Err.Error()
}

func (p ParseError) GetRange() lexer.Range {
	return p.Range
}

func (p ParseError) Unwrap() error {
	return p.Err
}

// Parser holds a cursor over an immutable token sequence. No backtracking
// beyond single-token lookahead is ever needed by the grammar.
type Parser struct {
	tokens            []lexer.Token
	indexCurrentToken int
	sizeStream        int

	maxRecursionDepth     int
	currentRecursionDepth int

	errs []lexer.Error
}

func (p *Parser) Reset(tokens []lexer.Token) {
	// The cursor primitives rely on a final 'Eof' token as a backstop so
	// that peek never runs off the end of the stream.
	if size := len(tokens); size == 0 || tokens[size-1].ID != lexer.Eof {
		tokens = append(tokens, lexer.Token{ID: lexer.Eof})
	}

	p.tokens = tokens
	p.sizeStream = len(tokens)
	p.indexCurrentToken = 0

	p.maxRecursionDepth = maxRecursionDepth
	p.currentRecursionDepth = 0
	p.errs = nil
}

// Parse builds the Program AST for a finite token sequence and returns the
// syntax errors found along the way. The returned tree is never nil; when
// errs is non-empty it is a partial tree meant for tooling, and errs[0] is
// the error a fail-fast caller would have stopped at.
func Parse(tokens []lexer.Token) (*Program, []lexer.Error) {
	parser := Parser{}
	parser.Reset(tokens)

	program := parser.parseProgram()

	return program, parser.errs
}

func (p *Parser) parseProgram() *Program {
	program := &Program{}
	program.rng.Start = p.peek().Range.Start

	for !p.atEnd() {
		statement := p.declarationRecover()
		if statement != nil {
			program.Body = append(program.Body, statement)
		}
	}

	program.rng.End = p.peek().Range.End
	if size := len(program.Body); size > 0 {
		program.rng.End = program.Body[size-1].Range().End
	}

	return program
}

// declarationRecover parses one declaration; on failure it records the
// error and skips ahead to the next statement boundary so that a single
// mistake does not hide the rest of the file (panic-mode recovery).
func (p *Parser) declarationRecover() AstNode {
	statement, err := p.declaration()
	if err != nil {
		p.errs = append(p.errs, err)
		p.synchronize()

		return nil
	}

	return statement
}

// synchronize discards tokens until a statement boundary: right past a
// semicolon, or right before a token that can start a statement.
func (p *Parser) synchronize() {
	p.advance()

	for !p.atEnd() {
		if p.previous().ID == lexer.Semicolon {
			return
		}

		switch p.peek().ID {
		case lexer.KeywordVar, lexer.KeywordFunction, lexer.KeywordIf,
			lexer.KeywordWhile, lexer.KeywordReturn, lexer.KeywordFor,
			lexer.KeywordClass, lexer.LeftBrace, lexer.RightBrace:
			return
		}

		p.advance()
	}
}
