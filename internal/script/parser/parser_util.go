package parser

import (
	"fmt"

	"github.com/pacer/skiff/internal/script/lexer"
)

// peek never returns nil: the stream is guaranteed to end with 'Eof'.
func (p Parser) peek() *lexer.Token {
	index := p.indexCurrentToken

	if index >= p.sizeStream {
		index = p.sizeStream - 1
	}

	return &p.tokens[index]
}

func (p Parser) previous() *lexer.Token {
	index := p.indexCurrentToken - 1

	if index < 0 {
		index = 0
	}

	return &p.tokens[index]
}

func (p *Parser) advance() *lexer.Token {
	token := p.peek()

	if !p.atEnd() {
		p.indexCurrentToken++
	}

	return token
}

func (p Parser) atEnd() bool {
	return p.peek().ID == lexer.Eof
}

func (p Parser) check(kind lexer.Kind) bool {
	return p.peek().ID == kind
}

// match advances and reports true iff the next token is one of kinds.
func (p *Parser) match(kinds ...lexer.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.indexCurrentToken++

			return true
		}
	}

	return false
}

// consume advances over the expected token kind, or fails with a parse
// error naming what was expected and what was found instead.
func (p *Parser) consume(kind lexer.Kind, description string) (*lexer.Token, *ParseError) {
	if p.check(kind) {
		return p.advance(), nil
	}

	return nil, p.unexpectedToken(description)
}

func (p *Parser) unexpectedToken(description string) *ParseError {
	found := p.peek()

	if found.ID == lexer.Eof {
		return NewParseError(
			found,
			fmt.Errorf("%w: expected %s", ErrUnexpectedEndOfInput, description),
		)
	}

	return NewParseError(
		found,
		fmt.Errorf("%w: expected %s, found %q", ErrUnexpectedToken, description, found.Value),
	)
}

func NewParseError(token *lexer.Token, err error) *ParseError {
	if token == nil {
		panic("token cannot be nil while creating parse error")
	}

	e := &ParseError{
		Err:   err,
		Range: token.Range,
		Token: token,
	}

	return e
}

func (p *Parser) incRecursionDepth() {
	p.currentRecursionDepth++
}

func (p *Parser) decRecursionDepth() {
	p.currentRecursionDepth--
}

func (p Parser) isRecursionMaxDepth() bool {
	return p.currentRecursionDepth >= p.maxRecursionDepth
}

func (p Parser) checkRecursionStatus() *ParseError {
	if p.isRecursionMaxDepth() {
		return NewParseError(p.peek(), ErrNestingTooDeep)
	}

	return nil
}
