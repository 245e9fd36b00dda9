package parser

import "github.com/pacer/skiff/internal/script/lexer"

// declaration parses: varDecl | funcDecl | statement.
func (p *Parser) declaration() (AstNode, *ParseError) {
	p.incRecursionDepth()
	defer p.decRecursionDepth()

	if err := p.checkRecursionStatus(); err != nil {
		return nil, err
	}

	switch {
	case p.match(lexer.KeywordVar):
		return p.varDeclaration()
	case p.match(lexer.KeywordFunction):
		return p.functionDeclaration()
	}

	return p.statement()
}

// varDeclaration parses "var IDENT ('=' expression)? ';'" with the 'var'
// keyword already consumed.
func (p *Parser) varDeclaration() (AstNode, *ParseError) {
	keyword := p.previous()

	name, err := p.consume(lexer.Identifier, "variable name after 'var'")
	if err != nil {
		return nil, err
	}

	declaration := &VariableDeclaration{
		Name: &Identifier{Name: string(name.Value), rng: name.Range},
		rng:  lexer.Range{Start: keyword.Range.Start},
	}

	if p.match(lexer.Equal) {
		init, err := p.expression()
		if err != nil {
			return nil, err
		}

		declaration.Init = init
	}

	semicolon, err := p.consume(lexer.Semicolon, "';' after variable declaration")
	if err != nil {
		return nil, err
	}

	declaration.rng.End = semicolon.Range.End

	return declaration, nil
}

// functionDeclaration parses "function IDENT '(' paramList? ')' block" with
// the 'function' keyword already consumed.
func (p *Parser) functionDeclaration() (AstNode, *ParseError) {
	keyword := p.previous()

	name, err := p.consume(lexer.Identifier, "function name after 'function'")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.LeftParen, "'(' after function name"); err != nil {
		return nil, err
	}

	var params []*Identifier

	if !p.check(lexer.RightParen) {
		for {
			param, err := p.consume(lexer.Identifier, "parameter name")
			if err != nil {
				return nil, err
			}

			params = append(params, &Identifier{
				Name: string(param.Value),
				rng:  param.Range,
			})

			if !p.match(lexer.Comma) {
				break
			}
		}
	}

	if _, err := p.consume(lexer.RightParen, "')' after parameters"); err != nil {
		return nil, err
	}

	opening, err := p.consume(lexer.LeftBrace, "'{' before function body")
	if err != nil {
		return nil, err
	}

	body, err := p.block(opening)
	if err != nil {
		return nil, err
	}

	declaration := &FunctionDeclaration{
		Name:   &Identifier{Name: string(name.Value), rng: name.Range},
		Params: params,
		Body:   body,
		rng:    lexer.Range{Start: keyword.Range.Start, End: body.rng.End},
	}

	return declaration, nil
}

// statement parses: block | ifStmt | whileStmt | returnStmt | exprStmt.
func (p *Parser) statement() (AstNode, *ParseError) {
	p.incRecursionDepth()
	defer p.decRecursionDepth()

	if err := p.checkRecursionStatus(); err != nil {
		return nil, err
	}

	switch {
	case p.match(lexer.LeftBrace):
		return p.block(p.previous())
	case p.match(lexer.KeywordIf):
		return p.ifStatement()
	case p.match(lexer.KeywordWhile):
		return p.whileStatement()
	case p.match(lexer.KeywordReturn):
		return p.returnStatement()
	}

	return p.expressionStatement()
}

// block parses declarations until the matching '}'. Errors inside the block
// recover at statement boundaries, so one bad statement does not discard
// its siblings.
func (p *Parser) block(opening *lexer.Token) (*BlockStatement, *ParseError) {
	blockNode := &BlockStatement{rng: lexer.Range{Start: opening.Range.Start}}

	for !p.check(lexer.RightBrace) && !p.atEnd() {
		statement := p.declarationRecover()
		if statement != nil {
			blockNode.Body = append(blockNode.Body, statement)
		}
	}

	closing, err := p.consume(lexer.RightBrace, "'}' after block")
	if err != nil {
		return nil, err
	}

	blockNode.rng.End = closing.Range.End

	return blockNode, nil
}

func (p *Parser) ifStatement() (AstNode, *ParseError) {
	keyword := p.previous()

	if _, err := p.consume(lexer.LeftParen, "'(' after 'if'"); err != nil {
		return nil, err
	}

	cond, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.RightParen, "')' after condition"); err != nil {
		return nil, err
	}

	then, err := p.statement()
	if err != nil {
		return nil, err
	}

	node := &IfStatement{
		Cond: cond,
		Then: then,
		rng:  lexer.Range{Start: keyword.Range.Start, End: then.Range().End},
	}

	if p.match(lexer.KeywordElse) {
		elseBranch, err := p.statement()
		if err != nil {
			return nil, err
		}

		node.Else = elseBranch
		node.rng.End = elseBranch.Range().End
	}

	return node, nil
}

func (p *Parser) whileStatement() (AstNode, *ParseError) {
	keyword := p.previous()

	if _, err := p.consume(lexer.LeftParen, "'(' after 'while'"); err != nil {
		return nil, err
	}

	cond, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.RightParen, "')' after condition"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	node := &WhileStatement{
		Cond: cond,
		Body: body,
		rng:  lexer.Range{Start: keyword.Range.Start, End: body.Range().End},
	}

	return node, nil
}

func (p *Parser) returnStatement() (AstNode, *ParseError) {
	keyword := p.previous()
	node := &ReturnStatement{rng: lexer.Range{Start: keyword.Range.Start}}

	if !p.check(lexer.Semicolon) {
		value, err := p.expression()
		if err != nil {
			return nil, err
		}

		node.Value = value
	}

	semicolon, err := p.consume(lexer.Semicolon, "';' after return statement")
	if err != nil {
		return nil, err
	}

	node.rng.End = semicolon.Range.End

	return node, nil
}

func (p *Parser) expressionStatement() (AstNode, *ParseError) {
	expression, err := p.expression()
	if err != nil {
		return nil, err
	}

	semicolon, err := p.consume(lexer.Semicolon, "';' after expression")
	if err != nil {
		return nil, err
	}

	node := &ExpressionStatement{
		Expression: expression,
		rng:        lexer.Range{Start: expression.Range().Start, End: semicolon.Range.End},
	}

	return node, nil
}
