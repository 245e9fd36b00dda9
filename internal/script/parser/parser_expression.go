package parser

import (
	"fmt"
	"strconv"

	"github.com/pacer/skiff/internal/script/lexer"
)

// binaryLevels orders the binary operators from loosest to tightest
// binding. Each level folds left-associatively; a run of same-level
// operators is consumed by a single loop, never by recursion.
var binaryLevels = []struct {
	operators []lexer.Kind
	logical   bool
}{
	{operators: []lexer.Kind{lexer.PipePipe}, logical: true},
	{operators: []lexer.Kind{lexer.AmpersandAmpersand}, logical: true},
	{operators: []lexer.Kind{lexer.EqualEqual, lexer.BangEqual}},
	{operators: []lexer.Kind{lexer.Less, lexer.Greater, lexer.LessEqual, lexer.GreaterEqual}},
	{operators: []lexer.Kind{lexer.Plus, lexer.Minus}},
	{operators: []lexer.Kind{lexer.Star, lexer.Slash}},
}

// expression parses at the loosest precedence level.
func (p *Parser) expression() (AstNode, *ParseError) {
	p.incRecursionDepth()
	defer p.decRecursionDepth()

	if err := p.checkRecursionStatus(); err != nil {
		return nil, err
	}

	return p.assignment()
}

// assignment is right-associative: the right operand recurses back into
// assignment instead of folding a loop.
func (p *Parser) assignment() (AstNode, *ParseError) {
	left, err := p.ternary()
	if err != nil {
		return nil, err
	}

	if p.match(lexer.Equal, lexer.PlusEqual, lexer.MinusEqual, lexer.StarEqual, lexer.SlashEqual) {
		operator := p.previous()

		right, err := p.assignment()
		if err != nil {
			return nil, err
		}

		node := &AssignmentExpression{
			Operator: string(operator.Value),
			Left:     left,
			Right:    right,
			rng:      lexer.Range{Start: left.Range().Start, End: right.Range().End},
		}

		return node, nil
	}

	return left, nil
}

func (p *Parser) ternary() (AstNode, *ParseError) {
	cond, err := p.binaryExpression(0)
	if err != nil {
		return nil, err
	}

	if !p.match(lexer.Question) {
		return cond, nil
	}

	then, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.Colon, "':' in ternary expression"); err != nil {
		return nil, err
	}

	elseBranch, err := p.expression()
	if err != nil {
		return nil, err
	}

	node := &TernaryExpression{
		Cond: cond,
		Then: then,
		Else: elseBranch,
		rng:  lexer.Range{Start: cond.Range().Start, End: elseBranch.Range().End},
	}

	return node, nil
}

func (p *Parser) binaryExpression(level int) (AstNode, *ParseError) {
	if level >= len(binaryLevels) {
		return p.unary()
	}

	left, err := p.binaryExpression(level + 1)
	if err != nil {
		return nil, err
	}

	for p.match(binaryLevels[level].operators...) {
		operator := p.previous()

		right, err := p.binaryExpression(level + 1)
		if err != nil {
			return nil, err
		}

		reach := lexer.Range{Start: left.Range().Start, End: right.Range().End}

		if binaryLevels[level].logical {
			left = &LogicalExpression{
				Operator: string(operator.Value),
				Left:     left,
				Right:    right,
				rng:      reach,
			}
		} else {
			left = &BinaryExpression{
				Operator: string(operator.Value),
				Left:     left,
				Right:    right,
				rng:      reach,
			}
		}
	}

	return left, nil
}

func (p *Parser) unary() (AstNode, *ParseError) {
	if p.match(lexer.Bang, lexer.Minus) {
		operator := p.previous()

		p.incRecursionDepth()
		defer p.decRecursionDepth()

		if err := p.checkRecursionStatus(); err != nil {
			return nil, err
		}

		operand, err := p.unary()
		if err != nil {
			return nil, err
		}

		node := &UnaryExpression{
			Operator: string(operator.Value),
			Operand:  operand,
			rng:      lexer.Range{Start: operator.Range.Start, End: operand.Range().End},
		}

		return node, nil
	}

	return p.call()
}

// call folds postfix argument lists, so "f(a)(b)" nests: the callee of the
// outer call is the inner call.
func (p *Parser) call() (AstNode, *ParseError) {
	expression, err := p.primary()
	if err != nil {
		return nil, err
	}

	for p.match(lexer.LeftParen) {
		arguments, closing, err := p.arguments()
		if err != nil {
			return nil, err
		}

		expression = &CallExpression{
			Callee:    expression,
			Arguments: arguments,
			rng:       lexer.Range{Start: expression.Range().Start, End: closing.Range.End},
		}
	}

	return expression, nil
}

func (p *Parser) arguments() ([]AstNode, *lexer.Token, *ParseError) {
	var arguments []AstNode

	if !p.check(lexer.RightParen) {
		for {
			argument, err := p.expression()
			if err != nil {
				return nil, nil, err
			}

			arguments = append(arguments, argument)

			if !p.match(lexer.Comma) {
				break
			}
		}
	}

	closing, err := p.consume(lexer.RightParen, "')' after arguments")
	if err != nil {
		return nil, nil, err
	}

	return arguments, closing, nil
}

// primary parses the leaves of the expression grammar. An unexpected token
// is a structured parse error, never a silently ignored branch.
func (p *Parser) primary() (AstNode, *ParseError) {
	token := p.peek()

	switch {
	case p.match(lexer.Number):
		value, err := strconv.ParseFloat(string(token.Value), 64)
		if err != nil {
			return nil, NewParseError(
				token,
				fmt.Errorf("%w: invalid number literal %q", ErrUnexpectedToken, token.Value),
			)
		}

		return &NumberLiteral{Value: value, rng: token.Range}, nil

	case p.match(lexer.StringLit):
		return &StringLiteral{Value: string(token.Value), rng: token.Range}, nil

	case p.match(lexer.KeywordTrue):
		return &BooleanLiteral{Value: true, rng: token.Range}, nil

	case p.match(lexer.KeywordFalse):
		return &BooleanLiteral{Value: false, rng: token.Range}, nil

	case p.match(lexer.KeywordNull):
		return &NullLiteral{rng: token.Range}, nil

	case p.match(lexer.KeywordThis):
		return &ThisExpression{rng: token.Range}, nil

	case p.match(lexer.Identifier):
		return &Identifier{Name: string(token.Value), rng: token.Range}, nil

	case p.match(lexer.LeftParen):
		p.incRecursionDepth()
		defer p.decRecursionDepth()

		if err := p.checkRecursionStatus(); err != nil {
			return nil, err
		}

		expression, err := p.expression()
		if err != nil {
			return nil, err
		}

		if _, err := p.consume(lexer.RightParen, "')' after expression"); err != nil {
			return nil, err
		}

		return expression, nil
	}

	return nil, p.unexpectedToken("an expression")
}
