package parser

import "github.com/pacer/skiff/internal/script/lexer"

// AstNode is implemented by every syntax tree node. Nodes are created once
// during parsing and immutable afterwards; each composite node exclusively
// owns its children.
type AstNode interface {
	Kind() Kind
	Range() lexer.Range
	String() string
}

type Kind int

// Program is the root node of one compilation unit.
type Program struct {
	Body []AstNode
	rng  lexer.Range
}

func (p *Program) Kind() Kind         { return KindProgram }
func (p *Program) Range() lexer.Range { return p.rng }

type VariableDeclaration struct {
	Name *Identifier
	Init AstNode // nil when the declaration has no initializer
	rng  lexer.Range
}

func (v *VariableDeclaration) Kind() Kind         { return KindVariableDeclaration }
func (v *VariableDeclaration) Range() lexer.Range { return v.rng }

type FunctionDeclaration struct {
	Name   *Identifier
	Params []*Identifier
	Body   *BlockStatement
	rng    lexer.Range
}

func (f *FunctionDeclaration) Kind() Kind         { return KindFunctionDeclaration }
func (f *FunctionDeclaration) Range() lexer.Range { return f.rng }

type BlockStatement struct {
	Body []AstNode
	rng  lexer.Range
}

func (b *BlockStatement) Kind() Kind         { return KindBlockStatement }
func (b *BlockStatement) Range() lexer.Range { return b.rng }

type IfStatement struct {
	Cond AstNode
	Then AstNode
	Else AstNode // nil when there is no else branch
	rng  lexer.Range
}

func (i *IfStatement) Kind() Kind         { return KindIfStatement }
func (i *IfStatement) Range() lexer.Range { return i.rng }

type WhileStatement struct {
	Cond AstNode
	Body AstNode
	rng  lexer.Range
}

func (w *WhileStatement) Kind() Kind         { return KindWhileStatement }
func (w *WhileStatement) Range() lexer.Range { return w.rng }

type ReturnStatement struct {
	Value AstNode // nil for a bare 'return;'
	rng   lexer.Range
}

func (r *ReturnStatement) Kind() Kind         { return KindReturnStatement }
func (r *ReturnStatement) Range() lexer.Range { return r.rng }

type ExpressionStatement struct {
	Expression AstNode
	rng        lexer.Range
}

func (e *ExpressionStatement) Kind() Kind         { return KindExpressionStatement }
func (e *ExpressionStatement) Range() lexer.Range { return e.rng }

type NumberLiteral struct {
	Value float64
	rng   lexer.Range
}

func (n *NumberLiteral) Kind() Kind         { return KindNumberLiteral }
func (n *NumberLiteral) Range() lexer.Range { return n.rng }

type StringLiteral struct {
	Value string
	rng   lexer.Range
}

func (s *StringLiteral) Kind() Kind         { return KindStringLiteral }
func (s *StringLiteral) Range() lexer.Range { return s.rng }

// BooleanLiteral is a dedicated node: 'true' and 'false' never fold to
// numeric placeholders.
type BooleanLiteral struct {
	Value bool
	rng   lexer.Range
}

func (b *BooleanLiteral) Kind() Kind         { return KindBooleanLiteral }
func (b *BooleanLiteral) Range() lexer.Range { return b.rng }

type NullLiteral struct {
	rng lexer.Range
}

func (n *NullLiteral) Kind() Kind         { return KindNullLiteral }
func (n *NullLiteral) Range() lexer.Range { return n.rng }

type ThisExpression struct {
	rng lexer.Range
}

func (t *ThisExpression) Kind() Kind         { return KindThisExpression }
func (t *ThisExpression) Range() lexer.Range { return t.rng }

type Identifier struct {
	Name string
	rng  lexer.Range
}

func (i *Identifier) Kind() Kind         { return KindIdentifier }
func (i *Identifier) Range() lexer.Range { return i.rng }

type UnaryExpression struct {
	Operator string
	Operand  AstNode
	rng      lexer.Range
}

func (u *UnaryExpression) Kind() Kind         { return KindUnaryExpression }
func (u *UnaryExpression) Range() lexer.Range { return u.rng }

type BinaryExpression struct {
	Operator string
	Left     AstNode
	Right    AstNode
	rng      lexer.Range
}

func (b *BinaryExpression) Kind() Kind         { return KindBinaryExpression }
func (b *BinaryExpression) Range() lexer.Range { return b.rng }

// LogicalExpression records '&&' and '||' operands; short-circuit semantics
// are an evaluation concern, not a parsing one.
type LogicalExpression struct {
	Operator string
	Left     AstNode
	Right    AstNode
	rng      lexer.Range
}

func (l *LogicalExpression) Kind() Kind         { return KindLogicalExpression }
func (l *LogicalExpression) Range() lexer.Range { return l.rng }

type AssignmentExpression struct {
	Operator string
	Left     AstNode
	Right    AstNode
	rng      lexer.Range
}

func (a *AssignmentExpression) Kind() Kind         { return KindAssignmentExpression }
func (a *AssignmentExpression) Range() lexer.Range { return a.rng }

type TernaryExpression struct {
	Cond AstNode
	Then AstNode
	Else AstNode
	rng  lexer.Range
}

func (t *TernaryExpression) Kind() Kind         { return KindTernaryExpression }
func (t *TernaryExpression) Range() lexer.Range { return t.rng }

type CallExpression struct {
	Callee    AstNode
	Arguments []AstNode
	rng       lexer.Range
}

func (c *CallExpression) Kind() Kind         { return KindCallExpression }
func (c *CallExpression) Range() lexer.Range { return c.rng }
