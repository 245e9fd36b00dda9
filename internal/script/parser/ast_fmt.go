package parser

import (
	"fmt"
	"strings"

	"github.com/pacer/skiff/internal/script/lexer"
)

var kindNames = map[Kind]string{
	KindProgram:              "Program",
	KindVariableDeclaration:  "VariableDeclaration",
	KindFunctionDeclaration:  "FunctionDeclaration",
	KindBlockStatement:       "BlockStatement",
	KindIfStatement:          "IfStatement",
	KindWhileStatement:       "WhileStatement",
	KindReturnStatement:      "ReturnStatement",
	KindExpressionStatement:  "ExpressionStatement",
	KindNumberLiteral:        "NumberLiteral",
	KindStringLiteral:        "StringLiteral",
	KindBooleanLiteral:       "BooleanLiteral",
	KindNullLiteral:          "NullLiteral",
	KindThisExpression:       "ThisExpression",
	KindIdentifier:           "Identifier",
	KindUnaryExpression:      "UnaryExpression",
	KindBinaryExpression:     "BinaryExpression",
	KindLogicalExpression:    "LogicalExpression",
	KindAssignmentExpression: "AssignmentExpression",
	KindTernaryExpression:    "TernaryExpression",
	KindCallExpression:       "CallExpression",
}

func (k Kind) String() string {
	if name, found := kindNames[k]; found {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

func (e ParseError) String() string {
	to := `""`
	err := `""`

	if e.Err != nil {
		err = strings.ReplaceAll(e.Err.Error(), `"`, "'")
	}

	if e.Token != nil {
		to = fmt.Sprint(*e.Token)
	}

	return fmt.Sprintf(`{"Err": "%s", "Range": %s, "Token": %s}`, err, e.Range, to)
}

func formatNode(node AstNode) string {
	if node == nil {
		return `""`
	}

	return node.String()
}

func (p Program) String() string {
	return fmt.Sprintf(
		`{"Kind": "%s", "Range": %s, "Body": %s}`,
		KindProgram,
		p.rng,
		lexer.PrettyFormater(p.Body),
	)
}

func (v VariableDeclaration) String() string {
	return fmt.Sprintf(
		`{"Kind": "%s", "Range": %s, "Name": %s, "Init": %s}`,
		KindVariableDeclaration,
		v.rng,
		formatNode(v.Name),
		formatNode(v.Init),
	)
}

func (f FunctionDeclaration) String() string {
	return fmt.Sprintf(
		`{"Kind": "%s", "Range": %s, "Name": %s, "Params": %s, "Body": %s}`,
		KindFunctionDeclaration,
		f.rng,
		formatNode(f.Name),
		lexer.PrettyFormater(f.Params),
		formatNode(f.Body),
	)
}

func (b BlockStatement) String() string {
	return fmt.Sprintf(
		`{"Kind": "%s", "Range": %s, "Body": %s}`,
		KindBlockStatement,
		b.rng,
		lexer.PrettyFormater(b.Body),
	)
}

func (i IfStatement) String() string {
	return fmt.Sprintf(
		`{"Kind": "%s", "Range": %s, "Cond": %s, "Then": %s, "Else": %s}`,
		KindIfStatement,
		i.rng,
		formatNode(i.Cond),
		formatNode(i.Then),
		formatNode(i.Else),
	)
}

func (w WhileStatement) String() string {
	return fmt.Sprintf(
		`{"Kind": "%s", "Range": %s, "Cond": %s, "Body": %s}`,
		KindWhileStatement,
		w.rng,
		formatNode(w.Cond),
		formatNode(w.Body),
	)
}

func (r ReturnStatement) String() string {
	return fmt.Sprintf(
		`{"Kind": "%s", "Range": %s, "Value": %s}`,
		KindReturnStatement,
		r.rng,
		formatNode(r.Value),
	)
}

func (e ExpressionStatement) String() string {
	return fmt.Sprintf(
		`{"Kind": "%s", "Range": %s, "Expression": %s}`,
		KindExpressionStatement,
		e.rng,
		formatNode(e.Expression),
	)
}

func (n NumberLiteral) String() string {
	return fmt.Sprintf(
		`{"Kind": "%s", "Range": %s, "Value": %g}`,
		KindNumberLiteral,
		n.rng,
		n.Value,
	)
}

func (s StringLiteral) String() string {
	return fmt.Sprintf(
		`{"Kind": "%s", "Range": %s, "Value": %q}`,
		KindStringLiteral,
		s.rng,
		s.Value,
	)
}

func (b BooleanLiteral) String() string {
	return fmt.Sprintf(
		`{"Kind": "%s", "Range": %s, "Value": %t}`,
		KindBooleanLiteral,
		b.rng,
		b.Value,
	)
}

func (n NullLiteral) String() string {
	return fmt.Sprintf(`{"Kind": "%s", "Range": %s}`, KindNullLiteral, n.rng)
}

func (t ThisExpression) String() string {
	return fmt.Sprintf(`{"Kind": "%s", "Range": %s}`, KindThisExpression, t.rng)
}

func (i Identifier) String() string {
	return fmt.Sprintf(
		`{"Kind": "%s", "Range": %s, "Name": %q}`,
		KindIdentifier,
		i.rng,
		i.Name,
	)
}

func (u UnaryExpression) String() string {
	return fmt.Sprintf(
		`{"Kind": "%s", "Range": %s, "Operator": %q, "Operand": %s}`,
		KindUnaryExpression,
		u.rng,
		u.Operator,
		formatNode(u.Operand),
	)
}

func (b BinaryExpression) String() string {
	return fmt.Sprintf(
		`{"Kind": "%s", "Range": %s, "Operator": %q, "Left": %s, "Right": %s}`,
		KindBinaryExpression,
		b.rng,
		b.Operator,
		formatNode(b.Left),
		formatNode(b.Right),
	)
}

func (l LogicalExpression) String() string {
	return fmt.Sprintf(
		`{"Kind": "%s", "Range": %s, "Operator": %q, "Left": %s, "Right": %s}`,
		KindLogicalExpression,
		l.rng,
		l.Operator,
		formatNode(l.Left),
		formatNode(l.Right),
	)
}

func (a AssignmentExpression) String() string {
	return fmt.Sprintf(
		`{"Kind": "%s", "Range": %s, "Operator": %q, "Left": %s, "Right": %s}`,
		KindAssignmentExpression,
		a.rng,
		a.Operator,
		formatNode(a.Left),
		formatNode(a.Right),
	)
}

func (t TernaryExpression) String() string {
	return fmt.Sprintf(
		`{"Kind": "%s", "Range": %s, "Cond": %s, "Then": %s, "Else": %s}`,
		KindTernaryExpression,
		t.rng,
		formatNode(t.Cond),
		formatNode(t.Then),
		formatNode(t.Else),
	)
}

func (c CallExpression) String() string {
	return fmt.Sprintf(
		`{"Kind": "%s", "Range": %s, "Callee": %s, "Arguments": %s}`,
		KindCallExpression,
		c.rng,
		formatNode(c.Callee),
		lexer.PrettyFormater(c.Arguments),
	)
}
