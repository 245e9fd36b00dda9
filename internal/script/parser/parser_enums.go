package parser

// -----------
// Parser Kind
// -----------

// maxRecursionDepth limits parser recursion so that pathological nesting
// (deep parentheses, long right-associative chains) fails with a structured
// error instead of exhausting the goroutine stack.
const maxRecursionDepth = 200

const (
	KindProgram Kind = iota

	KindVariableDeclaration
	KindFunctionDeclaration
	KindBlockStatement
	KindIfStatement
	KindWhileStatement
	KindReturnStatement
	KindExpressionStatement

	KindNumberLiteral
	KindStringLiteral
	KindBooleanLiteral
	KindNullLiteral
	KindThisExpression
	KindIdentifier

	KindUnaryExpression
	KindBinaryExpression
	KindLogicalExpression
	KindAssignmentExpression
	KindTernaryExpression
	KindCallExpression
)
