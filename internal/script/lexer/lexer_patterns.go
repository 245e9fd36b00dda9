package lexer

import "regexp"

// compiledPatterns holds all pre-compiled regex patterns used during
// scanning. These are initialized once at package load time to avoid
// repeated compilation.
var compiledPatterns struct {
	whitespace   *regexp.Regexp
	lineComment  *regexp.Regexp
	blockComment *regexp.Regexp
	number       *regexp.Regexp
	identifier   *regexp.Regexp
	doubleQuoted *regexp.Regexp
	singleQuoted *regexp.Regexp
}

func init() {
	compiledPatterns.whitespace = regexp.MustCompile(`\s+`)
	compiledPatterns.lineComment = regexp.MustCompile(`//[^\n]*\n?`)
	compiledPatterns.blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	compiledPatterns.number = regexp.MustCompile(`\d+(?:[.]\d+)?`)
	compiledPatterns.identifier = regexp.MustCompile(`[a-zA-Z]\w*`)
	compiledPatterns.doubleQuoted = regexp.MustCompile(`(?s)"[^"]*"`)
	compiledPatterns.singleQuoted = regexp.MustCompile(`(?s)'[^']*'`)
}

// operatorPattern maps a literal operator lexeme to its token kind.
type operatorPattern struct {
	Lexeme []byte
	ID     Kind
}

// operatorPatterns is ordered longest lexeme first so that scanning is
// maximal munch ('>=' always wins over '>').
var operatorPatterns = []operatorPattern{
	{[]byte("<<="), LessLessEqual},
	{[]byte(">>="), GreaterGreaterEqual},
	{[]byte("==="), EqualEqualEqual},
	{[]byte("!=="), BangEqualEqual},
	{[]byte("=="), EqualEqual},
	{[]byte("!="), BangEqual},
	{[]byte("<="), LessEqual},
	{[]byte(">="), GreaterEqual},
	{[]byte("<<"), LessLess},
	{[]byte(">>"), GreaterGreater},
	{[]byte("&&"), AmpersandAmpersand},
	{[]byte("||"), PipePipe},
	{[]byte("++"), PlusPlus},
	{[]byte("--"), MinusMinus},
	{[]byte("+="), PlusEqual},
	{[]byte("-="), MinusEqual},
	{[]byte("*="), StarEqual},
	{[]byte("/="), SlashEqual},
	{[]byte("+"), Plus},
	{[]byte("-"), Minus},
	{[]byte("*"), Star},
	{[]byte("/"), Slash},
	{[]byte("="), Equal},
	{[]byte("!"), Bang},
	{[]byte("<"), Less},
	{[]byte(">"), Greater},
	{[]byte("&"), Ampersand},
	{[]byte("|"), Pipe},
	{[]byte("^"), Caret},
	{[]byte("~"), Tilde},
	{[]byte("("), LeftParen},
	{[]byte(")"), RightParen},
	{[]byte("{"), LeftBrace},
	{[]byte("}"), RightBrace},
	{[]byte("["), LeftBracket},
	{[]byte("]"), RightBracket},
	{[]byte(","), Comma},
	{[]byte("."), Dot},
	{[]byte(";"), Semicolon},
	{[]byte(":"), Colon},
	{[]byte("?"), Question},
}
