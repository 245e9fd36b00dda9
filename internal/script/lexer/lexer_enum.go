package lexer

// ----------
// Lexer Kind
// ----------

const (
	// Literals
	Number Kind = iota
	StringLit
	Identifier

	// Punctuation
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Comma
	Dot
	Semicolon
	Colon
	Question

	// Operators
	Plus
	PlusPlus
	PlusEqual
	Minus
	MinusMinus
	MinusEqual
	Star
	StarEqual
	Slash
	SlashEqual
	Bang
	BangEqual
	BangEqualEqual
	Equal
	EqualEqual
	EqualEqualEqual
	Less
	LessEqual
	LessLess
	LessLessEqual
	Greater
	GreaterEqual
	GreaterGreater
	GreaterGreaterEqual
	Ampersand
	AmpersandAmpersand
	Pipe
	PipePipe
	Caret
	Tilde

	// Keywords
	KeywordVar
	KeywordFunction
	KeywordReturn
	KeywordIf
	KeywordElse
	KeywordWhile
	KeywordFor
	KeywordBreak
	KeywordContinue
	KeywordClass
	KeywordNew
	KeywordThis
	KeywordNull
	KeywordTrue
	KeywordFalse

	Eof // End Of File
	Unexpected
)
