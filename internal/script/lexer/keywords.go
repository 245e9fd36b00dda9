package lexer

// keywords maps reserved words to their token kinds. The lookup is
// case-sensitive; any identifier not in this table stays an Identifier.
var keywords = map[string]Kind{
	"var":      KeywordVar,
	"function": KeywordFunction,
	"return":   KeywordReturn,
	"if":       KeywordIf,
	"else":     KeywordElse,
	"while":    KeywordWhile,
	"for":      KeywordFor,
	"break":    KeywordBreak,
	"continue": KeywordContinue,
	"class":    KeywordClass,
	"new":      KeywordNew,
	"this":     KeywordThis,
	"null":     KeywordNull,
	"true":     KeywordTrue,
	"false":    KeywordFalse,
}
