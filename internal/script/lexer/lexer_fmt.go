package lexer

import (
	"bytes"
	"fmt"
	"strings"
)

var kindNames = map[Kind]string{
	Number:              "Number",
	StringLit:           "StringLit",
	Identifier:          "Identifier",
	LeftParen:           "LeftParen",
	RightParen:          "RightParen",
	LeftBrace:           "LeftBrace",
	RightBrace:          "RightBrace",
	LeftBracket:         "LeftBracket",
	RightBracket:        "RightBracket",
	Comma:               "Comma",
	Dot:                 "Dot",
	Semicolon:           "Semicolon",
	Colon:               "Colon",
	Question:            "Question",
	Plus:                "Plus",
	PlusPlus:            "PlusPlus",
	PlusEqual:           "PlusEqual",
	Minus:               "Minus",
	MinusMinus:          "MinusMinus",
	MinusEqual:          "MinusEqual",
	Star:                "Star",
	StarEqual:           "StarEqual",
	Slash:               "Slash",
	SlashEqual:          "SlashEqual",
	Bang:                "Bang",
	BangEqual:           "BangEqual",
	BangEqualEqual:      "BangEqualEqual",
	Equal:               "Equal",
	EqualEqual:          "EqualEqual",
	EqualEqualEqual:     "EqualEqualEqual",
	Less:                "Less",
	LessEqual:           "LessEqual",
	LessLess:            "LessLess",
	LessLessEqual:       "LessLessEqual",
	Greater:             "Greater",
	GreaterEqual:        "GreaterEqual",
	GreaterGreater:      "GreaterGreater",
	GreaterGreaterEqual: "GreaterGreaterEqual",
	Ampersand:           "Ampersand",
	AmpersandAmpersand:  "AmpersandAmpersand",
	Pipe:                "Pipe",
	PipePipe:            "PipePipe",
	Caret:               "Caret",
	Tilde:               "Tilde",
	KeywordVar:          "KeywordVar",
	KeywordFunction:     "KeywordFunction",
	KeywordReturn:       "KeywordReturn",
	KeywordIf:           "KeywordIf",
	KeywordElse:         "KeywordElse",
	KeywordWhile:        "KeywordWhile",
	KeywordFor:          "KeywordFor",
	KeywordBreak:        "KeywordBreak",
	KeywordContinue:     "KeywordContinue",
	KeywordClass:        "KeywordClass",
	KeywordNew:          "KeywordNew",
	KeywordThis:         "KeywordThis",
	KeywordNull:         "KeywordNull",
	KeywordTrue:         "KeywordTrue",
	KeywordFalse:        "KeywordFalse",
	Eof:                 "Eof",
	Unexpected:          "Unexpected",
}

func (k Kind) String() string {
	if name, found := kindNames[k]; found {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

func (e LexerError) String() string {
	return fmt.Sprintf(
		`{ "Err": "%s", "Range": %s, "Token": %s }`,
		e.Err.Error(),
		e.Range,
		e.Token,
	)
}

func (p Position) String() string {
	return fmt.Sprintf("{ \"Line\": %d, \"Character\": %d }", p.Line, p.Character)
}

func (r Range) String() string {
	return fmt.Sprintf("{ \"Start\": %s, \"End\": %s }", r.Start, r.End)
}

func (t Token) String() string {
	return fmt.Sprintf(
		"{ \"ID\": \"%s\", \"Range\": %s, \"Value\": %q }",
		t.ID,
		t.Range,
		t.Value,
	)
}

// PrettyFormater converts an array of Stringer elements to a formatted string.
func PrettyFormater[T fmt.Stringer](arr []T) string {
	if len(arr) == 0 {
		return "[]"
	}

	var sb strings.Builder
	for _, el := range arr {
		sb.WriteString(fmt.Sprintf("%s,", el))
	}

	str := sb.String()

	return "[" + str[:len(str)-1] + "]"
}

// Render writes a token sequence back as canonical source text, one space
// between lexemes. Re-tokenizing the output yields the same sequence.
func Render(tokens []Token) string {
	var sb strings.Builder

	for _, token := range tokens {
		if token.ID == Eof {
			break
		}

		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}

		if token.ID == StringLit {
			quote := byte('"')
			if bytes.IndexByte(token.Value, '"') >= 0 {
				quote = '\''
			}

			sb.WriteByte(quote)
			sb.Write(token.Value)
			sb.WriteByte(quote)
			continue
		}

		sb.Write(token.Value)
	}

	return sb.String()
}
