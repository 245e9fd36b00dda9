// Package lexer converts raw Skiff source text into a stream of tokens.
package lexer

import "errors"

// ----------------------
// Lexer Types definition
// ----------------------

type Position struct {
	Line      int
	Character int
}

type Range struct {
	Start Position
	End   Position // exclusive
}

type Kind int

// Token is an immutable lexical unit. Value holds the raw lexeme, except
// for 'StringLit' where it holds the contents without the delimiting quotes.
type Token struct {
	ID    Kind
	Range Range
	Value []byte
}

// Failure modes of the tokenizer. Every LexerError wraps one of these.
var (
	ErrUnknownCharacter    = errors.New("unknown character")
	ErrUnterminatedString  = errors.New("unterminated string literal")
	ErrUnterminatedComment = errors.New("unterminated block comment")
	ErrMalformedNumber     = errors.New("malformed number literal")
)

type LexerError struct {
	Err   error
	Range Range
	Token *Token
}

func NewLexerError(err error, token *Token) *LexerError {
	if token == nil {
		panic("token cannot be nil while creating lexer error")
	}

	e := &LexerError{
		Err:   err,
		Range: token.Range,
		Token: token,
	}

	return e
}

func (l LexerError) GetError() string {
	return l.Err.Error()
}

func (l LexerError) GetRange() Range {
	return l.Range
}

func (l LexerError) Unwrap() error {
	return l.Err
}

type Error interface {
	GetError() string
	GetRange() Range
	String() string
}

// Tokenize materializes the whole token sequence for 'content'.
// The sequence is always terminated by an 'Eof' token. Erroneous lexemes
// stay in the stream as 'Unexpected' tokens so that positions survive for
// tooling; the corresponding errors are reported through errs.
func Tokenize(content []byte) (tokens []Token, errs []Error) {
	lex := New(content)

	for {
		token, err := lex.Next()
		if err != nil {
			errs = append(errs, err)
		}

		tokens = append(tokens, token)

		if token.ID == Eof {
			break
		}
	}

	return tokens, errs
}
