package lexer

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Lexer scans one in-memory compilation unit. The cursor is the unread
// remainder of the source plus the current line/character position; there is
// no process-wide state and a Lexer is safe to discard at any point.
type Lexer struct {
	data      []byte
	line      int
	character int
}

func New(content []byte) *Lexer {
	return &Lexer{data: content}
}

// Next returns the next token of the source. Whitespace and comments never
// produce a token. Once the source is exhausted, Next keeps returning an
// 'Eof' token. On a lexical error it returns an 'Unexpected' token covering
// the offending bytes together with a non-nil *LexerError; scanning may
// continue afterwards.
func (l *Lexer) Next() (Token, *LexerError) {
	if token, err := l.skipBlanks(); err != nil {
		return token, err
	}

	start := l.position()

	if len(l.data) == 0 {
		return Token{ID: Eof, Range: Range{Start: start, End: start}}, nil
	}

	switch c := l.data[0]; {
	case c >= '0' && c <= '9':
		return l.scanNumber(start)
	case c == '"' || c == '\'':
		return l.scanString(start)
	case isAlpha(c):
		return l.scanIdentifier(start)
	}

	for _, pattern := range operatorPatterns {
		if bytes.HasPrefix(l.data, pattern.Lexeme) {
			value := l.consume(len(pattern.Lexeme))
			token := Token{
				ID:    pattern.ID,
				Range: Range{Start: start, End: l.position()},
				Value: value,
			}

			return token, nil
		}
	}

	// No scanning rule matched: report the character instead of dropping it.
	_, size := utf8.DecodeRune(l.data)
	value := l.consume(size)
	token := Token{
		ID:    Unexpected,
		Range: Range{Start: start, End: l.position()},
		Value: value,
	}

	return token, NewLexerError(
		fmt.Errorf("%w %q", ErrUnknownCharacter, value),
		&token,
	)
}

// skipBlanks consumes whitespace and comments. An unterminated block
// comment swallows the rest of the source and is reported as an error
// rather than silently accepted.
func (l *Lexer) skipBlanks() (Token, *LexerError) {
	for len(l.data) > 0 {
		if loc := compiledPatterns.whitespace.FindIndex(l.data); loc != nil && loc[0] == 0 {
			l.consume(loc[1])
			continue
		}

		if bytes.HasPrefix(l.data, []byte("//")) {
			loc := compiledPatterns.lineComment.FindIndex(l.data)
			l.consume(loc[1])
			continue
		}

		if bytes.HasPrefix(l.data, []byte("/*")) {
			loc := compiledPatterns.blockComment.FindIndex(l.data)

			if loc == nil || loc[0] != 0 {
				start := l.position()
				value := l.consume(len(l.data))
				token := Token{
					ID:    Unexpected,
					Range: Range{Start: start, End: l.position()},
					Value: value,
				}

				return token, NewLexerError(ErrUnterminatedComment, &token)
			}

			l.consume(loc[1])
			continue
		}

		break
	}

	return Token{}, nil
}

func (l *Lexer) scanNumber(start Position) (Token, *LexerError) {
	loc := compiledPatterns.number.FindIndex(l.data)
	length := loc[1]

	// A trailing decimal point with no digits after it violates
	// "digit+ ('.' digit+)?" and must not be truncated silently.
	if length < len(l.data) && l.data[length] == '.' && !isDigitAt(l.data, length+1) {
		value := l.consume(length + 1)
		token := Token{
			ID:    Unexpected,
			Range: Range{Start: start, End: l.position()},
			Value: value,
		}

		return token, NewLexerError(
			fmt.Errorf("%w %q", ErrMalformedNumber, value),
			&token,
		)
	}

	value := l.consume(length)
	token := Token{
		ID:    Number,
		Range: Range{Start: start, End: l.position()},
		Value: value,
	}

	return token, nil
}

func (l *Lexer) scanString(start Position) (Token, *LexerError) {
	pattern := compiledPatterns.doubleQuoted
	if l.data[0] == '\'' {
		pattern = compiledPatterns.singleQuoted
	}

	loc := pattern.FindIndex(l.data)

	if loc == nil || loc[0] != 0 {
		value := l.consume(len(l.data))
		token := Token{
			ID:    Unexpected,
			Range: Range{Start: start, End: l.position()},
			Value: value,
		}

		return token, NewLexerError(ErrUnterminatedString, &token)
	}

	value := l.consume(loc[1])
	value = value[1 : len(value)-1] // drop the delimiting quotes

	token := Token{
		ID:    StringLit,
		Range: Range{Start: start, End: l.position()},
		Value: value,
	}

	return token, nil
}

func (l *Lexer) scanIdentifier(start Position) (Token, *LexerError) {
	loc := compiledPatterns.identifier.FindIndex(l.data)
	value := l.consume(loc[1])

	id, isKeyword := keywords[string(value)]
	if !isKeyword {
		id = Identifier
	}

	token := Token{
		ID:    id,
		Range: Range{Start: start, End: l.position()},
		Value: value,
	}

	return token, nil
}

func (l *Lexer) position() Position {
	return Position{Line: l.line, Character: l.character}
}

// consume advances the cursor by n bytes, keeping the line/character
// position in sync, and returns the consumed bytes.
func (l *Lexer) consume(n int) []byte {
	chunk := l.data[:n]

	for _, c := range chunk {
		if c == '\n' {
			l.line++
			l.character = 0
		} else {
			l.character++
		}
	}

	l.data = l.data[n:]

	return chunk
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigitAt(data []byte, index int) bool {
	return index < len(data) && data[index] >= '0' && data[index] <= '9'
}
