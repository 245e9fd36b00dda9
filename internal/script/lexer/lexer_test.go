package lexer

import (
	"errors"
	"testing"

	"github.com/pacer/skiff/internal/script/testutil"
)

// kindsOf strips the trailing Eof token and returns the remaining kinds.
func kindsOf(tokens []Token) []Kind {
	var kinds []Kind
	for _, token := range tokens {
		if token.ID == Eof {
			break
		}
		kinds = append(kinds, token.ID)
	}
	return kinds
}

func assertKinds(t *testing.T, tokens []Token, expected []Kind) {
	t.Helper()

	kinds := kindsOf(tokens)
	if len(kinds) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(expected), len(kinds), kinds)
	}

	for i := range expected {
		if kinds[i] != expected[i] {
			t.Errorf("Token %d: expected %s, got %s", i, expected[i], kinds[i])
		}
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	tokens, errs := Tokenize([]byte(""))

	testutil.AssertNoErrors(t, errs)

	if len(tokens) != 1 {
		t.Fatalf("Expected only the Eof token, got %d tokens", len(tokens))
	}

	if tokens[0].ID != Eof {
		t.Errorf("Expected Eof, got %s", tokens[0].ID)
	}
}

func TestTokenize_BlanksOnly(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{name: "spaces and tabs", source: "   \t  "},
		{name: "newlines", source: "\n\n\r\n"},
		{name: "line comment", source: "// a comment"},
		{name: "line comment with newline", source: "// a comment\n"},
		{name: "block comment", source: "/* a comment */"},
		{name: "multiline block comment", source: "/* one\ntwo\nthree */"},
		{name: "mixed", source: "  // first\n/* second */\n\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, errs := Tokenize([]byte(tt.source))

			testutil.AssertNoErrors(t, errs)

			if len(tokens) != 1 || tokens[0].ID != Eof {
				t.Errorf("Expected empty token sequence, got %v", tokens)
			}
		})
	}
}

func TestTokenize_MaximalMunch(t *testing.T) {
	tokens, errs := Tokenize([]byte("x >= 10"))

	testutil.AssertNoErrors(t, errs)
	assertKinds(t, tokens, []Kind{Identifier, GreaterEqual, Number})
}

func TestTokenize_Operators(t *testing.T) {
	tests := []struct {
		source   string
		expected []Kind
	}{
		{source: "==", expected: []Kind{EqualEqual}},
		{source: "===", expected: []Kind{EqualEqualEqual}},
		{source: "!==", expected: []Kind{BangEqualEqual}},
		{source: "= =", expected: []Kind{Equal, Equal}},
		{source: "<= >=", expected: []Kind{LessEqual, GreaterEqual}},
		{source: "<<=", expected: []Kind{LessLessEqual}},
		{source: ">>", expected: []Kind{GreaterGreater}},
		{source: "&&&", expected: []Kind{AmpersandAmpersand, Ampersand}},
		{source: "|||", expected: []Kind{PipePipe, Pipe}},
		{source: "a++ - --b", expected: []Kind{Identifier, PlusPlus, Minus, MinusMinus, Identifier}},
		{source: "a+=1", expected: []Kind{Identifier, PlusEqual, Number}},
		{source: "x/2", expected: []Kind{Identifier, Slash, Number}},
		{source: "x /= 2", expected: []Kind{Identifier, SlashEqual, Number}},
		{source: "~^", expected: []Kind{Tilde, Caret}},
		{source: "a?b:c", expected: []Kind{Identifier, Question, Identifier, Colon, Identifier}},
		{source: "[1, 2]", expected: []Kind{LeftBracket, Number, Comma, Number, RightBracket}},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			tokens, errs := Tokenize([]byte(tt.source))

			testutil.AssertNoErrors(t, errs)
			assertKinds(t, tokens, tt.expected)
		})
	}
}

func TestTokenize_KeywordPartition(t *testing.T) {
	tests := []struct {
		source   string
		expected Kind
		value    string
	}{
		{source: "var", expected: KeywordVar, value: "var"},
		{source: "variable", expected: Identifier, value: "variable"},
		{source: "iffy", expected: Identifier, value: "iffy"},
		{source: "If", expected: Identifier, value: "If"}, // case-sensitive
		{source: "while", expected: KeywordWhile, value: "while"},
		{source: "true", expected: KeywordTrue, value: "true"},
		{source: "null", expected: KeywordNull, value: "null"},
		{source: "x_1", expected: Identifier, value: "x_1"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			tokens, errs := Tokenize([]byte(tt.source))

			testutil.AssertNoErrors(t, errs)
			assertKinds(t, tokens, []Kind{tt.expected})

			if string(tokens[0].Value) != tt.value {
				t.Errorf("Expected value %q, got %q", tt.value, tokens[0].Value)
			}
		})
	}
}

func TestTokenize_Numbers(t *testing.T) {
	tests := []struct {
		source string
		value  string
	}{
		{source: "0", value: "0"},
		{source: "123", value: "123"},
		{source: "3.14", value: "3.14"},
		{source: "10.0", value: "10.0"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			tokens, errs := Tokenize([]byte(tt.source))

			testutil.AssertNoErrors(t, errs)
			assertKinds(t, tokens, []Kind{Number})

			if string(tokens[0].Value) != tt.value {
				t.Errorf("Expected value %q, got %q", tt.value, tokens[0].Value)
			}
		})
	}
}

func TestTokenize_MalformedNumber(t *testing.T) {
	tokens, errs := Tokenize([]byte("1."))

	testutil.AssertErrorCount(t, errs, 1)

	lexErr, ok := errs[0].(*LexerError)
	if !ok {
		t.Fatalf("Expected *LexerError, got %T", errs[0])
	}

	if !errors.Is(lexErr.Err, ErrMalformedNumber) {
		t.Errorf("Expected ErrMalformedNumber, got %v", lexErr.Err)
	}

	assertKinds(t, tokens, []Kind{Unexpected})
}

func TestTokenize_MalformedNumberBeforeIdentifier(t *testing.T) {
	// the trailing dot is consumed with the numeral, the rest rescans
	tokens, errs := Tokenize([]byte("1.x"))

	testutil.AssertErrorCount(t, errs, 1)
	testutil.AssertErrorContains(t, errs, "malformed number")
	assertKinds(t, tokens, []Kind{Unexpected, Identifier})
}

func TestTokenize_Strings(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{name: "double quoted", source: `"hello world"`, expected: "hello world"},
		{name: "single quoted", source: `'hello'`, expected: "hello"},
		{name: "empty", source: `""`, expected: ""},
		{name: "double inside single", source: `'say "hi"'`, expected: `say "hi"`},
		{name: "single inside double", source: `"it's"`, expected: "it's"},
		{name: "newline inside", source: "\"a\nb\"", expected: "a\nb"},
		{name: "backslash is verbatim", source: `"a\nb"`, expected: `a\nb`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, errs := Tokenize([]byte(tt.source))

			testutil.AssertNoErrors(t, errs)
			assertKinds(t, tokens, []Kind{StringLit})

			if string(tokens[0].Value) != tt.expected {
				t.Errorf("Expected contents %q, got %q", tt.expected, tokens[0].Value)
			}
		})
	}
}

func TestTokenize_UnterminatedString(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{name: "double quote", source: `"unterminated`},
		{name: "single quote", source: `'unterminated`},
		{name: "mismatched quotes", source: `"unterminated'`},
		{name: "lone quote", source: `"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, errs := Tokenize([]byte(tt.source))

			testutil.AssertErrorCount(t, errs, 1)

			lexErr, ok := errs[0].(*LexerError)
			if !ok {
				t.Fatalf("Expected *LexerError, got %T", errs[0])
			}

			if !errors.Is(lexErr.Err, ErrUnterminatedString) {
				t.Errorf("Expected ErrUnterminatedString, got %v", lexErr.Err)
			}

			// no truncated String token may survive
			for _, token := range tokens {
				if token.ID == StringLit {
					t.Errorf("Unterminated string must not become a StringLit token: %v", token)
				}
			}
		})
	}
}

func TestTokenize_UnterminatedBlockComment(t *testing.T) {
	tokens, errs := Tokenize([]byte("1 /* never closed"))

	testutil.AssertErrorCount(t, errs, 1)

	lexErr, ok := errs[0].(*LexerError)
	if !ok {
		t.Fatalf("Expected *LexerError, got %T", errs[0])
	}

	if !errors.Is(lexErr.Err, ErrUnterminatedComment) {
		t.Errorf("Expected ErrUnterminatedComment, got %v", lexErr.Err)
	}

	assertKinds(t, tokens, []Kind{Number, Unexpected})
}

func TestTokenize_UnknownCharacter(t *testing.T) {
	tokens, errs := Tokenize([]byte("1 @ 2"))

	testutil.AssertErrorCount(t, errs, 1)
	testutil.AssertErrorContains(t, errs, "unknown character")

	// scanning continues past the bad character
	assertKinds(t, tokens, []Kind{Number, Unexpected, Number})
}

func TestTokenize_CommentTransparency(t *testing.T) {
	withComments, errs := Tokenize([]byte("1 /* c */ + /* c */ 2"))
	testutil.AssertNoErrors(t, errs)

	without, errs := Tokenize([]byte("1 + 2"))
	testutil.AssertNoErrors(t, errs)

	kindsA := kindsOf(withComments)
	kindsB := kindsOf(without)

	if len(kindsA) != len(kindsB) {
		t.Fatalf("Token counts differ: %v vs %v", kindsA, kindsB)
	}

	for i := range kindsA {
		if kindsA[i] != kindsB[i] {
			t.Errorf("Token %d differs: %s vs %s", i, kindsA[i], kindsB[i])
		}
	}
}

func TestTokenize_LineCommentEndsAtNewline(t *testing.T) {
	tokens, errs := Tokenize([]byte("1 // one\n2"))

	testutil.AssertNoErrors(t, errs)
	assertKinds(t, tokens, []Kind{Number, Number})

	if tokens[1].Range.Start.Line != 1 {
		t.Errorf("Expected second number on line 1, got line %d", tokens[1].Range.Start.Line)
	}
}

func TestTokenize_Positions(t *testing.T) {
	source := "var x = 10;\nx = x + 1;"
	tokens, errs := Tokenize([]byte(source))

	testutil.AssertNoErrors(t, errs)

	expected := []struct {
		id        Kind
		line      int
		character int
	}{
		{KeywordVar, 0, 0},
		{Identifier, 0, 4},
		{Equal, 0, 6},
		{Number, 0, 8},
		{Semicolon, 0, 10},
		{Identifier, 1, 0},
		{Equal, 1, 2},
		{Identifier, 1, 4},
		{Plus, 1, 6},
		{Number, 1, 8},
		{Semicolon, 1, 9},
	}

	if len(tokens) != len(expected)+1 { // plus Eof
		t.Fatalf("Expected %d tokens, got %d", len(expected)+1, len(tokens))
	}

	for i, want := range expected {
		token := tokens[i]
		if token.ID != want.id {
			t.Errorf("Token %d: expected %s, got %s", i, want.id, token.ID)
		}
		if token.Range.Start.Line != want.line || token.Range.Start.Character != want.character {
			t.Errorf("Token %d (%s): expected position %d:%d, got %d:%d",
				i, token.ID, want.line, want.character,
				token.Range.Start.Line, token.Range.Start.Character)
		}
	}
}

func TestLexer_NextStreaming(t *testing.T) {
	lex := New([]byte("a + 1"))

	first, err := lex.Next()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if first.ID != Identifier {
		t.Errorf("Expected Identifier, got %s", first.ID)
	}

	second, _ := lex.Next()
	if second.ID != Plus {
		t.Errorf("Expected Plus, got %s", second.ID)
	}

	third, _ := lex.Next()
	if third.ID != Number {
		t.Errorf("Expected Number, got %s", third.ID)
	}

	// Eof repeats forever once the source is exhausted
	for i := 0; i < 3; i++ {
		token, err := lex.Next()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if token.ID != Eof {
			t.Errorf("Expected Eof, got %s", token.ID)
		}
	}
}

func TestRender_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{name: "expression", source: "2 + 3 * 4"},
		{name: "statement", source: "var x = 10;"},
		{name: "function", source: "function add(a, b) { return a + b; }"},
		{name: "strings", source: `print("hello", 'world');`},
		{name: "dense", source: "x>=10&&y<=20"},
		{name: "comments vanish", source: "1 /* gone */ + 2 // gone too"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, errs := Tokenize([]byte(tt.source))
			testutil.AssertNoErrors(t, errs)

			rendered := Render(tokens)

			again, errs := Tokenize([]byte(rendered))
			testutil.AssertNoErrors(t, errs)

			if len(tokens) != len(again) {
				t.Fatalf("Token counts differ after round trip: %d vs %d\nrendered: %s",
					len(tokens), len(again), rendered)
			}

			for i := range tokens {
				if tokens[i].ID != again[i].ID {
					t.Errorf("Token %d: kind %s became %s", i, tokens[i].ID, again[i].ID)
				}
				if string(tokens[i].Value) != string(again[i].Value) {
					t.Errorf("Token %d: value %q became %q", i, tokens[i].Value, again[i].Value)
				}
			}
		})
	}
}
