package tokens

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrUnterminatedQuote is wrapped by SyntaxError when a quote never closes.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// SyntaxError reports malformed input and the byte offset where the
// offending construct started.
type SyntaxError struct {
	Offset int
	Quote  rune
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %c opened at offset %d", e.Err, e.Quote, e.Offset)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Lexer produces tokens from raw input one at a time.
type Lexer struct {
	input   string
	pos     int
	pending *Token
}

// NewLexer creates a lexer positioned at the start of input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Next returns the next token. ok is false once the input is exhausted.
func (l *Lexer) Next() (tok Token, ok bool, err error) {
	if l.pending != nil {
		tok = *l.pending
		l.pending = nil
		return tok, true, nil
	}

	l.skipSpace()
	if l.pos >= len(l.input) {
		return Token{}, false, nil
	}

	word, literalAt, err := l.readWord()
	if err != nil {
		return Token{}, false, err
	}

	// A leading quote or escape makes the whole word a value. One further
	// in leaves the plain prefix to decide the kind.
	if literalAt == 0 {
		return Token{Kind: KindValue, Text: word}, true, nil
	}

	if literalAt > 0 {
		prefix := word[:literalAt]
		if strings.HasPrefix(prefix, "--") && len(prefix) > 2 && prefix[2] != '=' {
			name, value, found := strings.Cut(word[2:], "=")
			if found && len(name)+2 < literalAt {
				l.pending = &Token{Kind: KindValue, Text: value}
				return Token{Kind: KindLongName, Text: name}, true, nil
			}
			return Token{Kind: KindLongName, Text: word[2:]}, true, nil
		}
		return Token{Kind: KindValue, Text: word}, true, nil
	}

	tok, value := classify(word)
	l.pending = value
	return tok, true, nil
}

func (l *Lexer) skipSpace() {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		l.pos += size
	}
}

// readWord reads up to the next unquoted whitespace. literalAt is the offset
// in the returned text where the first quoted segment or escaped character
// began, or -1.
func (l *Lexer) readWord() (string, int, error) {
	var b strings.Builder
	literalAt := -1

	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])

		switch {
		case unicode.IsSpace(r):
			return b.String(), literalAt, nil

		case r == '\\':
			l.pos += size
			if l.pos < len(l.input) {
				if literalAt < 0 {
					literalAt = b.Len()
				}
				next, nextSize := utf8.DecodeRuneInString(l.input[l.pos:])
				b.WriteRune(next)
				l.pos += nextSize
			}

		case r == '"' || r == '\'':
			if literalAt < 0 {
				literalAt = b.Len()
			}
			if err := l.readQuoted(&b, r); err != nil {
				return "", -1, err
			}

		default:
			b.WriteRune(r)
			l.pos += size
		}
	}

	return b.String(), literalAt, nil
}

func (l *Lexer) readQuoted(b *strings.Builder, quote rune) error {
	start := l.pos
	l.pos++ // opening quote

	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		l.pos += size

		if r == quote {
			return nil
		}

		if r == '\\' && quote == '"' && l.pos < len(l.input) {
			next, nextSize := utf8.DecodeRuneInString(l.input[l.pos:])
			if next == '"' || next == '\\' {
				b.WriteRune(next)
				l.pos += nextSize
				continue
			}
		}

		b.WriteRune(r)
	}

	return &SyntaxError{Offset: start, Quote: quote, Err: ErrUnterminatedQuote}
}

// Lex drains a lexer over input. Any syntax error aborts the whole input.
func Lex(input string) ([]Token, error) {
	l := NewLexer(input)

	var toks []Token
	for {
		tok, ok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}
