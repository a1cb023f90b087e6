// Package tokens lexes raw invocation text into classified tokens.
//
// A token is either a long name (--name), a short name (-n) or a value.
// Lexing is lazy through Lexer.Next; Lex drains a lexer into a slice that
// any number of Stream cursors can then walk independently.
package tokens

import (
	"strings"
	"unicode/utf8"
)

// Kind classifies a token.
type Kind uint8

const (
	KindValue Kind = iota
	KindLongName
	KindShortName
)

func (k Kind) String() string {
	switch k {
	case KindLongName:
		return "long name"
	case KindShortName:
		return "short name"
	default:
		return "value"
	}
}

// Token is one lexical unit. For name tokens Text excludes the dash markers.
type Token struct {
	Kind Kind
	Text string
}

// IsName reports whether the token is a long or short name.
func (t Token) IsName() bool {
	return t.Kind == KindLongName || t.Kind == KindShortName
}

// String renders the token the way it would be typed.
func (t Token) String() string {
	switch t.Kind {
	case KindLongName:
		return "--" + t.Text
	case KindShortName:
		return "-" + t.Text
	default:
		return t.Text
	}
}

// classify applies the name rules to an unquoted word. It returns the
// classified token and, for --name=value words, the trailing value.
// A bare "--" and words like "--=x" carry no name and stay values.
func classify(word string) (Token, *Token) {
	if len(word) > 2 && word[0] == '-' && word[1] == '-' {
		name := word[2:]
		if name[0] == '=' {
			return Token{Kind: KindValue, Text: word}, nil
		}
		if i := strings.IndexByte(name, '='); i > 0 {
			value := Token{Kind: KindValue, Text: name[i+1:]}
			return Token{Kind: KindLongName, Text: name[:i]}, &value
		}
		return Token{Kind: KindLongName, Text: name}, nil
	}

	if len(word) > 1 && word[0] == '-' && word[1] != '-' && utf8.RuneCountInString(word[1:]) == 1 {
		return Token{Kind: KindShortName, Text: word[1:]}, nil
	}

	return Token{Kind: KindValue, Text: word}, nil
}

// FromArgs classifies arguments that were already split by a shell.
// No quote processing happens; each argument is one word.
func FromArgs(args []string) []Token {
	toks := make([]Token, 0, len(args))
	for _, arg := range args {
		tok, value := classify(arg)
		toks = append(toks, tok)
		if value != nil {
			toks = append(toks, *value)
		}
	}
	return toks
}
