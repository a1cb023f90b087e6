package tokens

// Stream is a forward-only cursor over lexed tokens.
//
// Stream is a small value: assigning it to another variable forks an
// independent cursor over the same backing slice. Matching code forks
// freely and commits by assigning the fork back.
type Stream struct {
	toks []Token
	pos  int
}

// NewStream returns a cursor at the first token.
func NewStream(toks []Token) Stream {
	return Stream{toks: toks}
}

// Advance returns the current token and moves past it.
func (s *Stream) Advance() (Token, bool) {
	if s.pos >= len(s.toks) {
		return Token{}, false
	}
	tok := s.toks[s.pos]
	s.pos++
	return tok, true
}

// Peek returns the current token without consuming it.
func (s Stream) Peek() (Token, bool) {
	if s.pos >= len(s.toks) {
		return Token{}, false
	}
	return s.toks[s.pos], true
}

// Skip consumes n tokens, stopping at the end.
func (s *Stream) Skip(n int) {
	s.pos = min(s.pos+n, len(s.toks))
}

// Done reports whether every token has been consumed.
func (s Stream) Done() bool {
	return s.pos >= len(s.toks)
}

// Pos is the index of the current token.
func (s Stream) Pos() int {
	return s.pos
}

// Remaining returns the unconsumed tokens. The slice must not be modified.
func (s Stream) Remaining() []Token {
	return s.toks[s.pos:]
}
