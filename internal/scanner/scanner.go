// Package scanner tokenizes SIMPLE model sources and captures the byte spans
// of object bodies for deferred parsing.
package scanner

import (
	"fmt"
	"unicode/utf8"

	"github.com/vk/simplemodel/internal/diag"
)

// Scanner walks a byte buffer producing Tokens. A Scanner created over a
// sub-slice of a file is given the line that slice starts on, so every line
// it reports refers to the original file.
type Scanner struct {
	src     []byte
	start   int
	current int
	line    int
}

// New returns a Scanner over src whose first byte sits on line.
func New(src []byte, line int) *Scanner {
	if line < 1 {
		line = 1
	}
	return &Scanner{src: src, line: line}
}

// Line is the line the cursor is on.
func (s *Scanner) Line() int { return s.line }

// Offset is the cursor position within the buffer.
func (s *Scanner) Offset() int { return s.current }

// Source returns the buffer being scanned.
func (s *Scanner) Source() []byte { return s.src }

// AtEnd reports whether the cursor has consumed the whole buffer.
func (s *Scanner) AtEnd() bool { return s.current >= len(s.src) }

// Next scans and consumes the next token. Once the buffer is exhausted every
// call returns an EOF token.
func (s *Scanner) Next() Token {
	s.SkipWhitespace()
	s.start = s.current
	if s.AtEnd() {
		return s.make(EOF)
	}

	c := s.advance()
	switch c {
	case ',':
		return s.make(Comma)
	case '{':
		return s.make(LeftBrace)
	case '}':
		return s.make(RightBrace)
	case '[':
		return s.make(LeftBracket)
	case ']':
		return s.make(RightBracket)
	case '(':
		return s.make(LeftParen)
	case ')':
		return s.make(RightParen)
	case ':':
		if s.peek() == ':' {
			s.current++
			return s.make(ColonColon)
		}
		return s.make(Colon)
	case '"', '\'':
		return s.scanString(c)
	}

	if isDigit(c) {
		return s.scanNumber()
	}
	if isAlpha(c) {
		return s.scanIdentifier()
	}
	// Consume the whole rune so the message and the token show it intact.
	r, size := utf8.DecodeRune(s.src[s.start:])
	s.current = s.start + size
	if r == utf8.RuneError && size == 1 {
		return s.errorf("Unexpected byte 0x%02x", c)
	}
	return s.errorf("Unexpected character '%c'", r)
}

// Peek returns the next token without consuming it.
func (s *Scanner) Peek() Token {
	start, current, line := s.start, s.current, s.line
	tok := s.Next()
	s.start, s.current, s.line = start, current, line
	return tok
}

// SkipWhitespace consumes blanks, line comments and block comments. An
// unterminated block comment consumes the rest of the buffer.
func (s *Scanner) SkipWhitespace() {
	for !s.AtEnd() {
		switch c := s.peek(); c {
		case ' ', '\t', '\r':
			s.current++
		case '\n':
			s.line++
			s.current++
		case '/':
			switch s.peekNext() {
			case '/':
				for !s.AtEnd() && s.peek() != '\n' {
					s.current++
				}
			case '*':
				s.blockComment()
			default:
				return
			}
		default:
			return
		}
	}
}

func (s *Scanner) blockComment() {
	s.current += 2
	for !s.AtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.current += 2
			return
		}
		if s.peek() == '\n' {
			s.line++
		}
		s.current++
	}
}

func (s *Scanner) scanString(quote byte) Token {
	startLine := s.line
	for !s.AtEnd() && s.peek() != quote {
		if s.peek() == '\n' {
			s.line++
		}
		s.current++
	}
	if s.AtEnd() {
		return s.errorf("Unterminated string, started at line %d", startLine)
	}
	s.current++
	tok := s.make(String)
	tok.Line = startLine
	return tok
}

func (s *Scanner) scanNumber() Token {
	for isDigit(s.peek()) {
		s.current++
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.current++
		for isDigit(s.peek()) {
			s.current++
		}
	}
	return s.make(Number)
}

func (s *Scanner) scanIdentifier() Token {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.current++
	}
	if s.peek() == ':' && s.peekNext() == ':' {
		return s.make(EnumName)
	}
	return s.make(Identifier)
}

func (s *Scanner) make(kind Kind) Token {
	return Token{
		Kind:   kind,
		Text:   s.src[s.start:s.current],
		Line:   s.line,
		Start:  s.start,
		Length: s.current - s.start,
	}
}

func (s *Scanner) errorf(format string, args ...any) Token {
	tok := s.make(Error)
	tok.Msg = fmt.Sprintf(format, args...)
	return tok
}

// ErrorOf converts an Error token into a lexical diag.Error.
func ErrorOf(tok Token) *diag.Error {
	return &diag.Error{Code: diag.CodeLexical, Line: tok.Line, Msg: tok.Msg}
}

func (s *Scanner) advance() byte {
	c := s.src[s.current]
	s.current++
	return c
}

func (s *Scanner) peek() byte {
	if s.AtEnd() {
		return 0
	}
	return s.src[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.src) {
		return 0
	}
	return s.src[s.current+1]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}
