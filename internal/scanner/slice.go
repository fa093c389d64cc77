package scanner

import (
	"github.com/vk/simplemodel/internal/diag"
)

// Span delimits one uninterpreted object body inside a buffer. Line is the
// line Start sits on.
type Span struct {
	Line  int
	Start int
	End   int
}

// Bytes returns the spanned part of src.
func (sp Span) Bytes(src []byte) []byte {
	return src[sp.Start:sp.End]
}

// Sub returns a Scanner over the span of this scanner's buffer.
func (s *Scanner) Sub(sp Span) *Scanner {
	return New(sp.Bytes(s.src), sp.Line)
}

// GetObjectSlice captures the object body that starts at the cursor and
// moves the cursor past it.
//
// With the cursor on "::" the body is an enum variant: the variant name is
// consumed and then the first bracket that follows, "(" or "{", is balanced.
// A variant with neither is a unit variant and the span ends after its name.
// Otherwise the span runs until the braces opened after the cursor are
// balanced. Brackets inside strings and comments are ignored. If the buffer
// ends first, the span ends with it.
func (s *Scanner) GetObjectSlice() Span {
	sp := Span{Line: s.line, Start: s.current}

	open, close := byte('{'), byte('}')
	if s.peek() == ':' && s.peekNext() == ':' {
		s.current += 2
		s.SkipWhitespace()
		for isAlpha(s.peek()) || isDigit(s.peek()) {
			s.current++
		}
		mark, markLine := s.current, s.line
		s.SkipWhitespace()
		switch s.peek() {
		case '(':
			open, close = '(', ')'
		case '{':
		default:
			s.current, s.line = mark, markLine
			s.start = s.current
			sp.End = s.current
			return sp
		}
	}

	depth, started := 0, false
	for !s.AtEnd() && (depth > 0 || !started) {
		c := s.peek()
		switch {
		case c == '"' || c == '\'':
			s.current++
			s.skipQuoted(c)
			continue
		case c == '/' && (s.peekNext() == '/' || s.peekNext() == '*'):
			s.SkipWhitespace()
			continue
		case c == open:
			depth++
			started = true
		case c == close && started:
			depth--
		case c == '\n':
			s.line++
		}
		s.current++
	}

	s.start = s.current
	sp.End = s.current
	return sp
}

func (s *Scanner) skipQuoted(quote byte) {
	for !s.AtEnd() {
		c := s.advance()
		if c == quote {
			return
		}
		if c == '\n' {
			s.line++
		}
	}
}

// ScanField reads "name : value" and returns the name and value tokens. The
// value token is returned as scanned; arrays and nested objects continue
// from the cursor.
func (s *Scanner) ScanField() (Token, Token, error) {
	name := s.Next()
	if name.Kind == Error {
		return name, Token{}, ErrorOf(name)
	}
	if name.Kind != Identifier {
		return name, Token{}, diag.Errorf(diag.CodeSyntax, name.Line,
			"expecting field identifier, found %s '%s'", name.Kind, name.Text)
	}

	colon := s.Next()
	if colon.Kind != Colon {
		return name, colon, diag.Errorf(diag.CodeSyntax, colon.Line,
			"expecting ':' after field '%s', found '%s'", name.Text, colon.Text)
	}

	value := s.Next()
	if value.Kind == Error {
		return name, value, ErrorOf(value)
	}
	return name, value, nil
}
